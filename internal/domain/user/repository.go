package user

import "context"

// Repository persists the user table. GetByEmail returns (nil, nil) when no
// record exists for the email.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
