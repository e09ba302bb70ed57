package usecases

import (
	"context"

	"ecomplaint/internal/domain/user"
	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type RegisterResult struct {
	Email string
	Name  string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email existence")
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newUser, err := user.NewUser(email, cmd.Name, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, errors.NewInternalError("failed to set password")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "email", email.String())

	return &RegisterResult{
		Email: newUser.Email().String(),
		Name:  newUser.Name(),
	}, nil
}
