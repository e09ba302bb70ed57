package usecases

import (
	"context"

	"github.com/google/uuid"

	"ecomplaint/internal/domain/user"
	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/authorization"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

// TokenGenerator issues signed access tokens for an authenticated identity
type TokenGenerator interface {
	Generate(email string, sessionID string, role authorization.UserRole) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenGenerator
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	// Accounts are stored under the normalized address, so normalize the
	// submitted one the same way before the lookup.
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	// Generic error whether the email is unknown or the password is wrong,
	// so the response does not reveal which emails are registered.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	sessionID := uuid.New().String()
	token, err := uc.tokens.Generate(existingUser.Email().String(), sessionID, existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in successfully", "email", existingUser.Email().String(), "session_id", sessionID)

	return &LoginResult{
		User:        existingUser,
		AccessToken: token,
	}, nil
}
