package usecases

import (
	"context"

	"ecomplaint/internal/domain/user"
	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/config"
	"ecomplaint/internal/shared/logger"
)

const defaultAdminPassword = "admin123"

// EnsureAdminUseCase creates the bootstrap administrator account on first
// startup when no record exists for the configured admin email.
type EnsureAdminUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	adminCfg       config.AdminConfig
	logger         logger.Interface
}

func NewEnsureAdminUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	adminCfg config.AdminConfig,
	logger logger.Interface,
) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		adminCfg:       adminCfg,
		logger:         logger,
	}
}

func (uc *EnsureAdminUseCase) Execute(ctx context.Context) error {
	email, err := vo.NewEmail(uc.adminCfg.Email)
	if err != nil {
		return err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := user.NewUser(email, uc.adminCfg.Name, uc.adminCfg.Phone)
	if err != nil {
		return err
	}
	admin.GrantAdmin()

	hash, err := uc.passwordHasher.Hash(uc.adminCfg.Password)
	if err != nil {
		return err
	}
	if err := admin.SetPasswordHash(hash); err != nil {
		return err
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	uc.logger.Infow("bootstrap administrator created", "email", email.String())

	if uc.adminCfg.Password == defaultAdminPassword {
		uc.logger.Warnw("administrator account uses the default password; rotate it before exposing this service", "email", email.String())
	}

	return nil
}
