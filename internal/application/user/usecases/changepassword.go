package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return err
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		uc.logger.Warnw("change password failed: wrong current password", "user_id", cmd.UserID)
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist password change", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
