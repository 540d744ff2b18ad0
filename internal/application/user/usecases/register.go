package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterCommand struct {
	Username string
	Email    string
	Password string
	FullName string
}

type RegisterResult struct {
	UserID   uint
	Username string
	Email    string
	FullName string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username, "email", cmd.Email)

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing users", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username or email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash, cmd.FullName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterResult{
		UserID:   newUser.ID(),
		Username: newUser.Username(),
		Email:    newUser.Email(),
		FullName: newUser.FullName(),
	}, nil
}
