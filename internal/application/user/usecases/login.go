package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uint
	Username    string
	FullName    string
	AccessToken string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		// A missing account and a wrong password must be indistinguishable.
		uc.logger.Warnw("login failed: unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed: wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		UserID:      u.ID(),
		Username:    u.Username(),
		FullName:    u.FullName(),
		AccessToken: token,
	}, nil
}
