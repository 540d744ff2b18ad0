package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*UserDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, err
	}

	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		FullName:  u.FullName(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
