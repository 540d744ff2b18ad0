package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/feedback"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateFeedbackCommand struct {
	UserID   uint
	TicketID *uint
	Rating   int
	Comment  string
}

type FeedbackDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	TicketID  *uint     `json:"ticket_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toFeedbackDTO(f *feedback.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:        f.ID(),
		UserID:    f.UserID(),
		TicketID:  f.TicketID(),
		Rating:    f.Rating(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt(),
	}
}

type CreateFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewCreateFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *CreateFeedbackUseCase {
	return &CreateFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *CreateFeedbackUseCase) Execute(ctx context.Context, cmd CreateFeedbackCommand) (*FeedbackDTO, error) {
	uc.logger.Infow("executing create feedback use case", "user_id", cmd.UserID, "rating", cmd.Rating)

	f, err := feedback.NewFeedback(cmd.UserID, cmd.TicketID, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	result := toFeedbackDTO(f)
	return &result, nil
}
