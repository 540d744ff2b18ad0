package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/feedback"
	"helpdesk/internal/shared/logger"
)

type ListFeedbackQuery struct {
	// UserID and TicketID narrow the listing; both nil lists everything.
	UserID   *uint
	TicketID *uint
}

type ListFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) ([]FeedbackDTO, error) {
	var (
		entries []*feedback.Feedback
		err     error
	)

	switch {
	case query.TicketID != nil:
		entries, err = uc.feedbackRepo.ListByTicket(ctx, *query.TicketID)
	case query.UserID != nil:
		entries, err = uc.feedbackRepo.ListByUser(ctx, *query.UserID)
	default:
		entries, err = uc.feedbackRepo.ListAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "error", err)
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	results := make([]FeedbackDTO, 0, len(entries))
	for _, f := range entries {
		results = append(results, toFeedbackDTO(f))
	}
	return results, nil
}
