package usecases

import (
	"context"

	"helpdesk/internal/domain/feedback"
	"helpdesk/internal/shared/logger"
)

type DeleteFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewDeleteFeedbackUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *DeleteFeedbackUseCase {
	return &DeleteFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *DeleteFeedbackUseCase) Execute(ctx context.Context, feedbackID uint) error {
	uc.logger.Infow("executing delete feedback use case", "feedback_id", feedbackID)

	if err := uc.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		uc.logger.Errorw("failed to delete feedback", "feedback_id", feedbackID, "error", err)
		return err
	}
	return nil
}
