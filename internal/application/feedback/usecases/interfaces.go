package usecases

import "context"

// Executor interfaces decouple the HTTP handlers from the concrete use cases.
type CreateFeedbackExecutor interface {
	Execute(ctx context.Context, cmd CreateFeedbackCommand) (*FeedbackDTO, error)
}

type ListFeedbackExecutor interface {
	Execute(ctx context.Context, query ListFeedbackQuery) ([]FeedbackDTO, error)
}

type DeleteFeedbackExecutor interface {
	Execute(ctx context.Context, feedbackID uint) error
}
