package feedback

import "context"

type Repository interface {
	Save(ctx context.Context, feedback *Feedback) error
	Delete(ctx context.Context, feedbackID uint) error
	ListAll(ctx context.Context) ([]*Feedback, error)
	ListByUser(ctx context.Context, userID uint) ([]*Feedback, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Feedback, error)
}
