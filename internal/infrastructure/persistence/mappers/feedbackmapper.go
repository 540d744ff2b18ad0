package mappers

import (
	"time"

	"helpdesk/internal/domain/feedback"
	"helpdesk/internal/infrastructure/persistence/models"
)

type FeedbackMapper interface {
	ToModel(f *feedback.Feedback) *models.FeedbackModel
	ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error)
}

type feedbackMapper struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &feedbackMapper{}
}

func (m *feedbackMapper) ToModel(f *feedback.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:        f.ID(),
		UserID:    f.UserID(),
		TicketID:  f.TicketID(),
		Rating:    f.Rating(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt().UnixMilli(),
	}
}

func (m *feedbackMapper) ToDomain(model *models.FeedbackModel) (*feedback.Feedback, error) {
	return feedback.ReconstructFeedback(
		model.ID,
		model.UserID,
		model.TicketID,
		model.Rating,
		model.Comment,
		time.UnixMilli(model.CreatedAt),
	)
}
