package repository

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/domain/feedback"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewStorageError("failed to save feedback", err.Error())
	}

	return f.SetID(model.ID)
}

func (r *FeedbackRepository) Delete(ctx context.Context, feedbackID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FeedbackModel{}, feedbackID)
	if result.Error != nil {
		return apperrors.NewStorageError("failed to delete feedback", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("feedback not found")
	}

	return nil
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*feedback.Feedback, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID uint) ([]*feedback.Feedback, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *FeedbackRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*feedback.Feedback, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("ticket_id = ?", ticketID))
}

func (r *FeedbackRepository) list(ctx context.Context, tx *gorm.DB) ([]*feedback.Feedback, error) {
	var rows []models.FeedbackModel

	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.NewStorageError("failed to list feedback", err.Error())
	}

	feedbacks := make([]*feedback.Feedback, 0, len(rows))
	for i := range rows {
		f, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, nil
}
