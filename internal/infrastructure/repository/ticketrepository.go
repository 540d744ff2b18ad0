package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewStorageError("failed to save ticket", err.Error())
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	// Select("*") also writes zero values, which is what clears the legacy
	// image column and persists a removed rating.
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return apperrors.NewStorageError("failed to update ticket", result.Error.Error())
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return apperrors.NewStorageError("failed to delete ticket", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, apperrors.NewStorageError("failed to find ticket", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var rows []models.TicketModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.NewStorageError("failed to list tickets", err.Error())
	}

	return r.toDomainList(rows)
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var rows []models.TicketModel

	err := r.db.WithContext(ctx).
		Where("creator_id = ? OR assignee_id = ?", userID, userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list user tickets", err.Error())
	}

	return r.toDomainList(rows)
}

func (r *TicketRepository) toDomainList(rows []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
