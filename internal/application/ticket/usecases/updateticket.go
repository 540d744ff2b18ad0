package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Category    *string
	Priority    *string
	Status      *string
	AssigneeID  *uint
	Rating      *int
	AppendPaths []string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  TextSanitizer
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	update := ticket.Update{
		Title:       uc.sanitizer.StripTags(cmd.Title),
		Description: cmd.Description,
		AssigneeID:  cmd.AssigneeID,
		Rating:      cmd.Rating,
	}

	if cmd.Category != nil {
		category := vo.Category(*cmd.Category)
		update.Category = &category
	}
	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		update.Priority = &priority
	}
	if cmd.Status != nil {
		status := vo.Status(*cmd.Status)
		update.Status = &status

		// Unusual transitions are accepted but logged so support leads can
		// audit them later.
		if status.IsValid() && !t.Status().CanTransitionTo(status) {
			uc.logger.Warnw("irregular status transition",
				"ticket_id", cmd.TicketID,
				"from", t.Status().String(),
				"to", status.String(),
			)
		}
	}

	if err := t.ApplyUpdate(update); err != nil {
		uc.logger.Errorw("invalid ticket update", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.AppendPaths) > 0 {
		if err := t.AppendAttachments(cmd.AppendPaths...); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket update", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)
	return dto.ToTicketDTO(t), nil
}
