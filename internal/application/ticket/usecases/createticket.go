package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	CreatorID   uint
	AssigneeID  uint
	Title       string
	Description string
	Category    string
	Priority    string
	// Attachments are stored URL paths, already written by the upload layer.
	Attachments []string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  TextSanitizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID, "assignee_id", cmd.AssigneeID)

	title := uc.sanitizer.StripTags(cmd.Title)

	newTicket, err := ticket.NewTicket(
		cmd.CreatorID,
		cmd.AssigneeID,
		title,
		cmd.Description,
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.Attachments) > 0 {
		if err := newTicket.AppendAttachments(cmd.Attachments...); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
