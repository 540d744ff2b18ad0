package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AppendImagesCommand struct {
	TicketID uint
	// Paths are stored URL paths in upload order.
	Paths []string
}

// AppendImagesUseCase attaches already stored images to an existing ticket.
type AppendImagesUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAppendImagesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AppendImagesUseCase {
	return &AppendImagesUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AppendImagesUseCase) Execute(ctx context.Context, cmd AppendImagesCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing append images use case", "ticket_id", cmd.TicketID, "count", len(cmd.Paths))

	if len(cmd.Paths) == 0 {
		return nil, errors.NewValidationError("no files uploaded")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := t.AppendAttachments(cmd.Paths...); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist attachments", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to save attachments: %w", err)
	}

	uc.logger.Infow("images attached", "ticket_id", cmd.TicketID, "total", len(t.Attachments()))
	return dto.ToTicketDTO(t), nil
}
