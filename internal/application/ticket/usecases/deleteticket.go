package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and cleans up every stored attachment
// it referenced. File removal is best effort: a missing or locked file is
// logged and skipped, never surfaced to the caller.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	remover    AttachmentRemover
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	remover AttachmentRemover,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		remover:    remover,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	for _, path := range t.Attachments() {
		if err := uc.remover.Remove(path); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "ticket_id", cmd.TicketID, "path", path, "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
