package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SubmitRatingCommand struct {
	TicketID uint
	Rating   int
}

// SubmitRatingUseCase records a star rating on a ticket without touching any
// other field, so a rating never clobbers a concurrent edit.
type SubmitRatingUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSubmitRatingUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SubmitRatingUseCase {
	return &SubmitRatingUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SubmitRatingUseCase) Execute(ctx context.Context, cmd SubmitRatingCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing submit rating use case", "ticket_id", cmd.TicketID, "rating", cmd.Rating)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := t.SetRating(cmd.Rating); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist rating", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	uc.logger.Infow("rating recorded", "ticket_id", cmd.TicketID, "rating", cmd.Rating)
	return dto.ToTicketDTO(t), nil
}
