package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	// UserID restricts the result to tickets the user created or is
	// assigned to. Nil lists every ticket.
	UserID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	var (
		tickets []*ticket.Ticket
		err     error
	)

	if query.UserID != nil {
		uc.logger.Debugw("listing tickets for user", "user_id", *query.UserID)
		tickets, err = uc.ticketRepo.ListByUser(ctx, *query.UserID)
	} else {
		uc.logger.Debugw("listing all tickets")
		tickets, err = uc.ticketRepo.ListAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return dto.ToTicketListItemDTOs(tickets), nil
}
