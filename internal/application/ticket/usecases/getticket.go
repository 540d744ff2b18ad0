package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   DescriptionRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.TicketID)

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	result := dto.ToTicketDTO(t)

	rendered, err := uc.renderer.ToHTMLSanitized(t.Description())
	if err != nil {
		// The raw description is still returned; rendering is a convenience.
		uc.logger.Warnw("failed to render description", "ticket_id", query.TicketID, "error", err)
	} else {
		result.DescriptionHTML = rendered
	}

	return result, nil
}
