package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.
type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type SubmitRatingExecutor interface {
	Execute(ctx context.Context, cmd SubmitRatingCommand) (*dto.TicketDTO, error)
}

type AppendImagesExecutor interface {
	Execute(ctx context.Context, cmd AppendImagesCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error)
}

// AttachmentRemover deletes a stored attachment by its public URL path.
// Removal failures are reported but never block ticket deletion.
type AttachmentRemover interface {
	Remove(urlPath string) error
}

// TextSanitizer strips markup from user-supplied plain-text fields before
// they are persisted.
type TextSanitizer interface {
	StripTags(text string) string
}

// DescriptionRenderer converts a stored Markdown description into sanitized
// HTML for the detail view.
type DescriptionRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
