package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Category        string    `json:"category"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	CreatorID       uint      `json:"creator_id"`
	AssigneeID      uint      `json:"assignee_id"`
	Rating          *int      `json:"rating"`
	Images          []string  `json:"images"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Priority   string   `json:"priority"`
	Status     string   `json:"status"`
	CreatorID  uint     `json:"creator_id"`
	AssigneeID uint     `json:"assignee_id"`
	Rating     *int     `json:"rating"`
	Images     []string `json:"images"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Rating:      t.Rating(),
		Images:      t.Attachments(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Title:      t.Title(),
		Category:   t.Category().String(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		Rating:     t.Rating(),
		Images:     t.Attachments(),
		CreatedAt:  t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt().Format(time.RFC3339),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	items := make([]TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ToTicketListItemDTO(t))
	}
	return items
}
