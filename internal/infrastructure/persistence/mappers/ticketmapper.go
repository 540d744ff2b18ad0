package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models. The legacy single-image column is folded into the
// attachment list here, at the data-access boundary, so the rest of the
// system only ever sees the list representation.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	attachmentsJSON, _ := json.Marshal(t.Attachments())

	return &models.TicketModel{
		ID:          t.ID(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		Rating:      t.Rating(),
		Attachments: attachmentsJSON,
		// Writes always clear the legacy column; the list is canonical.
		LegacyImage: nil,
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments (id=%d): %w", model.ID, err)
		}
	}

	legacyImage := ""
	if model.LegacyImage != nil {
		legacyImage = *model.LegacyImage
	}
	attachments = ticket.NormalizeAttachments(attachments, legacyImage)

	return ticket.ReconstructTicket(
		model.ID,
		model.CreatorID,
		model.AssigneeID,
		model.Title,
		model.Description,
		category,
		priority,
		status,
		model.Rating,
		attachments,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
