package ticket

import (
	"helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `form:"title" json:"title" binding:"required,max=200" validate:"required,min=1,max=200"`
	Description string `form:"description" json:"description" binding:"required,max=5000" validate:"required,min=1,max=5000"`
	Category    string `form:"category" json:"category"`
	Priority    string `form:"priority" json:"priority" validate:"omitempty,oneof=Low Medium High Urgent"`
	AssigneeID  uint   `form:"assigned_to" json:"assigned_to" binding:"required" validate:"required,gt=0"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint, attachments []string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		CreatorID:   creatorID,
		AssigneeID:  r.AssigneeID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Attachments: attachments,
	}
}

type UpdateTicketRequest struct {
	Title       string  `form:"title" json:"title" binding:"required,max=200" validate:"required,min=1,max=200"`
	Description string  `form:"description" json:"description" binding:"required,max=5000" validate:"required,min=1,max=5000"`
	Category    *string `form:"category" json:"category"`
	Priority    *string `form:"priority" json:"priority" validate:"omitempty,oneof=Low Medium High Urgent"`
	Status      *string `form:"status" json:"status"`
	AssigneeID  *uint   `form:"assigned_to" json:"assigned_to" validate:"omitempty,gt=0"`
	Rating      *int    `form:"feedback" json:"feedback" validate:"omitempty,min=1,max=5"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, appendPaths []string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
		AssigneeID:  r.AssigneeID,
		Rating:      r.Rating,
		AppendPaths: appendPaths,
	}
}

type SubmitRatingRequest struct {
	Rating int `json:"feedback" binding:"required,min=1,max=5"`
}
