package ticket

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Uploader stores one uploaded file and returns its public URL path.
type Uploader interface {
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)
}

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	submitRatingUC usecases.SubmitRatingExecutor
	appendImagesUC usecases.AppendImagesExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	uploader       Uploader
	maxPerBatch    int
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	submitRatingUC usecases.SubmitRatingExecutor,
	appendImagesUC usecases.AppendImagesExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	uploader Uploader,
	maxPerBatch int,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		submitRatingUC: submitRatingUC,
		appendImagesUC: appendImagesUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		uploader:       uploader,
		maxPerBatch:    maxPerBatch,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/tickets. The body is either JSON or a
// multipart form carrying the same fields plus optional image files.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	var attachments []string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid create ticket form", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		paths, err := h.storeUploads(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		attachments = paths
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid create ticket body", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID, attachments))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets. The default scope is the caller's
// own tickets; ?scope=all lists everything.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListTicketsQuery{}
	if c.Query("scope") != "all" {
		query.UserID = &userID
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /api/tickets/:id. Like create, the body is JSON
// or a multipart form; form image files are appended to the ticket.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	var appendPaths []string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid update ticket form", "ticket_id", ticketID, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		paths, err := h.storeUploads(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		appendPaths = paths
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid update ticket body", "ticket_id", ticketID, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, appendPaths))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// SubmitRating handles PUT /api/tickets/:id/feedback
func (h *TicketHandler) SubmitRating(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.submitRatingUC.Execute(c.Request.Context(), usecases.SubmitRatingCommand{
		TicketID: ticketID,
		Rating:   req.Rating,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback submitted successfully", result)
}

// AppendImages handles POST /api/tickets/:id/images
func (h *TicketHandler) AppendImages(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	paths, err := h.storeUploads(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(paths) == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no files uploaded"))
		return
	}

	result, err := h.appendImagesUC.Execute(c.Request.Context(), usecases.AppendImagesCommand{
		TicketID: ticketID,
		Paths:    paths,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Images uploaded successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// storeUploads saves every file in the "images" multipart field and returns
// their stored URL paths in upload order.
func (h *TicketHandler) storeUploads(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > h.maxPerBatch {
		return nil, errors.NewValidationError("too many files in one upload")
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := h.uploader.SaveUpload(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
