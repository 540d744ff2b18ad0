package feedback

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/feedback/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateFeedbackRequest struct {
	TicketID *uint  `json:"ticket_id"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=2000"`
}

type FeedbackHandler struct {
	createFeedbackUC usecases.CreateFeedbackExecutor
	listFeedbackUC   usecases.ListFeedbackExecutor
	deleteFeedbackUC usecases.DeleteFeedbackExecutor
	logger           logger.Interface
}

func NewFeedbackHandler(
	createFeedbackUC usecases.CreateFeedbackExecutor,
	listFeedbackUC usecases.ListFeedbackExecutor,
	deleteFeedbackUC usecases.DeleteFeedbackExecutor,
) *FeedbackHandler {
	return &FeedbackHandler{
		createFeedbackUC: createFeedbackUC,
		listFeedbackUC:   listFeedbackUC,
		deleteFeedbackUC: deleteFeedbackUC,
		logger:           logger.NewLogger(),
	}
}

// CreateFeedback handles POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createFeedbackUC.Execute(c.Request.Context(), usecases.CreateFeedbackCommand{
		UserID:   userID,
		TicketID: req.TicketID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feedback submitted successfully")
}

// ListFeedback handles GET /api/feedback with optional user_id / ticket_id
// query filters.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	query := usecases.ListFeedbackQuery{}

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid user_id filter")
			return
		}
		userID := uint(id)
		query.UserID = &userID
	}
	if raw := c.Query("ticket_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid ticket_id filter")
			return
		}
		ticketID := uint(id)
		query.TicketID = &ticketID
	}

	result, err := h.listFeedbackUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteFeedback handles DELETE /api/feedback/:id
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id", "feedback")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFeedbackUC.Execute(c.Request.Context(), feedbackID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback deleted successfully", nil)
}
