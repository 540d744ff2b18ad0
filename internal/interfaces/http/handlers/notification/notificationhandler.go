package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	center *notification.Center
}

func NewNotificationHandler(center *notification.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// ListNotifications handles GET /api/notifications, returning the panel
// entries (newest first) and the still-visible toasts.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	panel, toasts, err := h.center.Snapshot(userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": panel,
		"toasts":        toasts,
	})
}

// DismissNotification handles DELETE /api/notifications/:id
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.center.Dismiss(userID, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ClearNotifications handles POST /api/notifications/clear
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.center.ClearAll(userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// NavigateNotification handles POST /api/notifications/:id/navigate. It
// dismisses the notification everywhere and returns the ticket to open.
func (h *NotificationHandler) NavigateNotification(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := h.center.Navigate(userID, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"ticket_id": ticketID})
}
