package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	listUsersUC      usecases.ListUsersExecutor
	getUserUC        usecases.GetUserExecutor
	center           *notification.Center
	logger           logger.Interface
}

func NewUserHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	listUsersUC usecases.ListUsersExecutor,
	getUserUC usecases.GetUserExecutor,
	center *notification.Center,
) *UserHandler {
	return &UserHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		changePasswordUC: changePasswordUC,
		listUsersUC:      listUsersUC,
		getUserUC:        getUserUC,
		center:           center,
		logger:           logger.NewLogger(),
	}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /api/users/login. A successful login also starts the
// caller's notification session.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.center.StartSession(result.UserID); err != nil {
		h.logger.Warnw("failed to start notification session", "user_id", result.UserID, "error", err)
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /api/users/logout. The access token stays valid until
// it expires; logout only tears down the notification session.
func (h *UserHandler) Logout(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.center.StopSession(userID)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// ChangePassword handles POST /api/users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err = h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
