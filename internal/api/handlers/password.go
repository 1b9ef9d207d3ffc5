package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/internal/utils"
)

type PasswordHandler struct {
	authService *services.AuthService
}

func NewPasswordHandler(authService *services.AuthService) *PasswordHandler {
	return &PasswordHandler{authService: authService}
}

func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var req services.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ForgotPassword(req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Password reset request failed", err)
		return
	}

	// Same response whether or not the email exists.
	utils.SendSuccess(c, "If the email exists, a reset link has been sent", nil)
}

func (h *PasswordHandler) ValidateResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.SendValidationError(c, "Reset token is required")
		return
	}

	if err := h.authService.ValidateResetToken(token); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid reset token", err)
		return
	}

	utils.SendSuccess(c, "Reset token is valid", nil)
}

func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req services.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ResetPassword(req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Password reset failed", err)
		return
	}

	utils.SendSuccess(c, "Password reset successfully", nil)
}

func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ChangePassword(userID, req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Password change failed", err)
		return
	}

	utils.SendSuccess(c, "Password changed successfully", nil)
}
