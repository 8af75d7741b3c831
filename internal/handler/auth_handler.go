package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradehub/resultportal-backend/internal/model"
	"github.com/gradehub/resultportal-backend/internal/response"
	"github.com/gradehub/resultportal-backend/internal/service"
	"github.com/gradehub/resultportal-backend/internal/validator"
)

// AuthHandler handles the two-step admin login flow.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/login
// Validates the configured admin credentials. With OTP delivery configured
// the response carries a pending session id; otherwise a token directly.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrOTPDelivery):
			response.Fail(c, http.StatusBadGateway, response.ErrOTPDelivery)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	if result.OTPRequired {
		response.Success(c, http.StatusOK, gin.H{
			"message":      "OTP sent",
			"otp_required": true,
			"session_id":   result.SessionID,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      "Login successful",
		"otp_required": false,
		"token":        result.Token,
	})
}

// VerifyOTP godoc
// POST /api/verify-otp?session_id=...
// Completes the second login step for a pending session.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	sessionID := c.Query("session_id")

	var req model.VerifyOTPRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.authService.VerifyOTP(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOTPUnavailable):
			response.Fail(c, http.StatusBadRequest, response.ErrOTPUnavailable)
		case errors.Is(err, service.ErrOTPRejected):
			response.Fail(c, http.StatusBadRequest, response.ErrOTPRejected)
		case errors.Is(err, service.ErrOTPDelivery):
			response.Fail(c, http.StatusBadGateway, response.ErrOTPDelivery)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verified",
		"token":   token,
	})
}

// VerifyToken godoc
// GET /api/verify-token?token=...
// Reports whether a token is still usable; the client calls this on load to
// decide between the dashboard and the login form.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	_, err := h.authService.ValidateToken(c.Query("token"))
	response.Success(c, http.StatusOK, gin.H{"valid": err == nil})
}
