package handler

import (
	"fmt"
	"net/http"

	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler owns login/logout and the per-session toast feed.
type SessionHandler struct {
	auth    *auth.Service
	service AuctionServiceInterface
}

func NewSessionHandler(authService *auth.Service, service AuctionServiceInterface) *SessionHandler {
	return &SessionHandler{auth: authService, service: service}
}

// LoginHandler handles POST /login. A successful login seeds the
// session's notification snapshots from the user's current items so the
// first view open does not report stale activity as new.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"username": req.Username})
		return
	}

	if items, itemsErr := h.service.AllItems(); itemsErr == nil {
		session.Tracker.SeedForUser(session.User.ID, items)
	} else {
		utils.Error("LoginHandler: failed to seed notification snapshots", map[string]any{
			"user_id": session.User.ID,
			"error":   itemsErr.Error(),
		})
	}

	session.Toasts.Push(fmt.Sprintf("Bem-vindo, %s!", session.User.Username), model.ToastSuccess)

	resp := helpers.LoginResponse{
		Token:    session.Token,
		UserID:   session.User.ID,
		Username: session.User.Username,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id":  session.User.ID,
		"username": session.User.Username,
	})
}

// LogoutHandler handles POST /logout, discarding the session together
// with its notification snapshots and toast timers.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	session := sessionFrom(c)
	h.auth.Logout(session.Token)

	utils.JSONResponse(c, http.StatusOK, nil, "logout successful")
	helpers.LogSuccess("LogoutHandler", "logout successful", map[string]any{"user_id": session.User.ID})
}

// ListToastsHandler handles GET /toasts
func (h *SessionHandler) ListToastsHandler(c *gin.Context) {
	session := sessionFrom(c)
	utils.JSONResponse(c, http.StatusOK, session.Toasts.List(), "toasts retrieved successfully")
}

// DismissToastHandler handles DELETE /toasts/:toast_id
func (h *SessionHandler) DismissToastHandler(c *gin.Context) {
	session := sessionFrom(c)
	session.Toasts.Dismiss(c.Param("toast_id"))
	utils.JSONResponse(c, http.StatusOK, nil, "toast dismissed")
}
