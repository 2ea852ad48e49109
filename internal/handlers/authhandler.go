package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/services"
	"github.com/Wizz677/applysmart/internal/token"
)

type AuthHandler struct {
	Accounts *services.AccountService
	Codec    *token.Codec
	Guard    *auth.Guard
	Log      *zap.Logger
}

// NewAuthHandler creates the handler with dependencies
func NewAuthHandler(a *services.AccountService, codec *token.Codec, guard *auth.Guard, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		Accounts: a,
		Codec:    codec,
		Guard:    guard,
		Log:      log,
	}
}

func (h *AuthHandler) startSession(c *gin.Context, acct *models.Account) error {
	tok, err := h.Codec.Issue(token.Identity{UserID: acct.ID, Role: acct.Role})
	if err != nil {
		return err
	}
	h.Guard.SetSessionCookie(c, tok)
	return nil
}

// Signup is the POST /auth/signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	acct, err := h.Accounts.Signup(&req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if err := h.startSession(c, acct); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": acct})
}

// Login is the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}
	acct, err := h.Accounts.Login(&req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if err := h.startSession(c, acct); err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": acct})
}

// Logout is the POST /auth/logout endpoint
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Guard.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me is the GET /auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	acct, err := h.Accounts.Get(identity.UserID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": acct})
}
