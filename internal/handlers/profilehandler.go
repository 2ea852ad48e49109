package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/services"
	"github.com/Wizz677/applysmart/internal/storage"
)

type ProfileHandler struct {
	Accounts *services.AccountService
	Uploads  *storage.Uploads
	Log      *zap.Logger
}

// NewProfileHandler creates the handler with dependencies
func NewProfileHandler(a *services.AccountService, u *storage.Uploads, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		Accounts: a,
		Uploads:  u,
		Log:      log,
	}
}

// Update is the PUT /profile endpoint
func (h *ProfileHandler) Update(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	acct, err := h.Accounts.UpdateProfile(identity.UserID, &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": acct})
}

// UploadResume is the POST /profile/resume endpoint. The file is stored
// first and only then referenced from the account, so a failed write never
// leaves a dangling reference.
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	fh, err := c.FormFile("resume")
	if err != nil {
		respondError(c, h.Log, apperr.Validation("No file uploaded"))
		return
	}
	path, err := h.Uploads.StoreResume(fh)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	acct, err := h.Accounts.AttachResume(identity.UserID, path)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": acct})
}
