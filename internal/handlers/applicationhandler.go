package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Log          *zap.Logger
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(a *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: a,
		Log:          log,
	}
}

// Apply is the POST /jobs/:id/apply endpoint
func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	id, err := jobIDParam(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	app, err := h.Applications.Apply(identity, id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// Mine is the GET /job-seeker/applications endpoint
func (h *ApplicationHandler) Mine(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	apps, err := h.Applications.ListForSeeker(identity)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Applicants is the GET /employer/jobs/:id/applicants endpoint
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	id, err := jobIDParam(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	applicants, err := h.Applications.ApplicantsForJob(identity, id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}
