package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/services"
)

type JobHandler struct {
	JobService     *services.JobService
	MatcherService *services.MatcherService
	Log            *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, m *services.MatcherService, log *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService:     j,
		MatcherService: m,
		Log:            log,
	}
}

// List is the GET /jobs endpoint; search filters come from the query string.
func (h *JobHandler) List(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	jobs, err := h.JobService.List(&filter)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get is the GET /jobs/:id endpoint
func (h *JobHandler) Get(c *gin.Context) {
	id, err := jobIDParam(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	job, err := h.JobService.Get(id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create is the POST /jobs endpoint, employer-gated by the router.
func (h *JobHandler) Create(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.Create(identity.UserID, &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Mine is the GET /employer/jobs endpoint
func (h *JobHandler) Mine(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	jobs, err := h.JobService.Mine(identity.UserID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Match is the GET /jobs/:id/match endpoint: the caller's skill overlap with
// a posting.
func (h *JobHandler) Match(c *gin.Context) {
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
	match, err := h.MatcherService.ForJob(identity, id)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}
