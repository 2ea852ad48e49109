package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/skills"
	"github.com/Wizz677/applysmart/internal/token"
)

// MatcherService resolves the two skill lists for a (job, seeker) pair and
// hands them to the pure match engine.
type MatcherService struct {
	DB *gorm.DB
}

func NewMatcherService(db *gorm.DB) *MatcherService {
	return &MatcherService{DB: db}
}

// JobMatch is a job's skill requirements scored against one candidate.
type JobMatch struct {
	JobID          uint   `json:"job_id"`
	RequiredSkills string `json:"required_skills"`
	skills.Match
}

// ForJob computes the caller's match against a posting. Seeker-scoped; the
// computation itself has no dependency on identity beyond looking up the
// caller's declared skills.
func (s *MatcherService) ForJob(caller token.Identity, jobID uint) (*JobMatch, error) {
	if caller.Role != models.RoleJobSeeker {
		return nil, apperr.Forbidden("Forbidden")
	}

	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperr.Internal("loading job", err)
	}

	var acct models.Account
	err = s.DB.First(&acct, caller.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthenticated("Not authenticated")
	}
	if err != nil {
		return nil, apperr.Internal("loading account", err)
	}

	return &JobMatch{
		JobID:          job.ID,
		RequiredSkills: job.RequiredSkills,
		Match:          skills.Compute(job.RequiredSkills, acct.Skills),
	}, nil
}
