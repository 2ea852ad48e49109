package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/token"
)

// ApplicationService enforces the apply workflow: who may apply to what,
// when, and at most once per (job, seeker) pair.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// Apply runs the full precondition chain and creates the application,
// snapshotting the seeker's current resume reference.
func (s *ApplicationService) Apply(caller token.Identity, jobID uint) (*models.Application, error) {
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
		// Token outlived the account.
		return nil, apperr.Unauthenticated("Not authenticated")
	}
	if err != nil {
		return nil, apperr.Internal("loading account", err)
	}
	if acct.ResumePath == "" {
		return nil, apperr.PrerequisiteUnmet("You must upload a resume before applying")
	}

	var existing models.Application
	err = s.DB.Select("id").
		Where("job_id = ? AND user_id = ?", jobID, caller.UserID).
		First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("You have already applied to this job")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("checking for existing application", err)
	}

	app := &models.Application{
		JobID:      jobID,
		UserID:     caller.UserID,
		ResumePath: acct.ResumePath,
	}
	if err := s.DB.Create(app).Error; err != nil {
		// A concurrent apply can slip past the pre-check; the unique index
		// on (job_id, user_id) turns the loser into the same Conflict.
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("You have already applied to this job")
		}
		return nil, apperr.Internal("creating application", err)
	}
	return app, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}

// ListForSeeker returns the caller's applications joined with job and
// company display fields, most recent first.
func (s *ApplicationService) ListForSeeker(caller token.Identity) ([]dtos.ApplicationView, error) {
	if caller.Role != models.RoleJobSeeker {
		return nil, apperr.Forbidden("Forbidden")
	}

	views := []dtos.ApplicationView{}
	err := s.DB.Table("applications").
		Select("applications.id, applications.job_id, applications.resume_path, applications.created_at AS applied_at, jobs.title, jobs.location, accounts.company_name").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN accounts ON accounts.id = jobs.employer_id").
		Where("applications.user_id = ?", caller.UserID).
		Order("applications.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, apperr.Internal("listing applications", err)
	}
	return views, nil
}

// ApplicantsForJob returns the applicants on one of the caller's postings.
// A posting owned by someone else is reported exactly like a missing one, so
// the response never reveals which job ids exist.
func (s *ApplicationService) ApplicantsForJob(caller token.Identity, jobID uint) ([]dtos.ApplicantView, error) {
	if caller.Role != models.RoleEmployer {
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
	if job.EmployerID != caller.UserID {
		return nil, apperr.NotFound("Job not found")
	}

	views := []dtos.ApplicantView{}
	err = s.DB.Table("applications").
		Select("applications.id, applications.user_id, applications.resume_path, applications.created_at AS applied_at, accounts.name").
		Joins("JOIN accounts ON accounts.id = applications.user_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, apperr.Internal("listing applicants", err)
	}
	return views, nil
}
