package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// Create stores a posting owned by the calling employer.
func (s *JobService) Create(employerID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperr.Internal("creating job", err)
	}
	return job, nil
}

// List returns postings joined with company names, newest first, with
// optional substring filters over title, required skills and location.
func (s *JobService) List(f *dtos.JobFilter) ([]dtos.JobView, error) {
	q := s.DB.Table("jobs").
		Select("jobs.id, jobs.employer_id, jobs.title, jobs.description, jobs.required_skills, jobs.location, jobs.created_at, accounts.company_name").
		Joins("JOIN accounts ON accounts.id = jobs.employer_id")

	if f.Search != "" {
		q = q.Where("jobs.title LIKE ?", "%"+f.Search+"%")
	}
	if f.Skills != "" {
		q = q.Where("jobs.required_skills LIKE ?", "%"+f.Skills+"%")
	}
	if f.Location != "" {
		q = q.Where("jobs.location LIKE ?", "%"+f.Location+"%")
	}

	views := []dtos.JobView{}
	if err := q.Order("jobs.created_at DESC").Scan(&views).Error; err != nil {
		return nil, apperr.Internal("listing jobs", err)
	}
	return views, nil
}

// Get returns one posting with the employer's company fields.
func (s *JobService) Get(id uint) (*dtos.JobView, error) {
	var view dtos.JobView
	err := s.DB.Table("jobs").
		Select("jobs.id, jobs.employer_id, jobs.title, jobs.description, jobs.required_skills, jobs.location, jobs.created_at, accounts.company_name, accounts.company_description").
		Joins("JOIN accounts ON accounts.id = jobs.employer_id").
		Where("jobs.id = ?", id).
		Take(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperr.Internal("loading job", err)
	}
	return &view, nil
}

// Mine lists the calling employer's own postings, newest first.
func (s *JobService) Mine(employerID uint) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.DB.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Internal("listing employer jobs", err)
	}
	return jobs, nil
}
