package models

import (
	"time"
)

// Role partitions accounts into the two sides of the board. There is no
// hierarchy between roles; checks are always exact-match.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// ParseRole reports whether s names a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleJobSeeker, RoleEmployer:
		return Role(s), true
	}
	return "", false
}

// Account holds both seeker and employer profiles; Role decides which of the
// optional field groups is meaningful.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null" json:"role"`

	// job_seeker only
	Skills     string `json:"skills"`
	ResumePath string `json:"resume_path"`

	// employer only
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Foreign Key
	EmployerID uint `gorm:"not null;index" json:"employer_id"`
	// Association: GORM needs Preload() to fill this
	Employer Account `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	RequiredSkills string `gorm:"not null" json:"required_skills"`
	Location       string `gorm:"not null" json:"location"`
}

// Application records one seeker's commitment to one job. The composite
// unique index is the storage half of the at-most-one-per-pair invariant;
// the workflow's pre-check is the other half.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"applied_at"`

	JobID  uint `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"user_id"`

	Job  Job     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User Account `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Resume reference captured at apply time; later uploads do not touch it.
	ResumePath string `gorm:"not null" json:"resume_path"`
}
