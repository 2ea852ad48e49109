package dtos

import "time"

// ApplicationView is a seeker's application joined with job and company
// display fields.
type ApplicationView struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	ResumePath  string    `json:"resume_path"`
	AppliedAt   time.Time `json:"applied_at"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	CompanyName string    `json:"company_name"`
}

// ApplicantView is what an employer sees per application on their posting.
type ApplicantView struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	ResumePath string    `json:"resume_path"`
	AppliedAt  time.Time `json:"applied_at"`
}
