package dtos

import "time"

type JobCreationRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	RequiredSkills string `json:"required_skills" binding:"required"`
	Location       string `json:"location" binding:"required"`
}

// JobFilter carries the optional search query params. Filtering is plain
// substring matching over stored fields.
type JobFilter struct {
	Search   string `form:"search"`
	Skills   string `form:"skills"`
	Location string `form:"location"`
}

// JobView is a posting joined with its employer's company fields for
// display.
type JobView struct {
	ID                 uint      `json:"id"`
	EmployerID         uint      `json:"employer_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	RequiredSkills     string    `json:"required_skills"`
	Location           string    `json:"location"`
	CreatedAt          time.Time `json:"created_at"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description,omitempty"`
}
