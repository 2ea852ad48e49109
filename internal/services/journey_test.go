package services

import (
	"testing"

	"github.com/Wizz677/applysmart/internal/dtos"
)

// TestSeekerApplicationJourney walks the full flow: both sides sign up, the
// employer posts a job, the seeker uploads a resume and applies, and each
// side sees the application from their own dashboard.
func TestSeekerApplicationJourney(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)
	jobs := NewJobService(db)
	applications := NewApplicationService(db)

	employer, err := accounts.Signup(&dtos.SignupRequest{
		Name:        "Erin",
		Email:       "erin@acme.example.com",
		Password:    "password123",
		Role:        "employer",
		CompanyName: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("employer signup: %v", err)
	}
	seeker, err := accounts.Signup(&dtos.SignupRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "password123",
		Role:     "job_seeker",
		Skills:   "Go, SQL",
	})
	if err != nil {
		t.Fatalf("seeker signup: %v", err)
	}

	job, err := jobs.Create(employer.ID, &dtos.JobCreationRequest{
		Title:          "Backend Engineer",
		Description:    "Build the application workflow",
		RequiredSkills: "Go, SQL",
		Location:       "Remote",
	})
	if err != nil {
		t.Fatalf("job create: %v", err)
	}

	// Applying before the resume upload must be refused outright.
	if _, err := applications.Apply(identityOf(seeker), job.ID); err == nil {
		t.Fatal("apply without resume succeeded")
	}

	if _, err := accounts.AttachResume(seeker.ID, "/uploads/sam.pdf"); err != nil {
		t.Fatalf("attach resume: %v", err)
	}
	if _, err := applications.Apply(identityOf(seeker), job.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	mine, err := applications.ListForSeeker(identityOf(seeker))
	if err != nil {
		t.Fatalf("ListForSeeker: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("seeker sees %d applications, want 1", len(mine))
	}
	if mine[0].JobID != job.ID || mine[0].Title != "Backend Engineer" || mine[0].CompanyName != "Acme Corp" {
		t.Fatalf("seeker view = %+v", mine[0])
	}

	applicants, err := applications.ApplicantsForJob(identityOf(employer), job.ID)
	if err != nil {
		t.Fatalf("ApplicantsForJob: %v", err)
	}
	if len(applicants) != 1 {
		t.Fatalf("employer sees %d applicants, want 1", len(applicants))
	}
	if applicants[0].UserID != seeker.ID || applicants[0].Name != "Sam" || applicants[0].ResumePath != "/uploads/sam.pdf" {
		t.Fatalf("employer view = %+v", applicants[0])
	}
}
