package services

import (
	"testing"
	"time"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/token"
)

func TestApplySnapshotsResume(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/v1.pdf")
	job := createJob(t, db, employer.ID, "Backend Engineer")

	app, err := svc.Apply(identityOf(seeker), job.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if app.JobID != job.ID || app.UserID != seeker.ID {
		t.Fatalf("application keys = (%d, %d), want (%d, %d)", app.JobID, app.UserID, job.ID, seeker.ID)
	}
	if app.ResumePath != "/uploads/v1.pdf" {
		t.Fatalf("resume snapshot = %q, want /uploads/v1.pdf", app.ResumePath)
	}

	// A later resume upload must not rewrite the submitted application.
	if err := db.Model(seeker).Update("resume_path", "/uploads/v2.pdf").Error; err != nil {
		t.Fatalf("updating resume: %v", err)
	}
	var stored models.Application
	if err := db.First(&stored, app.ID).Error; err != nil {
		t.Fatalf("reloading application: %v", err)
	}
	if stored.ResumePath != "/uploads/v1.pdf" {
		t.Fatalf("stored snapshot = %q, want /uploads/v1.pdf", stored.ResumePath)
	}
}

func TestApplyTwiceConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")
	job := createJob(t, db, employer.ID, "Backend Engineer")

	if _, err := svc.Apply(identityOf(seeker), job.ID); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	_, err := svc.Apply(identityOf(seeker), job.ID)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("second Apply: err = %v, want Conflict", err)
	}

	var count int64
	if err := db.Model(&models.Application{}).Count(&count).Error; err != nil {
		t.Fatalf("counting applications: %v", err)
	}
	if count != 1 {
		t.Fatalf("application rows = %d, want 1", count)
	}
}

func TestApplyWithoutResume(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	seeker := createSeeker(t, db, "seeker@example.com", "")
	job := createJob(t, db, employer.ID, "Backend Engineer")

	_, err := svc.Apply(identityOf(seeker), job.ID)
	if !apperr.IsKind(err, apperr.KindPrerequisiteUnmet) {
		t.Fatalf("err = %v, want PrerequisiteUnmet", err)
	}

	var count int64
	if err := db.Model(&models.Application{}).Count(&count).Error; err != nil {
		t.Fatalf("counting applications: %v", err)
	}
	if count != 0 {
		t.Fatalf("application rows = %d, want 0", count)
	}
}

func TestApplyByEmployerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	job := createJob(t, db, employer.ID, "Backend Engineer")

	_, err := svc.Apply(identityOf(employer), job.ID)
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
}

func TestApplyMissingJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")

	_, err := svc.Apply(identityOf(seeker), 9999)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestStorageDuplicateDetection(t *testing.T) {
	db := newTestDB(t)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")
	job := createJob(t, db, employer.ID, "Backend Engineer")

	first := models.Application{JobID: job.ID, UserID: seeker.ID, ResumePath: "/uploads/r.pdf"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("inserting application: %v", err)
	}

	// The second insert for the same pair models the losing side of a
	// concurrent apply race: the workflow pre-check passed for both, and the
	// storage constraint rejects the slower writer.
	second := models.Application{JobID: job.ID, UserID: seeker.ID, ResumePath: "/uploads/r.pdf"}
	err := db.Create(&second).Error
	if err == nil {
		t.Fatal("duplicate insert succeeded; unique index missing")
	}
	if !isDuplicateKey(err) {
		t.Fatalf("duplicate insert not recognized as such: %v", err)
	}
}

func TestListForSeekerOrderingAndJoin(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme Corp")
	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")
	older := createJob(t, db, employer.ID, "First Role")
	newer := createJob(t, db, employer.ID, "Second Role")

	appOld, err := svc.Apply(identityOf(seeker), older.ID)
	if err != nil {
		t.Fatalf("Apply(older): %v", err)
	}
	appNew, err := svc.Apply(identityOf(seeker), newer.ID)
	if err != nil {
		t.Fatalf("Apply(newer): %v", err)
	}

	// Push the timestamps apart so the ordering assertion is deterministic.
	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	if err := db.Model(appOld).Update("created_at", base).Error; err != nil {
		t.Fatalf("backdating: %v", err)
	}
	if err := db.Model(appNew).Update("created_at", base.Add(time.Hour)).Error; err != nil {
		t.Fatalf("backdating: %v", err)
	}

	views, err := svc.ListForSeeker(identityOf(seeker))
	if err != nil {
		t.Fatalf("ListForSeeker: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d applications, want 2", len(views))
	}
	if views[0].JobID != newer.ID || views[1].JobID != older.ID {
		t.Fatalf("order = [%d %d], want newest first [%d %d]", views[0].JobID, views[1].JobID, newer.ID, older.ID)
	}
	if views[0].Title != "Second Role" || views[0].Location != "Remote" {
		t.Fatalf("join fields wrong: %+v", views[0])
	}
	if views[0].CompanyName != "Acme Corp" {
		t.Fatalf("company name = %q, want Acme Corp", views[0].CompanyName)
	}
}

func TestListForSeekerWrongRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	employer := createEmployer(t, db, "emp@example.com", "Acme")
	_, err := svc.ListForSeeker(identityOf(employer))
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
}

func TestApplicantsForJobOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	owner := createEmployer(t, db, "owner@example.com", "Acme")
	other := createEmployer(t, db, "other@example.com", "Rival")
	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")
	job := createJob(t, db, owner.ID, "Backend Engineer")

	if _, err := svc.Apply(identityOf(seeker), job.ID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Someone else's posting must look exactly like a missing one.
	_, err := svc.ApplicantsForJob(identityOf(other), job.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("non-owner: err = %v, want NotFound", err)
	}
	_, err = svc.ApplicantsForJob(identityOf(other), 9999)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("missing job: err = %v, want NotFound", err)
	}

	applicants, err := svc.ApplicantsForJob(identityOf(owner), job.ID)
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if len(applicants) != 1 {
		t.Fatalf("got %d applicants, want 1", len(applicants))
	}
	if applicants[0].UserID != seeker.ID || applicants[0].Name != "Test Seeker" {
		t.Fatalf("applicant = %+v", applicants[0])
	}
	if applicants[0].ResumePath != "/uploads/r.pdf" {
		t.Fatalf("resume path = %q", applicants[0].ResumePath)
	}
}

func TestApplicantsForJobWrongRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	seeker := createSeeker(t, db, "seeker@example.com", "/uploads/r.pdf")
	_, err := svc.ApplicantsForJob(token.Identity{UserID: seeker.ID, Role: models.RoleJobSeeker}, 1)
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
}
