package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Wizz677/applysmart/internal/database"
	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/token"
)

// newTestDB opens a fresh in-memory SQLite database per test so the real
// unique index on (job_id, user_id) is in play. The pool is pinned to one
// connection; each new connection to :memory: would otherwise get its own
// empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func createSeeker(t *testing.T, db *gorm.DB, email, resumePath string) *models.Account {
	t.Helper()
	acct := &models.Account{
		Name:         "Test Seeker",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleJobSeeker,
		Skills:       "Go, SQL",
		ResumePath:   resumePath,
	}
	if err := db.Create(acct).Error; err != nil {
		t.Fatalf("creating seeker: %v", err)
	}
	return acct
}

func createEmployer(t *testing.T, db *gorm.DB, email, company string) *models.Account {
	t.Helper()
	acct := &models.Account{
		Name:         "Test Employer",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleEmployer,
		CompanyName:  company,
	}
	if err := db.Create(acct).Error; err != nil {
		t.Fatalf("creating employer: %v", err)
	}
	return acct
}

func createJob(t *testing.T, db *gorm.DB, employerID uint, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:     employerID,
		Title:          title,
		Description:    "description",
		RequiredSkills: "Go, SQL",
		Location:       "Remote",
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("creating job: %v", err)
	}
	return job
}

func identityOf(acct *models.Account) token.Identity {
	return token.Identity{UserID: acct.ID, Role: acct.Role}
}
