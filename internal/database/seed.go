package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/models"
)

// seedPasswordHash is deliberately not a bcrypt digest. CompareHashAndPassword
// rejects it for every input, so the seeded employer can never log in.
const seedPasswordHash = "seed-placeholder-hash"

// Seed inserts a demo employer and a handful of tech postings when the jobs
// table is empty, so a fresh install has something to browse.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employer := models.Account{
		Name:               "ApplySmart Tech",
		Email:              "demo-employer@example.com",
		PasswordHash:       seedPasswordHash,
		Role:               models.RoleEmployer,
		CompanyName:        "ApplySmart Tech",
		CompanyDescription: "A demo tech company used for seeded job listings.",
	}
	if err := db.Create(&employer).Error; err != nil {
		return err
	}

	jobs := []models.Job{
		{
			Title:          "Frontend Developer (React + Vite)",
			Location:       "Remote / Global",
			RequiredSkills: "React, JavaScript (ES6+), Vite, Tailwind CSS, REST APIs, Git",
			Description:    "Build responsive UI components for the ApplySmart job portal using React, Vite, and Tailwind. Work closely with design to ship polished user experiences.",
		},
		{
			Title:          "Backend Engineer (Go)",
			Location:       "Remote / EU Timezones",
			RequiredSkills: "Go, PostgreSQL, REST API design, JWT auth",
			Description:    "Design and maintain secure backend APIs for job search, applications, and the Skill Gap Visualizer logic.",
		},
		{
			Title:          "Full-Stack Developer (React/Go)",
			Location:       "San Francisco, CA (Hybrid)",
			RequiredSkills: "React, Go, SQL, Git, Docker, Testing",
			Description:    "Own features end-to-end across the ApplySmart stack, from database schema changes to frontend UI polish.",
		},
		{
			Title:          "DevOps Engineer (CI/CD & Cloud)",
			Location:       "Remote / US",
			RequiredSkills: "CI/CD pipelines, GitHub Actions, Docker, Linux, Monitoring",
			Description:    "Set up and maintain CI/CD pipelines and observability for the ApplySmart MVP and related services.",
		},
		{
			Title:          "Junior Software Engineer (Entry-Level)",
			Location:       "Bangalore, India (On-site)",
			RequiredSkills: "JavaScript, HTML, CSS, basic React, Git, problem solving",
			Description:    "Work with a small team to implement features and fix bugs across the ApplySmart codebase, with strong mentorship.",
		},
	}
	for i := range jobs {
		jobs[i].EmployerID = employer.ID
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	log.Info("seeded demo employer and job postings", zap.Int("jobs", len(jobs)))
	return nil
}
