package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Wizz677/applysmart/internal/apperr"
	"github.com/Wizz677/applysmart/internal/auth"
	"github.com/Wizz677/applysmart/internal/dtos"
	"github.com/Wizz677/applysmart/internal/models"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{
		DB: db,
	}
}

// Signup creates an account. Role is fixed at creation; only the optional
// field group matching the role is stored.
func (s *AccountService) Signup(req *dtos.SignupRequest) (*models.Account, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperr.Validation("Invalid role")
	}

	var existing models.Account
	err := s.DB.Select("id").Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("looking up email", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("hashing password", err)
	}

	acct := &models.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	switch role {
	case models.RoleJobSeeker:
		acct.Skills = req.Skills
	case models.RoleEmployer:
		acct.CompanyName = req.CompanyName
		acct.CompanyDescription = req.CompanyDescription
	}

	if err := s.DB.Create(acct).Error; err != nil {
		// Unique email constraint can still fire under a signup race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already in use")
		}
		return nil, apperr.Internal("creating account", err)
	}
	return acct, nil
}

// Login verifies credentials. Unknown email and wrong password fail
// identically so the response does not reveal which was wrong.
func (s *AccountService) Login(req *dtos.LoginRequest) (*models.Account, error) {
	var acct models.Account
	err := s.DB.Where("email = ?", req.Email).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Validation("Invalid credentials")
	}
	if err != nil {
		return nil, apperr.Internal("looking up account", err)
	}
	if !auth.CheckPassword(req.Password, acct.PasswordHash) {
		return nil, apperr.Validation("Invalid credentials")
	}
	return &acct, nil
}

func (s *AccountService) Get(id uint) (*models.Account, error) {
	var acct models.Account
	err := s.DB.First(&acct, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("loading account", err)
	}
	return &acct, nil
}

// UpdateProfile applies only the field group matching the account's role;
// fields for the other role are ignored.
func (s *AccountService) UpdateProfile(id uint, req *dtos.ProfileUpdateRequest) (*models.Account, error) {
	acct, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	switch acct.Role {
	case models.RoleJobSeeker:
		if req.Skills != nil {
			acct.Skills = *req.Skills
		}
	case models.RoleEmployer:
		if req.CompanyName != nil {
			acct.CompanyName = *req.CompanyName
		}
		if req.CompanyDescription != nil {
			acct.CompanyDescription = *req.CompanyDescription
		}
	}

	if err := s.DB.Save(acct).Error; err != nil {
		return nil, apperr.Internal("updating profile", err)
	}
	return acct, nil
}

// AttachResume records a freshly stored resume reference on a seeker's
// account. Employers have no resume; the check fails closed.
func (s *AccountService) AttachResume(id uint, path string) (*models.Account, error) {
	acct, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if acct.Role != models.RoleJobSeeker {
		return nil, apperr.Forbidden("Forbidden")
	}
	acct.ResumePath = path
	if err := s.DB.Save(acct).Error; err != nil {
		return nil, apperr.Internal("saving resume reference", err)
	}
	return acct, nil
}
