package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/repositories"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
)

// UniversityService handles the university directory
type UniversityService interface {
	Register(ctx context.Context, req *dto.RegisterUniversityRequest) (*models.University, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	GetAll(ctx context.Context) ([]*models.University, error)
}

type universityServiceImpl struct {
	universityRepo repositories.IUniversityRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo repositories.IUniversityRepository) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
	}
}

// Register creates a university record, guarding against duplicate names.
// The existence check races with concurrent inserts; the unique constraint
// in the schema is the backstop and surfaces as the same conflict error.
func (s *universityServiceImpl) Register(ctx context.Context, req *dto.RegisterUniversityRequest) (*models.University, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.universityRepo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking university name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUniversityAlreadyExists
	}

	university := &models.University{
		Name:            req.Name,
		District:        req.District,
		EstablishedYear: req.EstablishedYear,
		Type:            req.Type,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
	}

	id, err := s.universityRepo.Create(ctx, university)
	if err != nil {
		return nil, err
	}
	university.ID = id

	return university, nil
}

// GetByID retrieves a university by ID
func (s *universityServiceImpl) GetByID(ctx context.Context, id int64) (*models.University, error) {
	return s.universityRepo.GetByID(ctx, id)
}

// GetAll retrieves all universities; no ordering is guaranteed
func (s *universityServiceImpl) GetAll(ctx context.Context) ([]*models.University, error) {
	return s.universityRepo.GetAll(ctx)
}
