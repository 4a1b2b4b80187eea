package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
)

func TestUniversityService_Register(t *testing.T) {
	svc := NewUniversityService(newMockUniversityRepo())
	ctx := context.Background()

	university, err := svc.Register(ctx, &dto.RegisterUniversityRequest{
		Name:            "Bogazici University",
		District:        "Istanbul",
		EstablishedYear: 1863,
	})
	require.NoError(t, err)
	assert.NotZero(t, university.ID)
	assert.Equal(t, "Bogazici University", university.Name)
}

func TestUniversityService_Register_DuplicateName(t *testing.T) {
	svc := NewUniversityService(newMockUniversityRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUniversityRequest{Name: "Bogazici University"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterUniversityRequest{Name: "Bogazici University"})
	assert.ErrorIs(t, err, apperrors.ErrUniversityAlreadyExists)
}

func TestUniversityService_Register_EmptyName(t *testing.T) {
	svc := NewUniversityService(newMockUniversityRepo())

	_, err := svc.Register(context.Background(), &dto.RegisterUniversityRequest{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUniversityService_GetByID(t *testing.T) {
	svc := NewUniversityService(newMockUniversityRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, &dto.RegisterUniversityRequest{Name: "Bogazici University"})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUniversityNotFound)
}

func TestUniversityService_GetAll(t *testing.T) {
	svc := NewUniversityService(newMockUniversityRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterUniversityRequest{Name: "Bogazici University"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &dto.RegisterUniversityRequest{Name: "ODTU"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
