package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/dberrors"
	"github.com/ozan/alumnisphere/internal/pkg/logger"
)

// IUniversityRepository defines the interface for university database operations
type IUniversityRepository interface {
	Create(ctx context.Context, university *models.University) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	GetAll(ctx context.Context) ([]*models.University, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new university record
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "district", "established_year", "type", "contact_email", "contact_phone", "address").
		Values(university.Name, university.District, university.EstablishedYear, university.Type,
			university.ContactEmail, university.ContactPhone, university.Address).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create university SQL")
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id, &university.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "universities_name_key") {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	return id, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "district", "established_year", "type",
		"contact_email", "contact_phone", "address", "created_at").
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university := &models.University{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&university.ID, &university.Name, &university.District, &university.EstablishedYear,
		&university.Type, &university.ContactEmail, &university.ContactPhone,
		&university.Address, &university.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// GetAll retrieves all universities
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "district", "established_year", "type",
		"contact_email", "contact_phone", "address", "created_at").
		From("universities").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		university := &models.University{}
		if err := rows.Scan(
			&university.ID, &university.Name, &university.District, &university.EstablishedYear,
			&university.Type, &university.ContactEmail, &university.ContactPhone,
			&university.Address, &university.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, university)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// NameExists checks if a university name already exists
func (r *UniversityRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM universities WHERE name = $1)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking university name: %w", err)
	}
	return exists, nil
}
