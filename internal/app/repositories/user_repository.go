package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/db"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/dberrors"
	"github.com/ozan/alumnisphere/internal/pkg/logger"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Register(ctx context.Context, user *models.User, universityIDs []int64) error
	UpgradeStub(ctx context.Context, user *models.User, universityIDs []int64) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetNameByID(ctx context.Context, id int64) (string, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Register inserts a user together with its role subtype row and membership
// rows inside a single transaction, so a partial failure leaves nothing
// behind. The users_email_key constraint is the backstop for the service
// level existence check.
func (r *UserRepository) Register(ctx context.Context, user *models.User, universityIDs []int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			user.Name, user.Email, user.Password, user.Role).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		if err := r.createRoleRows(ctx, tx, user, universityIDs); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// UpgradeStub claims a pre-provisioned Admin-role placeholder row: the name,
// password and role are replaced in place, then the subtype and membership
// rows are created as for a fresh registration. The caller guarantees the
// existing row's role is Admin.
func (r *UserRepository) UpgradeStub(ctx context.Context, user *models.User, universityIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE users
			SET name = $1, password = $2, role = $3
			WHERE id = $4
			RETURNING created_at`,
			user.Name, user.Password, user.Role, user.ID).Scan(&user.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error upgrading user stub: %w", err)
		}

		return r.createRoleRows(ctx, tx, user, universityIDs)
	})
}

// createRoleRows inserts the role subtype row and membership rows for a user.
func (r *UserRepository) createRoleRows(ctx context.Context, tx pgx.Tx, user *models.User, universityIDs []int64) error {
	switch user.Role {
	case models.RoleStudent:
		if _, err := tx.Exec(ctx, `INSERT INTO students (user_id) VALUES ($1)`, user.ID); err != nil {
			return fmt.Errorf("error creating student row: %w", err)
		}
	case models.RoleAlumni:
		if _, err := tx.Exec(ctx, `INSERT INTO alumni (user_id) VALUES ($1)`, user.ID); err != nil {
			return fmt.Errorf("error creating alumni row: %w", err)
		}
	}

	for _, universityID := range universityIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO membership (user_id, university_id) VALUES ($1, $2)`,
			user.ID, universityID); err != nil {
			return fmt.Errorf("error creating membership row: %w", err)
		}
	}
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetNameByID retrieves only a user's display name
func (r *UserRepository) GetNameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("error getting user name: %w", err)
	}
	return name, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}
