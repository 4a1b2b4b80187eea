package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/alumnisphere/internal/pkg/logger"
)

// IMembershipRepository defines the interface for membership reads
type IMembershipRepository interface {
	UniversityIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	Create(ctx context.Context, userID, universityID int64) error
}

// MembershipRepository handles membership database operations. Membership is
// a pure relation record; there is no update path, only insert and read.
type MembershipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// UniversityIDsForUser returns all university IDs a user belongs to. An
// empty slice is a valid result (Admins, or users who never joined).
func (r *MembershipRepository) UniversityIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("university_id").
		From("membership").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build membership query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error querying memberships")
		return nil, fmt.Errorf("error querying memberships: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning membership row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return ids, nil
}

// Create inserts a membership row outside of registration (administrative path)
func (r *MembershipRepository) Create(ctx context.Context, userID, universityID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO membership (user_id, university_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, universityID)
	if err != nil {
		return fmt.Errorf("error creating membership: %w", err)
	}
	return nil
}
