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
	"github.com/ozan/alumnisphere/internal/pkg/logger"
)

// IInteractionRepository defines the interface for interaction database operations
type IInteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	GetByID(ctx context.Context, id int64) (*models.Interaction, error)
	ListPostsByAuthor(ctx context.Context, userID int64) ([]*models.Interaction, error)
	ListPostsByUniversities(ctx context.Context, universityIDs []int64) ([]*models.Interaction, error)
	ListCommentsFor(ctx context.Context, postID int64) ([]*models.Interaction, error)
	Update(ctx context.Context, id int64, interactionType models.InteractionType, content string) (*models.Interaction, error)
	Delete(ctx context.Context, id int64) error
	AddVote(ctx context.Context, id int64, delta int) error
}

const interactionColumns = "interaction_id, user_id, type, title, content, timestamp, votes, university_id, response_to"

// InteractionRepository handles interaction database operations
type InteractionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInteraction(row pgx.Row) (*models.Interaction, error) {
	interaction := &models.Interaction{}
	err := row.Scan(
		&interaction.ID, &interaction.UserID, &interaction.Type, &interaction.Title,
		&interaction.Content, &interaction.Timestamp, &interaction.Votes,
		&interaction.UniversityID, &interaction.ResponseTo)
	if err != nil {
		return nil, err
	}
	return interaction, nil
}

// Create inserts a new interaction with a server-assigned timestamp and
// votes starting at zero.
func (r *InteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO interactions (user_id, type, title, content, timestamp, votes, university_id, response_to)
		VALUES ($1, $2, $3, $4, NOW(), 0, $5, $6)
		RETURNING interaction_id, timestamp, votes`,
		interaction.UserID, interaction.Type, interaction.Title, interaction.Content,
		interaction.UniversityID, interaction.ResponseTo).
		Scan(&interaction.ID, &interaction.Timestamp, &interaction.Votes)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create interaction query")
		return fmt.Errorf("error creating interaction: %w", err)
	}
	return nil
}

// GetByID retrieves an interaction by ID
func (r *InteractionRepository) GetByID(ctx context.Context, id int64) (*models.Interaction, error) {
	sql, args, err := r.sb.Select(interactionColumns).
		From("interactions").
		Where(squirrel.Eq{"interaction_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get interaction query: %w", err)
	}

	interaction, err := scanInteraction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("interactionID", id).Msg("Error scanning interaction row")
		return nil, fmt.Errorf("error getting interaction by ID: %w", err)
	}

	return interaction, nil
}

// ListPostsByAuthor retrieves a user's posts, newest first
func (r *InteractionRepository) ListPostsByAuthor(ctx context.Context, userID int64) ([]*models.Interaction, error) {
	sql, args, err := r.sb.Select(interactionColumns).
		From("interactions").
		Where(squirrel.Eq{"user_id": userID, "type": models.InteractionPost}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts by author query: %w", err)
	}

	return r.queryInteractions(ctx, sql, args)
}

// ListPostsByUniversities retrieves posts scoped to a set of universities,
// newest first. The caller resolves the set from memberships.
func (r *InteractionRepository) ListPostsByUniversities(ctx context.Context, universityIDs []int64) ([]*models.Interaction, error) {
	sql, args, err := r.sb.Select(interactionColumns).
		From("interactions").
		Where(squirrel.Eq{"university_id": universityIDs, "type": models.InteractionPost}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build visible posts query: %w", err)
	}

	return r.queryInteractions(ctx, sql, args)
}

// ListCommentsFor retrieves all comments responding to a post, in insertion order
func (r *InteractionRepository) ListCommentsFor(ctx context.Context, postID int64) ([]*models.Interaction, error) {
	sql, args, err := r.sb.Select(interactionColumns).
		From("interactions").
		Where(squirrel.Eq{"response_to": postID}).
		OrderBy("interaction_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	return r.queryInteractions(ctx, sql, args)
}

// Update replaces an interaction's type and content
func (r *InteractionRepository) Update(ctx context.Context, id int64, interactionType models.InteractionType, content string) (*models.Interaction, error) {
	interaction, err := scanInteraction(r.db.QueryRow(ctx, `
		UPDATE interactions
		SET type = $1, content = $2
		WHERE interaction_id = $3
		RETURNING `+interactionColumns,
		interactionType, content, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("interactionID", id).Msg("Error updating interaction")
		return nil, fmt.Errorf("error updating interaction: %w", err)
	}
	return interaction, nil
}

// Delete removes an interaction permanently
func (r *InteractionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interactions WHERE interaction_id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("interactionID", id).Msg("Error deleting interaction")
		return fmt.Errorf("error deleting interaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// AddVote applies a relative vote increment. The update is expressed as
// votes = votes + delta so concurrent votes are never lost to
// read-modify-write races. There is no floor; counters may go negative.
func (r *InteractionRepository) AddVote(ctx context.Context, id int64, delta int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE interactions SET votes = votes + $1 WHERE interaction_id = $2`,
		delta, id)
	if err != nil {
		logger.Error().Err(err).Int64("interactionID", id).Msg("Error updating vote counter")
		return fmt.Errorf("error updating votes: %w", err)
	}
	return nil
}

func (r *InteractionRepository) queryInteractions(ctx context.Context, sql string, args []interface{}) ([]*models.Interaction, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing interactions query")
		return nil, fmt.Errorf("error querying interactions: %w", err)
	}
	defer rows.Close()

	interactions := []*models.Interaction{}
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning interaction row: %w", err)
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interaction rows: %w", err)
	}

	return interactions, nil
}
