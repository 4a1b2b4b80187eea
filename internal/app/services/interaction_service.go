package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/repositories"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
)

// InteractionService handles posts, comments and votes, enforcing the
// membership visibility scope and ownership gates.
type InteractionService interface {
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Interaction, error)
	CreateComment(ctx context.Context, userID int64, req *dto.CreateCommentRequest) (*models.Interaction, error)
	ListPostsVisibleTo(ctx context.Context, userID int64) ([]*models.Interaction, error)
	ListPostsByAuthor(ctx context.Context, authorID, callerID int64) ([]*models.Interaction, error)
	ListCommentsFor(ctx context.Context, postID int64) ([]*models.Interaction, error)
	Update(ctx context.Context, interactionID, callerID int64, req *dto.UpdateInteractionRequest) (*models.Interaction, error)
	Delete(ctx context.Context, interactionID, callerID int64) error
	Upvote(ctx context.Context, interactionID int64) error
	Downvote(ctx context.Context, interactionID int64) error
}

type interactionServiceImpl struct {
	interactionRepo   repositories.IInteractionRepository
	userRepo          repositories.IUserRepository
	membershipService MembershipService
	logger            zerolog.Logger
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	interactionRepo repositories.IInteractionRepository,
	userRepo repositories.IUserRepository,
	membershipService MembershipService,
	logger zerolog.Logger,
) InteractionService {
	return &interactionServiceImpl{
		interactionRepo:   interactionRepo,
		userRepo:          userRepo,
		membershipService: membershipService,
		logger:            logger,
	}
}

// checkAuthorScope verifies the target university is in the author's
// membership set; an interaction's visibility scope must be one the author
// actually belongs to.
func (s *interactionServiceImpl) checkAuthorScope(ctx context.Context, userID, universityID int64) error {
	ids, err := s.membershipService.MembershipsOf(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == universityID {
			return nil
		}
	}
	return apperrors.NewForbiddenError("Cannot create interactions outside your universities")
}

// CreatePost creates a new post with votes at zero and a server timestamp
func (s *interactionServiceImpl) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Interaction, error) {
	if req.Type != "" && models.InteractionType(req.Type) != models.InteractionPost {
		return nil, apperrors.NewBadRequestError("Bad Request, endpoint for posts only")
	}
	if strings.TrimSpace(req.Content.Title) == "" || strings.TrimSpace(req.Content.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrValidationFailed)
	}

	if err := s.checkAuthorScope(ctx, userID, req.UniversityID); err != nil {
		return nil, err
	}

	title := req.Content.Title
	interaction := &models.Interaction{
		UserID:       userID,
		Type:         models.InteractionPost,
		Title:        &title,
		Content:      req.Content.Description,
		UniversityID: req.UniversityID,
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("interactionID", interaction.ID).
		Int64("userID", userID).
		Int64("universityID", req.UniversityID).
		Msg("Post created")

	return interaction, nil
}

// CreateComment creates a comment replying to an existing post
func (s *interactionServiceImpl) CreateComment(ctx context.Context, userID int64, req *dto.CreateCommentRequest) (*models.Interaction, error) {
	if req.Type != "" && models.InteractionType(req.Type) != models.InteractionComment {
		return nil, apperrors.NewBadRequestError("Bad Request, endpoint for comments only")
	}
	if strings.TrimSpace(req.Content.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidationFailed)
	}

	parent, err := s.interactionRepo.GetByID(ctx, req.ResponseTo)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	if !parent.IsPost() {
		// Single-level threading only: comments reply to posts, never to
		// other comments.
		return nil, apperrors.ErrPostNotFound
	}

	if err := s.checkAuthorScope(ctx, userID, req.UniversityID); err != nil {
		return nil, err
	}

	responseTo := req.ResponseTo
	interaction := &models.Interaction{
		UserID:       userID,
		Type:         models.InteractionComment,
		Content:      req.Content.Description,
		UniversityID: req.UniversityID,
		ResponseTo:   &responseTo,
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("interactionID", interaction.ID).
		Int64("responseTo", responseTo).
		Int64("userID", userID).
		Msg("Comment created")

	return interaction, nil
}

// ListPostsVisibleTo returns the posts in the caller's visibility scope,
// newest first. A user with no memberships has no scope and gets not-found.
func (s *interactionServiceImpl) ListPostsVisibleTo(ctx context.Context, userID int64) ([]*models.Interaction, error) {
	universityIDs, err := s.membershipService.MembershipsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(universityIDs) == 0 {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}

	return s.interactionRepo.ListPostsByUniversities(ctx, universityIDs)
}

// ListPostsByAuthor returns a user's posts, newest first. Reading another
// user's posts requires sharing at least one university with them.
func (s *interactionServiceImpl) ListPostsByAuthor(ctx context.Context, authorID, callerID int64) ([]*models.Interaction, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	if authorID != callerID {
		shared, err := s.membershipService.SameUniversity(ctx, callerID, authorID)
		if err != nil {
			return nil, err
		}
		if !shared {
			return nil, apperrors.NewForbiddenError("Cannot access interactions of users from different universities")
		}
	}

	return s.interactionRepo.ListPostsByAuthor(ctx, authorID)
}

// ListCommentsFor returns all comments for a post in insertion order
func (s *interactionServiceImpl) ListCommentsFor(ctx context.Context, postID int64) ([]*models.Interaction, error) {
	return s.interactionRepo.ListCommentsFor(ctx, postID)
}

// getOwned fetches an interaction for mutation. A missing row and an
// ownership mismatch produce the same error so a non-owner cannot probe for
// existence; the two causes are only distinguished in the log.
func (s *interactionServiceImpl) getOwned(ctx context.Context, interactionID, callerID int64) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(ctx, interactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Debug().
				Int64("interactionID", interactionID).
				Int64("callerID", callerID).
				Str("cause", "missing").
				Msg("Interaction mutation refused")
			return nil, apperrors.ErrInteractionNotFound
		}
		return nil, err
	}

	if interaction.UserID != callerID {
		s.logger.Warn().
			Int64("interactionID", interactionID).
			Int64("callerID", callerID).
			Int64("ownerID", interaction.UserID).
			Str("cause", "not_owner").
			Msg("Interaction mutation refused")
		return nil, apperrors.ErrInteractionNotFound
	}

	return interaction, nil
}

// Update rewrites an interaction's type and content; owner only
func (s *interactionServiceImpl) Update(ctx context.Context, interactionID, callerID int64, req *dto.UpdateInteractionRequest) (*models.Interaction, error) {
	if req.Type == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: type and content are required", apperrors.ErrValidationFailed)
	}

	if _, err := s.getOwned(ctx, interactionID, callerID); err != nil {
		return nil, err
	}

	updated, err := s.interactionRepo.Update(ctx, interactionID, req.Type, req.Content)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an interaction permanently; owner only, no soft delete
func (s *interactionServiceImpl) Delete(ctx context.Context, interactionID, callerID int64) error {
	if _, err := s.getOwned(ctx, interactionID, callerID); err != nil {
		return err
	}

	return s.interactionRepo.Delete(ctx, interactionID)
}

// Upvote increments the vote counter. No dedup and no per-user accounting:
// any authenticated caller may vote any number of times.
func (s *interactionServiceImpl) Upvote(ctx context.Context, interactionID int64) error {
	s.logger.Debug().Int64("interactionID", interactionID).Msg("Upvote applied without dedup")
	return s.interactionRepo.AddVote(ctx, interactionID, 1)
}

// Downvote decrements the vote counter; there is no floor, counters may go
// negative.
func (s *interactionServiceImpl) Downvote(ctx context.Context, interactionID int64) error {
	s.logger.Debug().Int64("interactionID", interactionID).Msg("Downvote applied without dedup")
	return s.interactionRepo.AddVote(ctx, interactionID, -1)
}
