package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/repositories"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/auth"
)

// AuthService handles registration, login and token verification
type AuthService interface {
	Register(ctx context.Context, role models.RoleType, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyToken(tokenString string) (*auth.Claims, error)
}

type authServiceImpl struct {
	userRepo          repositories.IUserRepository
	membershipService MembershipService
	jwtService        *auth.JWTService
	logger            zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	membershipService MembershipService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:          userRepo,
		membershipService: membershipService,
		jwtService:        jwtService,
		logger:            logger,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateRegistration checks the request fields before any database work
func (s *authServiceImpl) validateRegistration(role models.RoleType, req *dto.RegisterRequest) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.ErrInvalidEmail
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates a user account. If the email already belongs to an
// Admin-role placeholder row, registration claims that row instead of
// rejecting: the stub's name, password and role are replaced and the subtype
// and membership rows are created as usual. The path works exactly once;
// after the upgrade the row is no longer Admin-role, so a repeat attempt
// conflicts like any other duplicate.
func (s *authServiceImpl) Register(ctx context.Context, role models.RoleType, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateRegistration(role, req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// Memberships are only attached to Student/Alumni accounts; Admins have
	// no visibility scope of their own.
	universityIDs := req.UniversityIDs
	if role == models.RoleAdmin {
		universityIDs = nil
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	if existing != nil {
		if existing.Role != models.RoleAdmin || role == models.RoleAdmin {
			return nil, apperrors.ErrEmailAlreadyExists
		}

		existing.Name = req.Name
		existing.Password = hashedPassword
		existing.Role = role
		if err := s.userRepo.UpgradeStub(ctx, existing, universityIDs); err != nil {
			return nil, fmt.Errorf("error upgrading pre-provisioned account: %w", err)
		}

		s.logger.Info().
			Int64("userID", existing.ID).
			Str("role", string(role)).
			Msg("Pre-provisioned account claimed by registration")
		return existing, nil
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Register(ctx, user, universityIDs); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(role)).
		Int("memberships", len(universityIDs)).
		Msg("User registered")

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller so accounts cannot be
// enumerated.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user for login: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	profile := dto.UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}

	if user.Role != models.RoleAdmin {
		universityIDs, err := s.membershipService.MembershipsOf(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error resolving memberships: %w", err)
		}
		profile.UniversityIDs = universityIDs
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.LoginResponse{
		AccessToken: token,
		User:        profile,
	}, nil
}

// VerifyToken validates a token string and returns its claims
func (s *authServiceImpl) VerifyToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
