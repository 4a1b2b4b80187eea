package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 720 * time.Hour,
		TokenIssuer:    "test",
	})
}

func newTestAuthService() (AuthService, *mockUserRepo, *mockMembershipRepo) {
	membershipRepo := newMockMembershipRepo()
	userRepo := newMockUserRepo(membershipRepo)
	membershipService := NewMembershipService(membershipRepo)
	svc := NewAuthService(userRepo, membershipService, newTestJWTService(), zerolog.Nop())
	return svc, userRepo, membershipRepo
}

func studentRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:          "Ayse Yilmaz",
		Email:         "ayse@example.com",
		Password:      "s3cret",
		UniversityIDs: []int64{5},
	}
}

func TestAuthService_Register_Student(t *testing.T) {
	svc, userRepo, membershipRepo := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")

	stored, err := userRepo.GetByEmail(ctx, "ayse@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	ids, err := membershipRepo.UniversityIDsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids)
}

func TestAuthService_Register_AdminIgnoresUniversities(t *testing.T) {
	svc, _, membershipRepo := newTestAuthService()
	ctx := context.Background()

	req := studentRequest()
	user, err := svc.Register(ctx, models.RoleAdmin, req)
	require.NoError(t, err)

	ids, err := membershipRepo.UniversityIDsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RoleAlumni, studentRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	req := studentRequest()
	req.Email = "not-an-email"
	_, err := svc.Register(context.Background(), models.RoleStudent, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestAuthService_Register_ClaimsAdminStubExactlyOnce(t *testing.T) {
	svc, userRepo, membershipRepo := newTestAuthService()
	ctx := context.Background()

	hashed, err := auth.HashPassword("placeholder")
	require.NoError(t, err)
	stub := userRepo.seed(&models.User{
		Name:     "Pre-provisioned",
		Email:    "ayse@example.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	})

	user, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)

	assert.Equal(t, stub.ID, user.ID, "registration must claim the stub row, not create a new one")
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "Ayse Yilmaz", user.Name)
	assert.Equal(t, 1, userRepo.upgradeCalls)

	ids, err := membershipRepo.UniversityIDsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids)

	// The row is no longer Admin-role, so a second claim is an ordinary
	// duplicate.
	_, err = svc.Register(ctx, models.RoleAlumni, studentRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.Equal(t, 1, userRepo.upgradeCalls)
}

func TestAuthService_Register_AdminCannotClaimAdminStub(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()

	hashed, err := auth.HashPassword("placeholder")
	require.NoError(t, err)
	userRepo.seed(&models.User{
		Name:     "Pre-provisioned",
		Email:    "ayse@example.com",
		Password: hashed,
		Role:     models.RoleAdmin,
	})

	_, err = svc.Register(context.Background(), models.RoleAdmin, studentRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_TokenCarriesEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := newTestJWTService().ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)

	assert.Equal(t, []int64{5}, resp.User.UniversityIDs)
}

func TestAuthService_Login_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)

	_, unknownEmailErr := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	_, wrongPasswordErr := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "wrong"})

	assert.ErrorIs(t, unknownEmailErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestAuthService_VerifyToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleStudent, studentRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", claims.Email)

	_, err = svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
