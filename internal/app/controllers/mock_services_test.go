package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Canned-result service doubles for the controller tests.

// ── mock AuthService ──

type mockAuthService struct {
	registerResult *models.User
	registerErr    error
	registeredRole models.RoleType
	loginResult    *dto.LoginResponse
	loginErr       error
	verifyClaims   *auth.Claims
	verifyErr      error
}

func (m *mockAuthService) Register(_ context.Context, role models.RoleType, _ *dto.RegisterRequest) (*models.User, error) {
	m.registeredRole = role
	return m.registerResult, m.registerErr
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}

func (m *mockAuthService) VerifyToken(_ string) (*auth.Claims, error) {
	return m.verifyClaims, m.verifyErr
}

// ── mock InteractionService ──

type mockInteractionService struct {
	createPostResult    *models.Interaction
	createPostErr       error
	createCommentResult *models.Interaction
	createCommentErr    error
	visibleResult       []*models.Interaction
	visibleErr          error
	byAuthorResult      []*models.Interaction
	byAuthorErr         error
	commentsResult      []*models.Interaction
	commentsErr         error
	updateResult        *models.Interaction
	updateErr           error
	deleteErr           error
	upvoteErr           error
	downvoteErr         error

	lastUserID   int64
	lastCallerID int64
	lastAuthorID int64
	lastTargetID int64
}

func (m *mockInteractionService) CreatePost(_ context.Context, userID int64, _ *dto.CreatePostRequest) (*models.Interaction, error) {
	m.lastUserID = userID
	return m.createPostResult, m.createPostErr
}

func (m *mockInteractionService) CreateComment(_ context.Context, userID int64, _ *dto.CreateCommentRequest) (*models.Interaction, error) {
	m.lastUserID = userID
	return m.createCommentResult, m.createCommentErr
}

func (m *mockInteractionService) ListPostsVisibleTo(_ context.Context, userID int64) ([]*models.Interaction, error) {
	m.lastUserID = userID
	return m.visibleResult, m.visibleErr
}

func (m *mockInteractionService) ListPostsByAuthor(_ context.Context, authorID, callerID int64) ([]*models.Interaction, error) {
	m.lastAuthorID = authorID
	m.lastCallerID = callerID
	return m.byAuthorResult, m.byAuthorErr
}

func (m *mockInteractionService) ListCommentsFor(_ context.Context, postID int64) ([]*models.Interaction, error) {
	m.lastTargetID = postID
	return m.commentsResult, m.commentsErr
}

func (m *mockInteractionService) Update(_ context.Context, interactionID, callerID int64, _ *dto.UpdateInteractionRequest) (*models.Interaction, error) {
	m.lastTargetID = interactionID
	m.lastCallerID = callerID
	return m.updateResult, m.updateErr
}

func (m *mockInteractionService) Delete(_ context.Context, interactionID, callerID int64) error {
	m.lastTargetID = interactionID
	m.lastCallerID = callerID
	return m.deleteErr
}

func (m *mockInteractionService) Upvote(_ context.Context, interactionID int64) error {
	m.lastTargetID = interactionID
	return m.upvoteErr
}

func (m *mockInteractionService) Downvote(_ context.Context, interactionID int64) error {
	m.lastTargetID = interactionID
	return m.downvoteErr
}

// ── mock UniversityService ──

type mockUniversityService struct {
	registerResult *models.University
	registerErr    error
	getResult      *models.University
	getErr         error
	getAllResult   []*models.University
	getAllErr      error
}

func (m *mockUniversityService) Register(_ context.Context, _ *dto.RegisterUniversityRequest) (*models.University, error) {
	return m.registerResult, m.registerErr
}

func (m *mockUniversityService) GetByID(_ context.Context, _ int64) (*models.University, error) {
	return m.getResult, m.getErr
}

func (m *mockUniversityService) GetAll(_ context.Context) ([]*models.University, error) {
	return m.getAllResult, m.getAllErr
}

// ── mock UserService ──

type mockUserService struct {
	name string
	err  error
}

func (m *mockUserService) GetNameByID(_ context.Context, _ int64) (string, error) {
	return m.name, m.err
}
