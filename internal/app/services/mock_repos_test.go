package services

import (
	"context"
	"sort"
	"time"

	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
)

// In-memory repository doubles backing the service tests. They mimic the
// behavior the SQL layer guarantees: id assignment, uniqueness conflicts and
// ordering.

// ── mock user repository ──

type mockUserRepo struct {
	users        map[int64]*models.User
	memberships  *mockMembershipRepo
	nextID       int64
	upgradeCalls int
}

// newMockUserRepo shares a membership repo so registration records the
// membership rows the real repository writes in the same transaction.
func newMockUserRepo(memberships *mockMembershipRepo) *mockUserRepo {
	return &mockUserRepo{
		users:       make(map[int64]*models.User),
		memberships: memberships,
		nextID:      1,
	}
}

func (m *mockUserRepo) seed(user *models.User, universityIDs ...int64) *models.User {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.memberships.byUser[user.ID] = universityIDs
	return user
}

func (m *mockUserRepo) Register(_ context.Context, user *models.User, universityIDs []int64) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	for _, universityID := range universityIDs {
		_ = m.memberships.Create(nil, user.ID, universityID)
	}
	return nil
}

func (m *mockUserRepo) UpgradeStub(_ context.Context, user *models.User, universityIDs []int64) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Password = user.Password
	stored.Role = user.Role
	for _, universityID := range universityIDs {
		_ = m.memberships.Create(nil, user.ID, universityID)
	}
	m.upgradeCalls++
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetNameByID(_ context.Context, id int64) (string, error) {
	if u, ok := m.users[id]; ok {
		return u.Name, nil
	}
	return "", apperrors.ErrUserNotFound
}

func (m *mockUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ── mock membership repository ──

type mockMembershipRepo struct {
	byUser map[int64][]int64
}

func newMockMembershipRepo() *mockMembershipRepo {
	return &mockMembershipRepo{byUser: make(map[int64][]int64)}
}

func (m *mockMembershipRepo) UniversityIDsForUser(_ context.Context, userID int64) ([]int64, error) {
	ids := m.byUser[userID]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out, nil
}

func (m *mockMembershipRepo) Create(_ context.Context, userID, universityID int64) error {
	for _, id := range m.byUser[userID] {
		if id == universityID {
			return nil
		}
	}
	m.byUser[userID] = append(m.byUser[userID], universityID)
	return nil
}

// ── mock interaction repository ──

type mockInteractionRepo struct {
	interactions map[int64]*models.Interaction
	nextID       int64
	clock        time.Time
}

func newMockInteractionRepo() *mockInteractionRepo {
	return &mockInteractionRepo{
		interactions: make(map[int64]*models.Interaction),
		nextID:       1,
		clock:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockInteractionRepo) Create(_ context.Context, interaction *models.Interaction) error {
	interaction.ID = m.nextID
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	interaction.Timestamp = m.clock
	interaction.Votes = 0
	stored := *interaction
	m.interactions[interaction.ID] = &stored
	return nil
}

func (m *mockInteractionRepo) GetByID(_ context.Context, id int64) (*models.Interaction, error) {
	if i, ok := m.interactions[id]; ok {
		copied := *i
		return &copied, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockInteractionRepo) ListPostsByAuthor(_ context.Context, userID int64) ([]*models.Interaction, error) {
	var out []*models.Interaction
	for _, i := range m.interactions {
		if i.UserID == userID && i.Type == models.InteractionPost {
			copied := *i
			out = append(out, &copied)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *mockInteractionRepo) ListPostsByUniversities(_ context.Context, universityIDs []int64) ([]*models.Interaction, error) {
	allowed := make(map[int64]bool, len(universityIDs))
	for _, id := range universityIDs {
		allowed[id] = true
	}
	var out []*models.Interaction
	for _, i := range m.interactions {
		if i.Type == models.InteractionPost && allowed[i.UniversityID] {
			copied := *i
			out = append(out, &copied)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *mockInteractionRepo) ListCommentsFor(_ context.Context, postID int64) ([]*models.Interaction, error) {
	var out []*models.Interaction
	for _, i := range m.interactions {
		if i.ResponseTo != nil && *i.ResponseTo == postID {
			copied := *i
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (m *mockInteractionRepo) Update(_ context.Context, id int64, interactionType models.InteractionType, content string) (*models.Interaction, error) {
	i, ok := m.interactions[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	i.Type = interactionType
	i.Content = content
	copied := *i
	return &copied, nil
}

func (m *mockInteractionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.interactions[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.interactions, id)
	return nil
}

func (m *mockInteractionRepo) AddVote(_ context.Context, id int64, delta int) error {
	i, ok := m.interactions[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	i.Votes += delta
	return nil
}

func sortNewestFirst(interactions []*models.Interaction) {
	sort.Slice(interactions, func(a, b int) bool {
		return interactions[a].Timestamp.After(interactions[b].Timestamp)
	})
}

// ── mock university repository ──

type mockUniversityRepo struct {
	universities map[int64]*models.University
	nextID       int64
}

func newMockUniversityRepo() *mockUniversityRepo {
	return &mockUniversityRepo{
		universities: make(map[int64]*models.University),
		nextID:       1,
	}
}

func (m *mockUniversityRepo) Create(_ context.Context, university *models.University) (int64, error) {
	for _, u := range m.universities {
		if u.Name == university.Name {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
	}
	id := m.nextID
	m.nextID++
	stored := *university
	stored.ID = id
	stored.CreatedAt = time.Now()
	m.universities[id] = &stored
	return id, nil
}

func (m *mockUniversityRepo) GetByID(_ context.Context, id int64) (*models.University, error) {
	if u, ok := m.universities[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperrors.ErrUniversityNotFound
}

func (m *mockUniversityRepo) GetAll(_ context.Context) ([]*models.University, error) {
	out := make([]*models.University, 0, len(m.universities))
	for _, u := range m.universities {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (m *mockUniversityRepo) NameExists(_ context.Context, name string) (bool, error) {
	for _, u := range m.universities {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}
