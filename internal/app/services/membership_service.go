package services

import (
	"context"
	"fmt"

	"github.com/ozan/alumnisphere/internal/app/repositories"
)

// MembershipService resolves the university set a user belongs to. It is a
// pure read projection over membership rows: no caching, every call reflects
// the store at call time.
type MembershipService interface {
	MembershipsOf(ctx context.Context, userID int64) ([]int64, error)
	SameUniversity(ctx context.Context, userA, userB int64) (bool, error)
}

type membershipServiceImpl struct {
	membershipRepo repositories.IMembershipRepository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(membershipRepo repositories.IMembershipRepository) MembershipService {
	return &membershipServiceImpl{
		membershipRepo: membershipRepo,
	}
}

// MembershipsOf returns the university IDs a user belongs to; an empty set
// is a valid answer.
func (s *membershipServiceImpl) MembershipsOf(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.membershipRepo.UniversityIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving memberships for user %d: %w", userID, err)
	}
	return ids, nil
}

// SameUniversity reports whether two users' membership sets intersect.
func (s *membershipServiceImpl) SameUniversity(ctx context.Context, userA, userB int64) (bool, error) {
	idsA, err := s.MembershipsOf(ctx, userA)
	if err != nil {
		return false, err
	}
	idsB, err := s.MembershipsOf(ctx, userB)
	if err != nil {
		return false, err
	}

	set := make(map[int64]struct{}, len(idsA))
	for _, id := range idsA {
		set[id] = struct{}{}
	}
	for _, id := range idsB {
		if _, ok := set[id]; ok {
			return true, nil
		}
	}
	return false, nil
}
