package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	UserRepository        *UserRepository
	MembershipRepository  *MembershipRepository
	UniversityRepository  *UniversityRepository
	InteractionRepository *InteractionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		MembershipRepository:  NewMembershipRepository(db),
		UniversityRepository:  NewUniversityRepository(db),
		InteractionRepository: NewInteractionRepository(db),
	}
}
