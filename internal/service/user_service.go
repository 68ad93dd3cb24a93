package service

import (
	"fmt"

	"kinshare/internal/models"
	"kinshare/internal/policy"
	"kinshare/internal/repository"
)

// UserService handles profile and member-listing logic
type UserService struct {
	userRepo   *repository.UserRepository
	familyRepo *repository.FamilyRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository, familyRepo *repository.FamilyRepository) *UserService {
	return &UserService{userRepo: userRepo, familyRepo: familyRepo}
}

// UserAccount is the caller's own profile together with the families they
// belong to
type UserAccount struct {
	Profile  models.Profile  `json:"user"`
	Families []models.Family `json:"families"`
}

// GetAccount returns the caller's profile and family memberships
func (s *UserService) GetAccount(caller *models.User) (*UserAccount, error) {
	families, err := s.familyRepo.GetUserFamilies(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user families: %w", err)
	}
	if families == nil {
		families = []models.Family{}
	}

	return &UserAccount{
		Profile:  caller.Profile(),
		Families: families,
	}, nil
}

// ListMembers returns the redacted profiles of all users. Any authenticated
// caller may list members; the redaction strips access tokens and provider
// identities.
func (s *UserService) ListMembers(caller *models.User) ([]models.Profile, error) {
	if !policy.CanListMembers(caller) {
		return nil, ErrForbidden
	}

	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	return profiles, nil
}
