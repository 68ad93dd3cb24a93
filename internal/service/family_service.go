package service

import (
	"fmt"

	"kinshare/internal/models"
	"kinshare/internal/policy"
	"kinshare/internal/repository"
	"kinshare/internal/validation"
)

// FamilyService handles family business logic
type FamilyService struct {
	familyRepo *repository.FamilyRepository
}

// NewFamilyService creates a new family service
func NewFamilyService(familyRepo *repository.FamilyRepository) *FamilyService {
	return &FamilyService{familyRepo: familyRepo}
}

// CreateFamily creates a family with the caller as its sole admin and member
func (s *FamilyService) CreateFamily(caller *models.User, name, avatar string) (*models.Family, error) {
	if !policy.CanCreateFamily(caller) {
		return nil, ErrForbidden
	}
	if err := validation.ValidateFamilyName(name); err != nil {
		return nil, err
	}

	family, err := s.familyRepo.CreateFamily(name, avatar, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}

	return family, nil
}

// GetUserFamilies returns the families the caller belongs to
func (s *FamilyService) GetUserFamilies(caller *models.User) ([]models.Family, error) {
	families, err := s.familyRepo.GetUserFamilies(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user families: %w", err)
	}
	if families == nil {
		families = []models.Family{}
	}
	return families, nil
}

// GetFamilyWithMembers returns a family and its membership, redacting the
// member users to their public profiles
func (s *FamilyService) GetFamilyWithMembers(familyID int64) (*models.FamilyWithMembers, error) {
	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, ErrNotFound
	}

	members, users, err := s.familyRepo.GetFamilyMembers(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}

	profiles := make([]models.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	return &models.FamilyWithMembers{
		Family:  *family,
		Members: members,
		Users:   profiles,
	}, nil
}

// AddMember adds a user to a family. Only a family admin may add members.
// Existence is resolved before the permission check.
func (s *FamilyService) AddMember(caller *models.User, familyID, userID int64) error {
	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return ErrNotFound
	}

	members, _, err := s.familyRepo.GetFamilyMembers(familyID)
	if err != nil {
		return fmt.Errorf("failed to get family members: %w", err)
	}

	isAdmin := false
	for i := range members {
		if members[i].UserID == caller.ID && members[i].IsAdmin() {
			isAdmin = true
			break
		}
	}
	if !isAdmin {
		return ErrForbidden
	}

	for i := range members {
		if members[i].UserID == userID {
			// Already a member; adding again is a no-op.
			return nil
		}
	}

	if err := s.familyRepo.AddFamilyMember(familyID, userID, models.RoleMember); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}
