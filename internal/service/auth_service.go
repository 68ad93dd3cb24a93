package service

import (
	"errors"
	"fmt"
	"strings"

	"kinshare/internal/models"
	"kinshare/internal/repository"
	"kinshare/internal/security"
)

// ErrInvalidToken means no user's stored access token equals the presented
// credential.
var ErrInvalidToken = errors.New("invalid access token")

// OAuthProfile is the identity and profile data returned by the provider
type OAuthProfile struct {
	Provider  string
	Subject   string
	Name      string
	Nickname  string
	AvatarURL string
	Email     string
}

// AuthService handles OAuth login and bearer-token resolution
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// OAuthLogin upserts the user identified by the provider identity and issues
// a fresh access token. The token replaces whatever token the user held
// before, so logging in elsewhere implicitly invalidates the old credential;
// there is no expiry or revocation list beyond that.
func (s *AuthService) OAuthLogin(profile OAuthProfile) (*models.User, string, error) {
	if profile.Provider == "" || profile.Subject == "" {
		return nil, "", errors.New("missing oauth provider information")
	}

	user, err := s.userRepo.GetUserByProviderIdentity(profile.Provider, profile.Subject)
	if err != nil {
		return nil, "", fmt.Errorf("failed to lookup oauth user: %w", err)
	}

	name := strings.TrimSpace(profile.Name)
	nickname := strings.TrimSpace(profile.Nickname)
	if name == "" {
		name = strings.Split(profile.Email, "@")[0]
	}
	if nickname == "" {
		nickname = name
	}

	if user == nil {
		user, err = s.userRepo.CreateUser(profile.Provider, profile.Subject, name, nickname, profile.AvatarURL, profile.Email)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create oauth user: %w", err)
		}
	} else {
		if err := s.userRepo.UpdateProfile(user.ID, name, nickname, profile.AvatarURL, profile.Email); err != nil {
			return nil, "", fmt.Errorf("failed to refresh oauth profile: %w", err)
		}
		user.Name = name
		user.Nickname = nickname
		user.AvatarURL = profile.AvatarURL
		user.Email = profile.Email
	}

	token := security.GenerateAccessToken()
	if err := s.userRepo.SetAccessToken(user.ID, token); err != nil {
		return nil, "", fmt.Errorf("failed to issue access token: %w", err)
	}
	user.AccessToken = token

	return user, token, nil
}

// ResolveToken returns the user whose stored access token equals the
// presented credential, or ErrInvalidToken if none matches.
func (s *AuthService) ResolveToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}
