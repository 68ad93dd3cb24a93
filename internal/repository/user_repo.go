package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kinshare/internal/database"
	"kinshare/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, provider, provider_id, name, nickname, avatar_url, email, COALESCE(access_token, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.Nickname,
		&user.AvatarURL,
		&user.Email,
		&user.AccessToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByProviderIdentity retrieves a user by OAuth provider and subject
func (r *UserRepository) GetUserByProviderIdentity(provider, providerID string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE provider = ? AND provider_id = ?
	`
	user, err := scanUser(r.db.QueryRow(query, provider, providerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by provider identity: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = ?
	`
	user, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByAccessToken retrieves the user whose stored access token equals
// the presented credential. Exactly one user can match because tokens are
// reassigned wholesale on each login.
func (r *UserRepository) GetUserByAccessToken(token string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE access_token = ?
	`
	user, err := scanUser(r.db.QueryRow(query, token))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by access token: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new user from OAuth profile data
func (r *UserRepository) CreateUser(provider, providerID, name, nickname, avatarURL, email string) (*models.User, error) {
	query := `
		INSERT INTO users (provider, provider_id, name, nickname, avatar_url, email)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, provider, providerID, name, nickname, avatarURL, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &models.User{
		ID:         id,
		Provider:   provider,
		ProviderID: providerID,
		Name:       name,
		Nickname:   nickname,
		AvatarURL:  avatarURL,
		Email:      email,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	return user, nil
}

// UpdateProfile refreshes the profile fields received from the OAuth provider
func (r *UserRepository) UpdateProfile(id int64, name, nickname, avatarURL, email string) error {
	query := `
		UPDATE users
		SET name = ?, nickname = ?, avatar_url = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, name, nickname, avatarURL, email, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SetAccessToken overwrites the user's bearer credential. Any token issued
// earlier stops resolving as a side effect.
func (r *UserRepository) SetAccessToken(id int64, token string) error {
	query := `
		UPDATE users
		SET access_token = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, token, id)
	if err != nil {
		return fmt.Errorf("failed to set access token: %w", err)
	}
	return nil
}

// GetAllUsers retrieves all users
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}

	return users, nil
}
