package models

import "time"

// User represents an account created through OAuth login. The provider
// identity (Provider + ProviderID) is the stable external identity; the
// access token is the single active bearer credential, replaced wholesale
// on every login.
type User struct {
	ID          int64
	Provider    string
	ProviderID  string
	Name        string
	Nickname    string
	AvatarURL   string
	Email       string
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile is the redacted view of a user that is safe to return to other
// members: no access token, no provider identity, no bookkeeping columns.
type Profile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar"`
	Email     string `json:"email"`
}

// Profile returns the redacted view of the user
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
		Email:     u.Email,
	}
}
