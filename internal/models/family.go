package models

import "time"

// Membership roles. An admin row is also a membership row, so a family's
// creator is both its first admin and its first member.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Family represents a group of users sharing visibility into messages
type Family struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created"`
}

// FamilyMember represents the relationship between a user and a family
type FamilyMember struct {
	ID       int64     `json:"-"`
	FamilyID int64     `json:"familyId"`
	UserID   int64     `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined"`
}

// IsAdmin reports whether the membership carries the admin role
func (m *FamilyMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// FamilyWithMembers combines a family with its membership rows and the
// redacted profiles of the users behind them
type FamilyWithMembers struct {
	Family  Family         `json:"family"`
	Members []FamilyMember `json:"members"`
	Users   []Profile      `json:"users"`
}
