package policy

import (
	"testing"

	"kinshare/internal/models"
)

func member(userID int64, role string) models.FamilyMember {
	return models.FamilyMember{FamilyID: 1, UserID: userID, Role: role}
}

func TestFamilyScopedDecisions(t *testing.T) {
	members := []models.FamilyMember{
		member(1, models.RoleAdmin),
		member(2, models.RoleMember),
	}

	tests := []struct {
		name   string
		caller *models.User
		want   bool
	}{
		{name: "admin member allowed", caller: &models.User{ID: 1}, want: true},
		{name: "plain member allowed", caller: &models.User{ID: 2}, want: true},
		{name: "non-member denied", caller: &models.User{ID: 3}, want: false},
		{name: "nil caller denied", caller: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadFamilyMessages(tt.caller, members); got != tt.want {
				t.Errorf("CanReadFamilyMessages() = %v, want %v", got, tt.want)
			}
			if got := CanPostMessage(tt.caller, members); got != tt.want {
				t.Errorf("CanPostMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanDeleteMessage(t *testing.T) {
	msg := &models.Message{ID: 10, UserID: 1}

	tests := []struct {
		name   string
		caller *models.User
		msg    *models.Message
		want   bool
	}{
		{name: "owner allowed", caller: &models.User{ID: 1}, msg: msg, want: true},
		{name: "other user denied", caller: &models.User{ID: 2}, msg: msg, want: false},
		{name: "nil message denied", caller: &models.User{ID: 1}, msg: nil, want: false},
		{name: "nil caller denied", caller: nil, msg: msg, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteMessage(tt.caller, tt.msg); got != tt.want {
				t.Errorf("CanDeleteMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanDeleteComment(t *testing.T) {
	comment := &models.Comment{ID: "c1", From: 5, To: 6}

	tests := []struct {
		name    string
		caller  *models.User
		comment *models.Comment
		want    bool
	}{
		{name: "sender allowed", caller: &models.User{ID: 5}, comment: comment, want: true},
		{name: "recipient denied", caller: &models.User{ID: 6}, comment: comment, want: false},
		{name: "other user denied", caller: &models.User{ID: 7}, comment: comment, want: false},
		{name: "nil comment denied", caller: &models.User{ID: 5}, comment: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteComment(tt.caller, tt.comment); got != tt.want {
				t.Errorf("CanDeleteComment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthenticatedOnlyDecisions(t *testing.T) {
	caller := &models.User{ID: 1}

	if !CanComment(caller) || CanComment(nil) {
		t.Error("CanComment should allow exactly the authenticated caller")
	}
	if !CanCreateFamily(caller) || CanCreateFamily(nil) {
		t.Error("CanCreateFamily should allow exactly the authenticated caller")
	}
	if !CanListMembers(caller) || CanListMembers(nil) {
		t.Error("CanListMembers should allow exactly the authenticated caller")
	}
}
