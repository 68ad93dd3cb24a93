package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProfileRedaction(t *testing.T) {
	user := User{
		ID:          7,
		Provider:    "google",
		ProviderID:  "sub-12345",
		Name:        "Alice Example",
		Nickname:    "Alice",
		AvatarURL:   "https://example.com/a.png",
		Email:       "alice@example.com",
		AccessToken: "secret-token",
	}

	profile := user.Profile()

	data, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("failed to marshal profile: %v", err)
	}
	encoded := string(data)

	if strings.Contains(encoded, "secret-token") {
		t.Error("profile JSON leaks the access token")
	}
	if strings.Contains(encoded, "sub-12345") {
		t.Error("profile JSON leaks the provider id")
	}
	if !strings.Contains(encoded, "alice@example.com") {
		t.Error("profile JSON should include the email")
	}
	if profile.ID != user.ID {
		t.Errorf("profile ID = %d, want %d", profile.ID, user.ID)
	}
}
