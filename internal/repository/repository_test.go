package repository

import (
	"path/filepath"
	"testing"

	"kinshare/internal/database"
	"kinshare/internal/models"
)

// newTestDB creates a throwaway sqlite database with the schema applied
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, repo *UserRepository, subject, name, email string) *models.User {
	t.Helper()
	user, err := repo.CreateUser("google", subject, name, name, "", email)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, repo, "sub-1", "Alice", "alice@example.com")

	t.Run("lookup by provider identity", func(t *testing.T) {
		found, err := repo.GetUserByProviderIdentity("google", "sub-1")
		if err != nil {
			t.Fatalf("GetUserByProviderIdentity failed: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("expected user %d, got %+v", user.ID, found)
		}
	})

	t.Run("unknown provider identity returns nil", func(t *testing.T) {
		found, err := repo.GetUserByProviderIdentity("google", "nope")
		if err != nil {
			t.Fatalf("GetUserByProviderIdentity failed: %v", err)
		}
		if found != nil {
			t.Fatalf("expected nil, got %+v", found)
		}
	})

	t.Run("access token lifecycle", func(t *testing.T) {
		if err := repo.SetAccessToken(user.ID, "token-one"); err != nil {
			t.Fatalf("SetAccessToken failed: %v", err)
		}

		found, err := repo.GetUserByAccessToken("token-one")
		if err != nil {
			t.Fatalf("GetUserByAccessToken failed: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("expected user %d, got %+v", user.ID, found)
		}

		// A new login overwrites the token; the old one stops resolving
		if err := repo.SetAccessToken(user.ID, "token-two"); err != nil {
			t.Fatalf("SetAccessToken failed: %v", err)
		}
		stale, err := repo.GetUserByAccessToken("token-one")
		if err != nil {
			t.Fatalf("GetUserByAccessToken failed: %v", err)
		}
		if stale != nil {
			t.Fatalf("old token should no longer resolve, got user %d", stale.ID)
		}
	})

	t.Run("profile refresh", func(t *testing.T) {
		if err := repo.UpdateProfile(user.ID, "Alice B", "Ali", "https://example.com/a.png", "alice@example.com"); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		found, err := repo.GetUserByID(user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if found.Name != "Alice B" || found.Nickname != "Ali" {
			t.Errorf("profile not refreshed: %+v", found)
		}
	})
}

func TestFamilyRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	familyRepo := NewFamilyRepository(db)

	alice := createTestUser(t, userRepo, "sub-1", "Alice", "alice@example.com")
	bob := createTestUser(t, userRepo, "sub-2", "Bob", "bob@example.com")

	family, err := familyRepo.CreateFamily("The Smiths", "", alice.ID)
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	t.Run("creator is sole admin and member", func(t *testing.T) {
		members, users, err := familyRepo.GetFamilyMembers(family.ID)
		if err != nil {
			t.Fatalf("GetFamilyMembers failed: %v", err)
		}
		if len(members) != 1 || len(users) != 1 {
			t.Fatalf("expected exactly 1 member, got %d", len(members))
		}
		if members[0].UserID != alice.ID {
			t.Errorf("member is user %d, want %d", members[0].UserID, alice.ID)
		}
		if !members[0].IsAdmin() {
			t.Errorf("creator should be admin, role = %q", members[0].Role)
		}
	})

	t.Run("missing family returns nil", func(t *testing.T) {
		found, err := familyRepo.GetFamilyByID(9999)
		if err != nil {
			t.Fatalf("GetFamilyByID failed: %v", err)
		}
		if found != nil {
			t.Fatalf("expected nil, got %+v", found)
		}
	})

	t.Run("user families reflect membership", func(t *testing.T) {
		families, err := familyRepo.GetUserFamilies(alice.ID)
		if err != nil {
			t.Fatalf("GetUserFamilies failed: %v", err)
		}
		if len(families) != 1 || families[0].ID != family.ID {
			t.Fatalf("expected family %d, got %+v", family.ID, families)
		}

		none, err := familyRepo.GetUserFamilies(bob.ID)
		if err != nil {
			t.Fatalf("GetUserFamilies failed: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("expected no families for non-member, got %d", len(none))
		}
	})

	t.Run("add member", func(t *testing.T) {
		if err := familyRepo.AddFamilyMember(family.ID, bob.ID, models.RoleMember); err != nil {
			t.Fatalf("AddFamilyMember failed: %v", err)
		}
		members, _, err := familyRepo.GetFamilyMembers(family.ID)
		if err != nil {
			t.Fatalf("GetFamilyMembers failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(members))
		}
	})
}

func TestMessageRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	familyRepo := NewFamilyRepository(db)
	messageRepo := NewMessageRepository(db)

	alice := createTestUser(t, userRepo, "sub-1", "Alice", "alice@example.com")
	family, err := familyRepo.CreateFamily("The Smiths", "", alice.ID)
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	first, err := messageRepo.CreateMessage(family.ID, models.ContentTypeAnnouncement, "", "hello", alice.ID, []string{"news"})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	second, err := messageRepo.CreateMessage(family.ID, models.ContentTypePhoto, "https://example.com/p.jpg", "", alice.ID, nil)
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	t.Run("roundtrip", func(t *testing.T) {
		found, err := messageRepo.GetMessageByID(first.ID)
		if err != nil {
			t.Fatalf("GetMessageByID failed: %v", err)
		}
		if found == nil {
			t.Fatal("expected message, got nil")
		}
		if found.ContentType != models.ContentTypeAnnouncement || found.Text != "hello" {
			t.Errorf("unexpected message: %+v", found)
		}
		if len(found.Tags) != 1 || found.Tags[0] != "news" {
			t.Errorf("tags not preserved: %v", found.Tags)
		}
		if len(found.Comments) != 0 {
			t.Errorf("new message should have no comments, got %d", len(found.Comments))
		}
	})

	t.Run("family listing is newest first", func(t *testing.T) {
		messages, err := messageRepo.GetFamilyMessages(family.ID)
		if err != nil {
			t.Fatalf("GetFamilyMessages failed: %v", err)
		}
		if len(messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(messages))
		}
		if messages[0].ID != second.ID {
			t.Errorf("expected newest message %d first, got %d", second.ID, messages[0].ID)
		}
	})

	t.Run("embedded comments roundtrip", func(t *testing.T) {
		comments := []models.Comment{
			{ID: "c1", From: alice.ID, To: alice.ID, Text: "note to self"},
		}
		if err := messageRepo.ReplaceComments(first.ID, comments); err != nil {
			t.Fatalf("ReplaceComments failed: %v", err)
		}

		found, err := messageRepo.GetMessageByID(first.ID)
		if err != nil {
			t.Fatalf("GetMessageByID failed: %v", err)
		}
		if len(found.Comments) != 1 || found.Comments[0].ID != "c1" {
			t.Fatalf("comments not persisted: %+v", found.Comments)
		}
	})

	t.Run("delete removes message and comments", func(t *testing.T) {
		if err := messageRepo.DeleteMessage(first.ID); err != nil {
			t.Fatalf("DeleteMessage failed: %v", err)
		}
		found, err := messageRepo.GetMessageByID(first.ID)
		if err != nil {
			t.Fatalf("GetMessageByID failed: %v", err)
		}
		if found != nil {
			t.Fatalf("expected nil after delete, got %+v", found)
		}
	})
}
