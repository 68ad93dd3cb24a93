// Package policy holds the pure authorization decisions for kinshare.
// Every function answers allow/deny from the resolved caller identity and
// records that have already been fetched; none of them touch storage.
// Callers are expected to resolve existence first: a missing record is
// not-found, never forbidden.
package policy

import "kinshare/internal/models"

// isMember reports whether userID appears in the family's membership rows.
// Identity comparison uses the store's native int64 identity, not a string
// rendering of it.
func isMember(userID int64, members []models.FamilyMember) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// CanReadFamilyMessages allows reading a family's message feed only for
// members of that family.
func CanReadFamilyMessages(caller *models.User, members []models.FamilyMember) bool {
	return caller != nil && isMember(caller.ID, members)
}

// CanPostMessage allows creating a message in a family only for members.
// The message's owner field is forced to the caller elsewhere; this
// decision only gates the operation itself.
func CanPostMessage(caller *models.User, members []models.FamilyMember) bool {
	return caller != nil && isMember(caller.ID, members)
}

// CanDeleteMessage allows deletion only by the message's owner. There is
// no admin override: the owner check is authoritative.
func CanDeleteMessage(caller *models.User, msg *models.Message) bool {
	return caller != nil && msg != nil && msg.UserID == caller.ID
}

// CanComment allows any authenticated caller to append a comment; no
// family-membership check applies beyond authentication.
func CanComment(caller *models.User) bool {
	return caller != nil
}

// CanDeleteComment allows removal only by the comment's sender.
func CanDeleteComment(caller *models.User, c *models.Comment) bool {
	return caller != nil && c != nil && c.From == caller.ID
}

// CanCreateFamily allows any authenticated caller to create a family.
func CanCreateFamily(caller *models.User) bool {
	return caller != nil
}

// CanListMembers allows any authenticated caller to list users.
func CanListMembers(caller *models.User) bool {
	return caller != nil
}
