package validation

import (
	"fmt"
	"net/url"
	"strings"

	"kinshare/internal/models"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFamilyName checks that a family name is present and sensible
func ValidateFamilyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 120 {
		return ValidationError{Field: "name", Message: "name must be at most 120 characters"}
	}
	return nil
}

// ValidateContentType checks that a message content type is in the allowed set
func ValidateContentType(contentType string) error {
	if contentType == "" {
		return ValidationError{Field: "contentType", Message: "contentType is required"}
	}
	if !models.ValidContentType(contentType) {
		return ValidationError{
			Field:   "contentType",
			Message: fmt.Sprintf("contentType must be %q or %q", models.ContentTypePhoto, models.ContentTypeAnnouncement),
		}
	}
	return nil
}

// ValidateMessageURL checks the optional URL field of a message
func ValidateMessageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "url", Message: "url must be absolute"}
	}
	return nil
}

// ValidateCommentText checks that a comment body is present
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ValidationError{Field: "text", Message: "text is required"}
	}
	return nil
}
