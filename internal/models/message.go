package models

import (
	"sort"
	"time"
)

// Message content types
const (
	ContentTypePhoto        = "photo"
	ContentTypeAnnouncement = "announcement"
)

// ValidContentType reports whether s is one of the allowed content types
func ValidContentType(s string) bool {
	return s == ContentTypePhoto || s == ContentTypeAnnouncement
}

// Comment is a directed annotation embedded within a message. Comments
// have no lifecycle outside their parent message; they live in the
// message's comments column as a JSON array.
type Comment struct {
	ID        string    `json:"id"`
	From      int64     `json:"from"`
	To        int64     `json:"to"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// Message is a family-scoped post with embedded comments
type Message struct {
	ID          int64     `json:"_id"`
	FamilyID    int64     `json:"family"`
	ContentType string    `json:"contentType"`
	URL         string    `json:"url,omitempty"`
	Text        string    `json:"text,omitempty"`
	UserID      int64     `json:"userId"`
	Tags        []string  `json:"tags"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"date"`
}

// CommentByID returns the embedded comment with the given id, or nil
func (m *Message) CommentByID(id string) *Comment {
	for i := range m.Comments {
		if m.Comments[i].ID == id {
			return &m.Comments[i]
		}
	}
	return nil
}

// VisibleCommentsFor returns the comments a viewer may see: only those
// where the viewer is sender or recipient, sorted ascending by timestamp.
// The message's stored comment list is never modified.
func (m *Message) VisibleCommentsFor(viewerID int64) []Comment {
	visible := make([]Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		if c.From == viewerID || c.To == viewerID {
			visible = append(visible, c)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.Before(visible[j].CreatedAt)
	})
	return visible
}

// SortMessagesNewestFirst orders messages descending by creation timestamp
func SortMessagesNewestFirst(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
}
