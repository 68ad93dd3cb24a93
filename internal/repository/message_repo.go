package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"kinshare/internal/database"
	"kinshare/internal/models"
)

// MessageRepository handles database operations for messages. Comments are
// embedded documents: they are stored as a JSON array in the message row's
// comments column and never exist outside their parent message. Comment
// mutations are read-modify-write on that column, so two concurrent
// mutations of the same message are last-write-wins.
type MessageRepository struct {
	db *database.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage inserts a new message with no comments
func (r *MessageRepository) CreateMessage(familyID int64, contentType, url, text string, userID int64, tags []string) (*models.Message, error) {
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO messages (family_id, content_type, url, text, user_id, tags, comments)
		VALUES (?, ?, ?, ?, ?, ?, '[]')
	`
	id, err := r.db.ExecReturningID(query, familyID, contentType, url, text, userID, string(tagsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	message := &models.Message{
		ID:          id,
		FamilyID:    familyID,
		ContentType: contentType,
		URL:         url,
		Text:        text,
		UserID:      userID,
		Tags:        tags,
		Comments:    []models.Comment{},
		CreatedAt:   time.Now(),
	}

	return message, nil
}

// GetMessageByID retrieves a message by ID
func (r *MessageRepository) GetMessageByID(id int64) (*models.Message, error) {
	query := `
		SELECT id, family_id, content_type, url, text, user_id, tags, comments, created_at
		FROM messages
		WHERE id = ?
	`
	message, err := scanMessage(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return message, nil
}

// GetFamilyMessages retrieves a family's messages, newest first
func (r *MessageRepository) GetFamilyMessages(familyID int64) ([]models.Message, error) {
	query := `
		SELECT id, family_id, content_type, url, text, user_id, tags, comments, created_at
		FROM messages
		WHERE family_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *message)
	}

	return messages, nil
}

// DeleteMessage removes a message and its embedded comments
func (r *MessageRepository) DeleteMessage(id int64) error {
	query := "DELETE FROM messages WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// ReplaceComments overwrites a message's embedded comment array. The column
// is written whole, with no version check: the last writer wins.
func (r *MessageRepository) ReplaceComments(messageID int64, comments []models.Comment) error {
	if comments == nil {
		comments = []models.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("failed to encode comments: %w", err)
	}

	query := "UPDATE messages SET comments = ? WHERE id = ?"
	_, err = r.db.Exec(query, string(commentsJSON), messageID)
	if err != nil {
		return fmt.Errorf("failed to update comments: %w", err)
	}
	return nil
}

func scanMessage(row interface{ Scan(...interface{}) error }) (*models.Message, error) {
	message := &models.Message{}
	var tagsJSON, commentsJSON string
	err := row.Scan(
		&message.ID,
		&message.FamilyID,
		&message.ContentType,
		&message.URL,
		&message.Text,
		&message.UserID,
		&tagsJSON,
		&commentsJSON,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &message.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(commentsJSON), &message.Comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	if message.Tags == nil {
		message.Tags = []string{}
	}
	if message.Comments == nil {
		message.Comments = []models.Comment{}
	}

	return message, nil
}
