package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"kinshare/internal/models"
	"kinshare/internal/policy"
	"kinshare/internal/repository"
	"kinshare/internal/validation"
)

// MessageService handles message and comment business logic. Every mutation
// follows the same sequencing: resolve existence, then authorization, then
// the store write. The family-membership check and the subsequent insert are
// separate store round-trips, not one transaction.
type MessageService struct {
	messageRepo  *repository.MessageRepository
	familyRepo   *repository.FamilyRepository
	userRepo     *repository.UserRepository
	emailService *EmailService
}

// NewMessageService creates a new message service. emailService may be nil
// or disabled; comment notifications are best-effort either way.
func NewMessageService(messageRepo *repository.MessageRepository, familyRepo *repository.FamilyRepository, userRepo *repository.UserRepository, emailService *EmailService) *MessageService {
	return &MessageService{
		messageRepo:  messageRepo,
		familyRepo:   familyRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// ListFamilyMessages returns a family's messages shaped for the caller:
// messages newest first, and each message's comments reduced to those the
// caller sent or received, oldest first. Shaping is per-response; stored
// messages are never modified.
func (s *MessageService) ListFamilyMessages(caller *models.User, familyID int64) ([]models.Message, error) {
	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, ErrNotFound
	}

	members, _, err := s.familyRepo.GetFamilyMembers(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}
	if !policy.CanReadFamilyMessages(caller, members) {
		return nil, ErrForbidden
	}

	messages, err := s.messageRepo.GetFamilyMessages(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	for i := range messages {
		messages[i].Comments = messages[i].VisibleCommentsFor(caller.ID)
	}
	models.SortMessagesNewestFirst(messages)

	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// CreateMessage creates a message in a family. The message's owner is always
// the caller, regardless of anything the request claimed.
func (s *MessageService) CreateMessage(caller *models.User, familyID int64, contentType, url, text string, tags []string) (*models.Message, error) {
	if err := validation.ValidateContentType(contentType); err != nil {
		return nil, err
	}
	if err := validation.ValidateMessageURL(url); err != nil {
		return nil, err
	}

	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, ErrNotFound
	}

	members, _, err := s.familyRepo.GetFamilyMembers(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}
	if !policy.CanPostMessage(caller, members) {
		return nil, ErrForbidden
	}

	message, err := s.messageRepo.CreateMessage(familyID, contentType, url, text, caller.ID, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// DeleteMessage deletes a message iff the caller owns it
func (s *MessageService) DeleteMessage(caller *models.User, messageID int64) error {
	message, err := s.messageRepo.GetMessageByID(messageID)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}
	if message == nil {
		return ErrNotFound
	}
	if !policy.CanDeleteMessage(caller, message) {
		return ErrForbidden
	}

	if err := s.messageRepo.DeleteMessage(messageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// AddComment appends a comment to a message. The sender is always the
// caller. If a notification email service is configured, the recipient is
// notified best-effort; a send failure never fails the comment.
func (s *MessageService) AddComment(ctx context.Context, caller *models.User, messageID, to int64, text string) (*models.Comment, error) {
	if err := validation.ValidateCommentText(text); err != nil {
		return nil, err
	}

	message, err := s.messageRepo.GetMessageByID(messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	if message == nil {
		return nil, ErrNotFound
	}
	if !policy.CanComment(caller) {
		return nil, ErrForbidden
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		From:      caller.ID,
		To:        to,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	comments := append(message.Comments, comment)
	if err := s.messageRepo.ReplaceComments(messageID, comments); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	s.notifyCommentRecipient(ctx, caller, &comment)

	return &comment, nil
}

// DeleteComment removes a comment iff the caller is its sender
func (s *MessageService) DeleteComment(caller *models.User, messageID int64, commentID string) error {
	message, err := s.messageRepo.GetMessageByID(messageID)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}
	if message == nil {
		return ErrNotFound
	}

	comment := message.CommentByID(commentID)
	if comment == nil {
		return ErrNotFound
	}
	if !policy.CanDeleteComment(caller, comment) {
		return ErrForbidden
	}

	remaining := make([]models.Comment, 0, len(message.Comments)-1)
	for _, c := range message.Comments {
		if c.ID != commentID {
			remaining = append(remaining, c)
		}
	}

	if err := s.messageRepo.ReplaceComments(messageID, remaining); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *MessageService) notifyCommentRecipient(ctx context.Context, sender *models.User, comment *models.Comment) {
	if s.emailService == nil || !s.emailService.IsEnabled() {
		return
	}
	if comment.To == sender.ID {
		return
	}

	recipient, err := s.userRepo.GetUserByID(comment.To)
	if err != nil || recipient == nil || recipient.Email == "" {
		return
	}

	if err := s.emailService.SendCommentNotification(ctx, recipient.Email, recipient.Name, sender.Name, comment.Text); err != nil {
		log.Printf("Failed to send comment notification to %s: %v", recipient.Email, err)
	}
}
