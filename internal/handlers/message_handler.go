package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kinshare/internal/service"
)

// MessageHandler serves messages and their embedded comments
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListMessages returns a family's messages shaped for the caller
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	familyID, err := strconv.ParseInt(r.PathValue("family"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid family id")
		return
	}

	messages, err := h.messageService.ListFamilyMessages(user, familyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

type createMessageRequest struct {
	Family      int64    `json:"family"`
	ContentType string   `json:"contentType"`
	URL         string   `json:"url"`
	Text        string   `json:"text"`
	Tags        []string `json:"tags"`
}

// CreateMessage creates a message owned by the caller. Any userId in the
// request body is ignored.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	message, err := h.messageService.CreateMessage(user, req.Family, req.ContentType, req.URL, req.Text, req.Tags)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"_id": message.ID})
}

// DeleteMessage deletes a message iff the caller owns it
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	messageID, err := strconv.ParseInt(r.PathValue("messageId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid message id")
		return
	}

	if err := h.messageService.DeleteMessage(user, messageID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"_id": messageID})
}

type createCommentRequest struct {
	MessageID int64  `json:"messageId"`
	To        int64  `json:"to"`
	Text      string `json:"text"`
}

// CreateComment appends a comment sent by the caller
func (h *MessageHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	comment, err := h.messageService.AddComment(r.Context(), user, req.MessageID, req.To, req.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a comment iff the caller is its sender
func (h *MessageHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	messageID, err := strconv.ParseInt(r.PathValue("messageId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid message id")
		return
	}
	commentID := r.PathValue("commentId")
	if commentID == "" {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid comment id")
		return
	}

	if err := h.messageService.DeleteComment(user, messageID, commentID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"_id": commentID})
}
