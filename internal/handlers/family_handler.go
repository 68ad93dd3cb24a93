package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kinshare/internal/service"
)

// FamilyHandler serves family creation and membership management
type FamilyHandler struct {
	familyService *service.FamilyService
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familyService: familyService}
}

type createFamilyRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CreateFamily creates a family with the caller as sole admin and member
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req createFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	family, err := h.familyService.CreateFamily(user, req.Name, req.Avatar)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int64{"_id": family.ID})
}

type addMemberRequest struct {
	UserID int64 `json:"userId"`
}

// AddMember adds a user to a family; only a family admin may do this
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	familyID, err := strconv.ParseInt(r.PathValue("familyId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid family id")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid request body")
		return
	}

	if err := h.familyService.AddMember(user, familyID, req.UserID); err != nil {
		respondServiceError(w, err)
		return
	}

	family, err := h.familyService.GetFamilyWithMembers(familyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, family)
}
