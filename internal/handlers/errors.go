package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kinshare/internal/service"
	"kinshare/internal/validation"
)

// Error kinds carried in the structured error body
const (
	kindAuthentication = "authentication"
	kindAuthorization  = "authorization"
	kindNotFound       = "not_found"
	kindValidation     = "validation"
	kindInternal       = "internal"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes a structured error body
func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorBody{Error: errorDetail{Kind: kind, Message: message}})
}

// respondServiceError maps a service-layer error onto the HTTP status
// contract. Anything that is not a recognized sentinel or a validation
// error is a store failure: logged and surfaced as 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, kindValidation, verr.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, kindNotFound, "resource not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, kindAuthorization, "not permitted")
	default:
		log.Printf("Store error: %v", err)
		respondError(w, http.StatusInternalServerError, kindInternal, "internal error")
	}
}
