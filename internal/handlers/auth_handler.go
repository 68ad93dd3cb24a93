package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"kinshare/internal/security"
	"kinshare/internal/service"
)

const sessionMarkerCookie = "kinshare_session"

// AuthHandler handles the Google OAuth flow and logout
type AuthHandler struct {
	authService          *service.AuthService
	oauthConfig          *oauth2.Config
	userInfoURL          string
	oauthRedirectBaseURL string
	frontendBaseURL      string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, oauthConfig *oauth2.Config, userInfoURL, oauthRedirectBaseURL, frontendBaseURL string) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		oauthConfig:          oauthConfig,
		userInfoURL:          userInfoURL,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
		frontendBaseURL:      frontendBaseURL,
	}
}

// Home answers the health/hello probe
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Hello from the server"})
}

// StartGoogleOAuth initiates the OAuth flow
func (h *AuthHandler) StartGoogleOAuth(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig.ClientID == "" || h.oauthConfig.ClientSecret == "" {
		respondError(w, http.StatusBadRequest, kindValidation, "OAuth provider not configured")
		return
	}

	state := security.GenerateStateToken()
	http.SetCookie(w, security.CreateTempCookie(r, "oauth_state", state, 10*time.Minute))

	config := *h.oauthConfig
	config.RedirectURL = h.oauthRedirectURL(r)

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// GoogleOAuthCallback completes the OAuth flow: it exchanges the code,
// verifies the provider identity, upserts the user, issues a fresh access
// token and hands it to the frontend via a redirect.
func (h *AuthHandler) GoogleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, kindValidation, "missing authorization code")
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		respondError(w, http.StatusBadRequest, kindValidation, "invalid OAuth state")
		return
	}
	http.SetCookie(w, security.CreateDeleteCookie(r, "oauth_state"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	config := *h.oauthConfig
	config.RedirectURL = h.oauthRedirectURL(r)

	token, err := config.Exchange(ctx, code)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, "failed to exchange OAuth code")
		return
	}

	profile, err := h.fetchGoogleProfile(ctx, token)
	if err != nil {
		respondError(w, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	user, accessToken, err := h.authService.OAuthLogin(profile)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	http.SetCookie(w, security.CreateTempCookie(r, sessionMarkerCookie, fmt.Sprintf("%d", user.ID), 24*time.Hour))

	redirect := fmt.Sprintf("%s?%s", strings.TrimRight(h.frontendBaseURL, "/"),
		url.Values{"token": []string{accessToken}}.Encode())
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout clears the local session marker and redirects to the frontend.
// The access token itself stays valid until the next login replaces it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, sessionMarkerCookie))
	http.Redirect(w, r, h.frontendBaseURL, http.StatusSeeOther)
}

// fetchGoogleProfile resolves the provider identity behind an exchanged
// token. The id_token, when present, is verified against Google's published
// keys and must agree with the userinfo subject.
func (h *AuthHandler) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (service.OAuthProfile, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return service.OAuthProfile{}, fmt.Errorf("failed to fetch Google user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.OAuthProfile{}, fmt.Errorf("failed to fetch Google user info")
	}

	var payload struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Name      string `json:"name"`
		GivenName string `json:"given_name"`
		Picture   string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return service.OAuthProfile{}, fmt.Errorf("failed to parse Google user info")
	}

	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		claims, err := parseGoogleIDToken(ctx, idToken, h.oauthConfig.ClientID)
		if err != nil {
			return service.OAuthProfile{}, err
		}
		if claims.Subject != payload.ID {
			return service.OAuthProfile{}, fmt.Errorf("Google identity mismatch")
		}
	}

	return service.OAuthProfile{
		Provider:  "google",
		Subject:   payload.ID,
		Name:      payload.Name,
		Nickname:  payload.GivenName,
		AvatarURL: payload.Picture,
		Email:     payload.Email,
	}, nil
}

func (h *AuthHandler) oauthRedirectURL(r *http.Request) string {
	baseURL := strings.TrimSpace(h.oauthRedirectBaseURL)
	if baseURL == "" {
		scheme := "http"
		if security.IsSecureRequest(r) {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, r.Host)
	}
	return fmt.Sprintf("%s/auth/google/callback", strings.TrimRight(baseURL, "/"))
}
