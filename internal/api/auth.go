package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/agriscope/agriscope/internal/account"
	"github.com/agriscope/agriscope/internal/auth"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userPayload is the public view of an account, without credentials.
type userPayload struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Location          *string  `json:"location"`
	FarmSize          *float64 `json:"farm_size"`
	PreferredLanguage string   `json:"preferred_language"`
	CreatedAt         string   `json:"created_at"`
}

func userToPayload(u *account.User) userPayload {
	return userPayload{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Location:          u.Location,
		FarmSize:          u.FarmSize,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              string   `json:"name"`
		Email             string   `json:"email"`
		Password          string   `json:"password"`
		Location          *string  `json:"location"`
		FarmSize          *float64 `json:"farm_size"`
		PreferredLanguage string   `json:"preferred_language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.Name) < 2 {
		writeError(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	if existing, err := h.accounts.GetUserByEmail(r.Context(), req.Email); err != nil {
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	} else if existing != nil {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := h.accounts.CreateUser(r.Context(), req.Name, req.Email, hash, req.Location, req.FarmSize, req.PreferredLanguage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := h.tokens.IssueToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "User registered successfully",
		"access_token": token,
		"user":         userToPayload(user),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := h.accounts.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.IssueToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Login successful",
		"access_token": token,
		"user":         userToPayload(user),
	})
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.GetUser(r.Context(), requestUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": userToPayload(user)})
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              *string  `json:"name"`
		Location          *string  `json:"location"`
		FarmSize          *float64 `json:"farm_size"`
		PreferredLanguage *string  `json:"preferred_language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.accounts.UpdateProfile(r.Context(), requestUserID(r), account.ProfileUpdate{
		Name:              req.Name,
		Location:          req.Location,
		FarmSize:          req.FarmSize,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    userToPayload(user),
	})
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Current and new password required")
		return
	}

	user, err := h.accounts.GetUser(r.Context(), requestUserID(r))
	if err != nil || user == nil {
		writeError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if err := h.accounts.UpdatePassword(r.Context(), user.ID, hash); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
