package api

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// CORS wraps an http.Handler with CORS headers for cross-origin requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authed wraps a handler with bearer token authentication. The verified
// user ID is stored on the request context.
func (h *Handler) authed(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.bearerUserID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Missing or invalid authorization token")
			return
		}
		fn(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}

// bearerUserID verifies the Authorization header and returns the user ID.
func (h *Handler) bearerUserID(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	userID, err := h.tokens.VerifyToken(token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// requestUserID returns the authenticated user ID stored by authed.
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
