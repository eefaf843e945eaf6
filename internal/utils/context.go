// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, session token generation and
// validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated caller's
// [models.SessionClaims] are stored in the context.
var SessionCtxKey = contextKey("session")

// ContextWithSession returns a copy of ctx carrying claims.
func ContextWithSession(ctx context.Context, claims models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionCtxKey, claims)
}

// GetSessionFromContext retrieves the caller's claims from the context.
//
// Returns ok == false when the request is anonymous.
func GetSessionFromContext(ctx context.Context) (models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionCtxKey).(models.SessionClaims)
	return claims, ok
}

// GetUserIDFromContext retrieves the authenticated user's id from the context.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetSessionFromContext(ctx)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
