// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/asset-tracker/models"
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

// PrincipalCtxKey is the key used to store the authenticated principal in
// the context. Used together with GetPrincipalFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithPrincipal(ctx, models.Principal{UserID: 1, Username: "admin"})
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// GetUserIDFromContext retrieves the identifier of the authenticated
// principal from the context.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	p, ok := GetPrincipalFromContext(ctx)
	return p.UserID, ok
}
