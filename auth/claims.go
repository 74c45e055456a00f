// Package auth provides helpers for the portal's signed-in user token.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims encodes the JWT claims embedded in portal user tokens.
//
// This is a DTO matching the token contract of the hosting site's auth
// service. The SDK keeps it local instead of depending on server internals.
type Claims struct {
	// ContactID is the portal contact row backing the signed-in user.
	ContactID string `json:"contactid,omitempty"`
	// UserName is the display identity presented to portal pages.
	UserName string `json:"preferred_username,omitempty"`
	// TenantID scopes the token to the hosting tenant.
	TenantID string `json:"tid,omitempty"`
	// SiteID identifies the portal website the token was minted for.
	SiteID string `json:"siteid,omitempty"`

	jwt.RegisteredClaims
}

// ParseUnverified decodes token claims without signature verification.
// The portal verifies tokens server-side; clients only need the claims for
// diagnostics and display, so no key material is required here.
func ParseUnverified(token string) (*Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, errors.New("sdk/auth: token required")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
