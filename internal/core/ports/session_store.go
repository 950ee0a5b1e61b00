package ports

import "github.com/cakehouse/storefront-client/internal/core/domain"

// SessionStore persists the two-field session across page loads.
// Pure storage: no token format validation happens here.
//
// Get never fails — missing or unreadable state yields the zero Session.
// Set and Clear are idempotent.
type SessionStore interface {
	Set(token string, role domain.Role) error
	Get() domain.Session
	Clear() error
}
