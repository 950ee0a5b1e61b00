package service

import (
	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
)

// PageGuard decides on every page load whether the current session may stay
// on the page. It runs synchronously before any other handler attaches, so a
// rejected visitor never sees gated content render.
type PageGuard struct {
	store  ports.SessionStore
	nav    ports.Navigator
	logger zerolog.Logger
}

func NewPageGuard(store ports.SessionStore, nav ports.Navigator, logger zerolog.Logger) *PageGuard {
	return &PageGuard{store: store, nav: nav, logger: logger}
}

// Allow checks the session against the page's required role set. An empty
// set means a public page. On rejection the guard redirects to the login
// page and returns false; the caller must initialize nothing further.
func (g *PageGuard) Allow(required ...domain.Role) bool {
	if len(required) == 0 {
		return true
	}

	session := g.store.Get()
	role := session.EffectiveRole()
	for _, r := range required {
		if session.Usable() && role == r {
			return true
		}
	}

	g.logger.Debug().Str("role", string(role)).Msg("page guard redirect to login")
	g.nav.Go(ports.PageLogin)
	return false
}
