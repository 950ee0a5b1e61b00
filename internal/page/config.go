package page

import (
	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
)

// Config describes a page's gating requirements. Per-page differences are
// configuration, not divergent code paths.
type Config struct {
	Page ports.Page
	// Required is the role set the guard enforces. Empty means public.
	Required []domain.Role
	// ShowAdminLink decides admin-link visibility from the session. The
	// strict check is role == admin; gating on mere token presence is a
	// display bug, not a variant to support.
	ShowAdminLink func(domain.Session) bool
}

func adminOnly(s domain.Session) bool {
	return s.EffectiveRole() == domain.RoleAdmin
}

func never(domain.Session) bool { return false }

// Configs is the page table for the storefront site.
var Configs = map[ports.Page]Config{
	ports.PageStorefront: {
		Page:          ports.PageStorefront,
		ShowAdminLink: adminOnly,
	},
	ports.PageLogin: {
		Page:          ports.PageLogin,
		ShowAdminLink: never,
	},
	ports.PageRegister: {
		Page:          ports.PageRegister,
		ShowAdminLink: never,
	},
	ports.PageAdmin: {
		Page:          ports.PageAdmin,
		Required:      []domain.Role{domain.RoleAdmin},
		ShowAdminLink: adminOnly,
	},
}
