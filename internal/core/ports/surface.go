package ports

import (
	"github.com/google/uuid"

	"github.com/cakehouse/storefront-client/internal/core/domain"
)

// Document is the rendered page surface the engine mutates. The engine does
// not own the markup; it only pokes at the named regions the page exposes.
// Implementations must tolerate regions that are absent on the current page.
type Document interface {
	// Order form surface.
	SetTotal(total int)
	ShowPhoneError(visible bool)
	ResetOrderForm()

	// Transient message region.
	AppendMessage(msg domain.Message)
	RemoveMessage(id uuid.UUID)

	// Admin console table.
	ClearOrders()
	AppendOrderRow(rec domain.OrderRecord)

	// Navigation chrome.
	SetAdminLinkVisible(visible bool)
	SetAuthControls(loggedIn bool)
}

// Page identifies one of the static pages navigation can land on.
type Page string

const (
	PageStorefront Page = "index"
	PageLogin      Page = "login"
	PageRegister   Page = "register"
	PageAdmin      Page = "admin"
)

// Navigator performs a page change. Navigation discards any in-flight work
// on the current page; there is no way back except a fresh page load.
type Navigator interface {
	Go(page Page)
}

// Notifier reports a user-visible outcome as a transient message.
type Notifier interface {
	Notify(text string, kind domain.MessageKind)
}
