package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
)

// AdminService loads and renders the submitted-order list for the admin
// console, and handles logout. The console itself is reached only through
// the page guard; Load still attaches whatever token the session holds.
type AdminService struct {
	gateway  ports.Gateway
	store    ports.SessionStore
	notifier ports.Notifier
	nav      ports.Navigator
	doc      ports.Document
	logger   zerolog.Logger
}

func NewAdminService(gw ports.Gateway, store ports.SessionStore, notifier ports.Notifier, nav ports.Navigator, doc ports.Document, logger zerolog.Logger) *AdminService {
	return &AdminService{
		gateway:  gw,
		store:    store,
		notifier: notifier,
		nav:      nav,
		doc:      doc,
		logger:   logger,
	}
}

// Load performs the single authenticated read of the order collection and
// repopulates the table. On any failure the table is left untouched: no
// partial rendering, no retry, just the generic loading-error message.
func (a *AdminService) Load(ctx context.Context) error {
	session := a.store.Get()

	records, err := a.gateway.FetchOrders(ctx, session.Token)
	if err != nil {
		a.logger.Warn().Err(err).Msg("order list fetch failed")
		a.notifier.Notify(domain.TextOrdersLoadFailed, domain.MessageError)
		return err
	}

	a.doc.ClearOrders()
	for _, rec := range records {
		a.doc.AppendOrderRow(rec)
	}
	a.logger.Info().Int("orders", len(records)).Msg("order list loaded")
	return nil
}

// Logout destroys the session and returns to the storefront.
func (a *AdminService) Logout() {
	if err := a.store.Clear(); err != nil {
		a.logger.Error().Err(err).Msg("failed to clear session")
	}
	a.nav.Go(ports.PageStorefront)
}
