package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
)

// Shared in-memory test doubles for the service layer.

type fakeStore struct {
	session domain.Session
	setErr  error
}

func (f *fakeStore) Set(token string, role domain.Role) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.session = domain.Session{Token: token, Role: role}
	return nil
}

func (f *fakeStore) Get() domain.Session { return f.session }

func (f *fakeStore) Clear() error {
	f.session = domain.Session{}
	return nil
}

type fakeGateway struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) (ports.LoginResult, error)
	registerFn func(ctx context.Context, creds domain.Credentials) error
	submitFn   func(ctx context.Context, token string, order domain.Order) (string, error)
	fetchFn    func(ctx context.Context, token string) ([]domain.OrderRecord, error)

	calls int
}

func (f *fakeGateway) Login(ctx context.Context, creds domain.Credentials) (ports.LoginResult, error) {
	f.calls++
	return f.loginFn(ctx, creds)
}

func (f *fakeGateway) Register(ctx context.Context, creds domain.Credentials) error {
	f.calls++
	return f.registerFn(ctx, creds)
}

func (f *fakeGateway) SubmitOrder(ctx context.Context, token string, order domain.Order) (string, error) {
	f.calls++
	return f.submitFn(ctx, token, order)
}

func (f *fakeGateway) FetchOrders(ctx context.Context, token string) ([]domain.OrderRecord, error) {
	f.calls++
	return f.fetchFn(ctx, token)
}

type fakeNotifier struct {
	texts []string
	kinds []domain.MessageKind
}

func (f *fakeNotifier) Notify(text string, kind domain.MessageKind) {
	f.texts = append(f.texts, text)
	f.kinds = append(f.kinds, kind)
}

func (f *fakeNotifier) last() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type fakeNav struct {
	pages []ports.Page
}

func (f *fakeNav) Go(page ports.Page) { f.pages = append(f.pages, page) }

func (f *fakeNav) last() ports.Page {
	if len(f.pages) == 0 {
		return ""
	}
	return f.pages[len(f.pages)-1]
}

type fakeDoc struct {
	total         int
	totalSet      bool
	phoneError    bool
	phoneErrorSet bool
	formResets    int
	ordersCleared int
	rows          []domain.OrderRecord
	adminLink     bool
	loggedIn      bool
	appended      []domain.Message
	removedCount  int
}

func (f *fakeDoc) SetTotal(total int) { f.total = total; f.totalSet = true }

func (f *fakeDoc) ShowPhoneError(visible bool) {
	f.phoneError = visible
	f.phoneErrorSet = true
}

func (f *fakeDoc) ResetOrderForm() { f.formResets++ }

func (f *fakeDoc) AppendMessage(msg domain.Message) { f.appended = append(f.appended, msg) }

func (f *fakeDoc) RemoveMessage(id uuid.UUID) { f.removedCount++ }

func (f *fakeDoc) ClearOrders() {
	f.ordersCleared++
	f.rows = nil
}

func (f *fakeDoc) AppendOrderRow(rec domain.OrderRecord) { f.rows = append(f.rows, rec) }

func (f *fakeDoc) SetAdminLinkVisible(visible bool) { f.adminLink = visible }

func (f *fakeDoc) SetAuthControls(loggedIn bool) { f.loggedIn = loggedIn }

func testLogger() zerolog.Logger { return zerolog.Nop() }
