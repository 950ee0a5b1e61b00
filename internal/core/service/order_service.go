package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/metrics"
)

// phonePattern accepts Russian mobile numbers: +7 or a leading 8 followed by
// area and subscriber digits with optional separators, or a bare 10-11 digit
// string. Must stay in sync with the backend's server-side check.
var phonePattern = regexp.MustCompile(`^(?:\+7|8)\s?\(?\d{3}\)?\s?\d{3}-?\d{2}-?\d{2}$|^\d{10,11}$`)

// OrderDraft holds the raw form field values as the page captured them.
// Quantity stays a string until validation: an empty or garbled input field
// is part of the domain, not an error of the caller.
type OrderDraft struct {
	Name     string
	Phone    string
	Product  string
	Quantity string
	Details  string
}

// OrderService derives pricing and validates and submits orders. It keeps no
// state of its own beyond the injected collaborators; everything else is
// recomputed from the form on each event.
type OrderService struct {
	catalog  domain.Catalog
	gateway  ports.Gateway
	store    ports.SessionStore
	notifier ports.Notifier
	doc      ports.Document
	logger   zerolog.Logger
}

func NewOrderService(catalog domain.Catalog, gw ports.Gateway, store ports.SessionStore, notifier ports.Notifier, doc ports.Document, logger zerolog.Logger) *OrderService {
	return &OrderService{
		catalog:  catalog,
		gateway:  gw,
		store:    store,
		notifier: notifier,
		doc:      doc,
		logger:   logger,
	}
}

// ComputeTotal prices the current selection and re-renders the displayed
// total. Non-numeric, absent, or negative quantity counts as zero; so does
// an unknown product.
func (s *OrderService) ComputeTotal(productLabel, rawQuantity string) int {
	price, _ := s.catalog.UnitPrice(productLabel)
	qty := parseQuantity(rawQuantity)
	total := price * qty
	s.doc.SetTotal(total)
	return total
}

// Validate checks a draft and builds the Order to submit. Checks run in a
// fixed order and stop at the first failure. The phone check toggles the
// inline phone indicator on both outcomes and reports nothing through the
// notifier; every other failure is a notification.
func (s *OrderService) Validate(draft OrderDraft) (domain.Order, error) {
	name := strings.TrimSpace(draft.Name)
	if utf8.RuneCountInString(name) < 2 {
		s.notifier.Notify(domain.TextNameTooShort, domain.MessageError)
		return domain.Order{}, domain.ErrNameTooShort
	}

	phone := strings.TrimSpace(draft.Phone)
	if !phonePattern.MatchString(phone) {
		s.doc.ShowPhoneError(true)
		return domain.Order{}, domain.ErrPhoneInvalid
	}
	s.doc.ShowPhoneError(false)

	quantity := strings.TrimSpace(draft.Quantity)
	if name == "" || phone == "" || quantity == "" {
		s.notifier.Notify(domain.TextFieldsMissing, domain.MessageError)
		return domain.Order{}, domain.ErrFieldsMissing
	}

	price, _ := s.catalog.UnitPrice(draft.Product)
	qty := parseQuantity(quantity)
	return domain.Order{
		Name:      name,
		Phone:     phone,
		Product:   draft.Product,
		Quantity:  qty,
		Details:   strings.TrimSpace(draft.Details),
		TotalCost: price * qty,
	}, nil
}

// Submit validates the draft and sends it as a single authenticated attempt.
// Without a usable token no request leaves the client. Success resets the
// form and the displayed total; any failure leaves the form as typed.
func (s *OrderService) Submit(ctx context.Context, draft OrderDraft) error {
	order, err := s.Validate(draft)
	if err != nil {
		metrics.OrdersSubmittedTotal.WithLabelValues("local").Inc()
		return err
	}

	session := s.store.Get()
	if !session.Usable() {
		s.notifier.Notify(domain.TextLoginRequired, domain.MessageError)
		metrics.OrdersSubmittedTotal.WithLabelValues("local").Inc()
		return domain.ErrNotLoggedIn
	}

	confirmation, err := s.gateway.SubmitOrder(ctx, session.Token, order)
	if err != nil {
		s.reportSubmitFailure(err)
		return err
	}

	s.notifier.Notify(confirmation, domain.MessageSuccess)
	s.doc.ResetOrderForm()
	s.doc.SetTotal(0)
	metrics.OrdersSubmittedTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("product", order.Product).Int("quantity", order.Quantity).Msg("order submitted")
	return nil
}

func (s *OrderService) reportSubmitFailure(err error) {
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &rej):
		text := rej.Detail
		if text == "" {
			text = domain.TextOrderSubmitFailed
		}
		s.notifier.Notify(text, domain.MessageError)
		metrics.OrdersSubmittedTotal.WithLabelValues("rejected").Inc()
	case errors.Is(err, domain.ErrTransport):
		s.notifier.Notify(domain.TextConnectionError, domain.MessageError)
		metrics.OrdersSubmittedTotal.WithLabelValues("transport").Inc()
	default:
		s.notifier.Notify(domain.TextOrderSubmitFailed, domain.MessageError)
		metrics.OrdersSubmittedTotal.WithLabelValues("rejected").Inc()
	}
	s.logger.Warn().Err(err).Msg("order submission failed")
}

// parseQuantity mirrors the form semantics: anything that is not a positive
// integer is zero.
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
