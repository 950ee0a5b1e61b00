package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/metrics"
)

// AuthService implements the login and registration flows: local checks,
// credential exchange, session persistence, and the post-login navigation.
type AuthService struct {
	gateway  ports.Gateway
	store    ports.SessionStore
	notifier ports.Notifier
	nav      ports.Navigator
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAuthService(gw ports.Gateway, store ports.SessionStore, notifier ports.Notifier, nav ports.Navigator, logger zerolog.Logger) *AuthService {
	return &AuthService{
		gateway:  gw,
		store:    store,
		notifier: notifier,
		nav:      nav,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login exchanges credentials for a session. On success the session is
// persisted and the user lands on the role-appropriate page. Every failure
// path ends in a notification; nothing is retried.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	creds := domain.Credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if creds.Username == "" || creds.Password == "" {
		s.notifier.Notify(domain.TextCredentialsNeeded, domain.MessageError)
		metrics.AuthAttemptsTotal.WithLabelValues("login", "local").Inc()
		return domain.ErrCredentialsRequired
	}

	result, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.reportFailure("login", domain.TextLoginFailed, err)
		return err
	}

	role := result.Role
	if role == "" {
		role = roleFromToken(result.Token)
	}
	if err := s.store.Set(result.Token, role); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		s.notifier.Notify(domain.TextLoginFailed, domain.MessageError)
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.logger.Info().Str("role", string(role)).Msg("logged in")

	if role == domain.RoleAdmin {
		s.nav.Go(ports.PageAdmin)
	} else {
		s.nav.Go(ports.PageStorefront)
	}
	return nil
}

// Register creates an account. It never creates a session: on success the
// user is sent to the login page, with no confirmation message, and must log
// in explicitly.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	creds := domain.Credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := s.validate.Struct(creds); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 && ve[0].Field() == "Password" && ve[0].Tag() == "min" {
			s.notifier.Notify(domain.TextPasswordTooShort, domain.MessageError)
			metrics.AuthAttemptsTotal.WithLabelValues("register", "local").Inc()
			return domain.ErrPasswordTooShort
		}
		s.notifier.Notify(domain.TextCredentialsNeeded, domain.MessageError)
		metrics.AuthAttemptsTotal.WithLabelValues("register", "local").Inc()
		return domain.ErrCredentialsRequired
	}

	if err := s.gateway.Register(ctx, creds); err != nil {
		s.reportFailure("register", domain.TextRegisterFailed, err)
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	s.nav.Go(ports.PageLogin)
	return nil
}

// reportFailure routes a gateway error to the notifier: server detail
// verbatim when present, the operation's generic text otherwise, and the
// network text when the request never completed.
func (s *AuthService) reportFailure(op, fallback string, err error) {
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &rej):
		text := rej.Detail
		if text == "" {
			text = fallback
		}
		s.notifier.Notify(text, domain.MessageError)
		metrics.AuthAttemptsTotal.WithLabelValues(op, "rejected").Inc()
	case errors.Is(err, domain.ErrTransport):
		s.notifier.Notify(domain.TextNetworkError, domain.MessageError)
		metrics.AuthAttemptsTotal.WithLabelValues(op, "transport").Inc()
	default:
		s.notifier.Notify(fallback, domain.MessageError)
		metrics.AuthAttemptsTotal.WithLabelValues(op, "rejected").Inc()
	}
	s.logger.Warn().Err(err).Str("op", op).Msg("auth attempt failed")
}

// roleFromToken recovers the role claim from a JWT when the login response
// omitted it. The signature is NOT verified: the value gates display only,
// and the backend re-checks authorization on every request.
func roleFromToken(token string) domain.Role {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return domain.RoleCustomer
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.RoleCustomer
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return domain.RoleCustomer
	}
	return domain.ParseRole(role)
}
