package ports

import (
	"context"

	"github.com/cakehouse/storefront-client/internal/core/domain"
)

// LoginResult is what a successful credential exchange yields. Role may be
// empty when the backend omits it; the caller decides how to recover.
type LoginResult struct {
	Token string
	Role  domain.Role
}

// Gateway is the remote storefront API. Implementations translate transport
// and HTTP-level failures into the domain error taxonomy:
//
//   - non-OK response with a detail body → *domain.RejectionError
//   - request never completed            → wrapped domain.ErrTransport
type Gateway interface {
	Login(ctx context.Context, creds domain.Credentials) (LoginResult, error)
	Register(ctx context.Context, creds domain.Credentials) error
	SubmitOrder(ctx context.Context, token string, order domain.Order) (string, error)
	FetchOrders(ctx context.Context, token string) ([]domain.OrderRecord, error)
}
