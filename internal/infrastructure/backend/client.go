// Package backend implements the Gateway port against the storefront's
// HTTP API: JSON bodies, bearer-token auth, and the {detail} error envelope.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/metrics"
)

// Client talks to the remote storefront API. It deliberately sets no
// request timeout beyond the platform default: an in-flight request cannot
// be cancelled by the user, only abandoned by navigating away (which
// cancels the context).
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New creates a Client for the API at baseURL. A nil httpClient falls back
// to a plain &http.Client{}.
func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpClient,
		log:  log,
	}
}

var _ ports.Gateway = (*Client)(nil)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

type orderResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Login exchanges credentials for a token and role.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (ports.LoginResult, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", creds, &resp); err != nil {
		return ports.LoginResult{}, err
	}
	return ports.LoginResult{
		Token: resp.AccessToken,
		Role:  domain.Role(resp.Role),
	}, nil
}

// Register creates an account. The response body carries no data the
// client needs.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) error {
	return c.do(ctx, http.MethodPost, "/register", "", creds, nil)
}

// SubmitOrder posts an order with the bearer token attached and returns the
// server's confirmation message.
func (c *Client) SubmitOrder(ctx context.Context, token string, order domain.Order) (string, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/order", token, order, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// FetchOrders reads the full order collection.
func (c *Client) FetchOrders(ctx context.Context, token string) ([]domain.OrderRecord, error) {
	var records []domain.OrderRecord
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// do runs one round trip: encode, send, classify. Non-2xx responses become
// *domain.RejectionError with whatever detail the body held; requests that
// never complete become domain.ErrTransport.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	endpoint := strings.TrimPrefix(path, "/")

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(endpoint, "transport").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("request never completed")
		return fmt.Errorf("%s: %w", endpoint, domain.ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestDuration.WithLabelValues(endpoint, "rejected").Observe(time.Since(start).Seconds())
		var detail detailResponse
		// A body without a decodable detail field leaves Detail empty and
		// the caller falls back to its generic text.
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		return &domain.RejectionError{Status: resp.StatusCode, Detail: detail.Detail}
	}

	metrics.BackendRequestDuration.WithLabelValues(endpoint, "ok").Observe(time.Since(start).Seconds())
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
