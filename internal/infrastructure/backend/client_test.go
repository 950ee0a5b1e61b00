package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
)

// fakeAPI runs the storefront API contract on an in-process echo server.
func fakeAPI(t *testing.T) (*echo.Echo, *httptest.Server) {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return e, srv
}

func newClient(srv *httptest.Server) *Client {
	return New(srv.URL, srv.Client(), zerolog.Nop())
}

func TestClient_Login_Success(t *testing.T) {
	e, srv := fakeAPI(t)
	e.POST("/login", func(c echo.Context) error {
		var creds domain.Credentials
		if err := c.Bind(&creds); err != nil {
			return err
		}
		if creds.Username != "anna" || creds.Password != "pass123" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Неверное имя пользователя или пароль"})
		}
		return c.JSON(http.StatusOK, map[string]string{"access_token": "t1", "role": "admin"})
	})

	result, err := newClient(srv).Login(context.Background(), domain.Credentials{Username: "anna", Password: "pass123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "t1" || result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestClient_Login_RejectionCarriesDetail(t *testing.T) {
	e, srv := fakeAPI(t)
	e.POST("/login", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Неверное имя пользователя или пароль"})
	})

	_, err := newClient(srv).Login(context.Background(), domain.Credentials{Username: "anna", Password: "wrong1"})
	var rej *domain.RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rej.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rej.Status)
	}
	if rej.Detail != "Неверное имя пользователя или пароль" {
		t.Fatalf("unexpected detail: %q", rej.Detail)
	}
}

func TestClient_Login_MissingDetailLeavesItEmpty(t *testing.T) {
	e, srv := fakeAPI(t)
	e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "upstream exploded")
	})

	_, err := newClient(srv).Login(context.Background(), domain.Credentials{Username: "anna", Password: "pass123"})
	var rej *domain.RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rej.Detail != "" {
		t.Fatalf("expected empty detail for undecodable body, got %q", rej.Detail)
	}
}

func TestClient_Register_Success(t *testing.T) {
	e, srv := fakeAPI(t)
	e.POST("/register", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Пользователь успешно зарегистрирован"})
	})

	if err := newClient(srv).Register(context.Background(), domain.Credentials{Username: "anna", Password: "pass123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_SubmitOrder_AttachesBearerToken(t *testing.T) {
	e, srv := fakeAPI(t)
	e.POST("/order", func(c echo.Context) error {
		if got := c.Request().Header.Get("Authorization"); got != "Bearer t1" {
			t.Errorf("Authorization = %q, want Bearer t1", got)
		}
		var order domain.Order
		if err := c.Bind(&order); err != nil {
			return err
		}
		if order.TotalCost != 3000 {
			t.Errorf("total_cost = %d, want 3000", order.TotalCost)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Спасибо за заказ, Анна!"})
	})

	msg, err := newClient(srv).SubmitOrder(context.Background(), "t1", domain.Order{
		Name:      "Анна",
		Phone:     "89123456789",
		Product:   "Медовик",
		Quantity:  2,
		TotalCost: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Спасибо за заказ, Анна!" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestClient_FetchOrders_DecodesRecords(t *testing.T) {
	created := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	e, srv := fakeAPI(t)
	e.GET("/orders", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []domain.OrderRecord{
			{ID: 1, Name: "Анна", Phone: "89123456789", Product: "Медовик", Quantity: 2, TotalCost: 3000, CreatedAt: created},
		})
	})

	records, err := newClient(srv).FetchOrders(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Анна" || !records[0].CreatedAt.Equal(created) {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestClient_TransportFailure(t *testing.T) {
	_, srv := fakeAPI(t)
	url := srv.URL
	srv.Close()

	client := New(url, nil, zerolog.Nop())
	_, err := client.Login(context.Background(), domain.Credentials{Username: "anna", Password: "pass123"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
