package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

type stubAccountService struct {
	registerProFn     func(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error)
	loginProFn        func(ctx context.Context, email, password string) (string, *domain.ProUser, error)
	registerArtisanFn func(ctx context.Context, input ports.RegisterArtisanInput) (*domain.Artisan, error)
	loginArtisanFn    func(ctx context.Context, email, password string) (string, *domain.Artisan, error)
	logoutArtisanFn   func(ctx context.Context, artisanID string) error
}

func (s *stubAccountService) RegisterPro(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
	return s.registerProFn(ctx, input)
}

func (s *stubAccountService) LoginPro(ctx context.Context, email, password string) (string, *domain.ProUser, error) {
	return s.loginProFn(ctx, email, password)
}

func (s *stubAccountService) RegisterArtisan(ctx context.Context, input ports.RegisterArtisanInput) (*domain.Artisan, error) {
	return s.registerArtisanFn(ctx, input)
}

func (s *stubAccountService) LoginArtisan(ctx context.Context, email, password string) (string, *domain.Artisan, error) {
	return s.loginArtisanFn(ctx, email, password)
}

func (s *stubAccountService) LogoutArtisan(ctx context.Context, artisanID string) error {
	return s.logoutArtisanFn(ctx, artisanID)
}

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAccountHandler_RegisterPro_Success(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		registerProFn: func(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
			if input.Email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", input.Email)
			}
			return &domain.ProUser{ID: "pro_1", Name: input.Name, Email: input.Email}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	if err := handler.RegisterPro(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "pro_1" {
		t.Fatalf("expected user_id, got %v", resp["user_id"])
	}
}

func TestAccountHandler_RegisterPro_DuplicateEmail(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		registerProFn: func(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/register", `{"name":"Bob","email":"bob@example.com","password":"secret"}`)
	err := handler.RegisterPro(c)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountHandler_RegisterPro_RejectsMalformedFields(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		registerProFn: func(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	for _, body := range []string{
		`{"name":"x","email":"not-an-email","password":"a"}`,
		`{"name":"x","email":"x@example.com","password":"a"}`,
		`{"name":"x","email":"x@example.com"}`,
	} {
		c, _ := newJSONContext(e, http.MethodPost, "/register", body)
		err := handler.RegisterPro(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 HTTPError for %s, got %v", body, err)
		}
	}
}

func TestAccountHandler_RegisterArtisan_RejectsMalformedFields(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		registerArtisanFn: func(ctx context.Context, input ports.RegisterArtisanInput) (*domain.Artisan, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := `{"contact_name":"Martin","email":"bad","password":"p","commune":"Brest"}`
	c, _ := newJSONContext(e, http.MethodPost, "/artisan/register", body)
	err := handler.RegisterArtisan(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAccountHandler_LoginPro_RejectsMalformedEmail(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		loginProFn: func(ctx context.Context, email, password string) (string, *domain.ProUser, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/login", `{"email":"not-an-email","password":"secret"}`)
	err := handler.LoginPro(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAccountHandler_RegisterPro_InvalidPayload(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		registerProFn: func(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/register", "not-json")
	err := handler.RegisterPro(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAccountHandler_LoginPro_Success(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		loginProFn: func(ctx context.Context, email, password string) (string, *domain.ProUser, error) {
			return "jwt123", &domain.ProUser{ID: "pro_1", Name: "Alice", Email: email}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := handler.LoginPro(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "jwt123" {
		t.Fatalf("expected token in response, got %v", resp["token"])
	}
}

func TestAccountHandler_LoginArtisan_Success(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		loginArtisanFn: func(ctx context.Context, email, password string) (string, *domain.Artisan, error) {
			return "opaque-token", &domain.Artisan{
				ID:          "artisan_1",
				ContactName: "Martin",
				Email:       email,
				Commune:     "Brest",
				RadiusKm:    25,
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/artisan/login", `{"email":"martin@example.com","password":"secret"}`)
	if err := handler.LoginArtisan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// the mobile client reads this exact key
	if resp["artisan_token"] != "opaque-token" {
		t.Fatalf("expected artisan_token, got %v", resp["artisan_token"])
	}
	if resp["artisan_id"] != "artisan_1" {
		t.Fatalf("expected artisan_id, got %v", resp["artisan_id"])
	}
}

func TestAccountHandler_LoginArtisan_InvalidCredentials(t *testing.T) {
	e := newValidatingEcho()
	stub := &stubAccountService{
		loginArtisanFn: func(ctx context.Context, email, password string) (string, *domain.Artisan, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAccountHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/artisan/login", `{"email":"martin@example.com","password":"bad"}`)
	if err := handler.LoginArtisan(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountHandler_LogoutArtisan(t *testing.T) {
	e := newValidatingEcho()
	var revoked string
	stub := &stubAccountService{
		logoutArtisanFn: func(ctx context.Context, artisanID string) error {
			revoked = artisanID
			return nil
		},
	}
	handler := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/artisan/logout/artisan_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("artisan_id")
	c.SetParamValues("artisan_1")

	if err := handler.LogoutArtisan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != "artisan_1" {
		t.Fatalf("expected revoke for artisan_1, got %q", revoked)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
