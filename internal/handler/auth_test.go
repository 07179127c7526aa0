package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/config"
	"github.com/trimtime/queue-service/internal/repository"
)

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		ShopName:       "Royal Cuts",
		WhatsAppNumber: "+918382930021",
		Greeting:       "Hi, I want to join the queue",
	}
}

func newAuthEnv() (*echo.Echo, *AuthHandler) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(testConfig(), repository.NewUserRepo(), repository.NewTokenRepo())
	return e, h
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestLoginMissingFields(t *testing.T) {
	e, h := newAuthEnv()

	rec := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error"] != "Please fill in all fields" {
		t.Fatalf("error = %q, want the fill-in message", body["error"])
	}
}

func TestLoginIssuesSessionAndNameFromEmail(t *testing.T) {
	e, h := newAuthEnv()

	rec := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"ramesh@example.com","password":"whatever"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Access  struct{ Token string } `json:"access"`
		Refresh struct{ Token string } `json:"refresh"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.User.Name != "ramesh" {
		t.Fatalf("name = %q, want email local part", resp.User.Name)
	}
	if resp.User.Role != "CUSTOMER" {
		t.Fatalf("role = %q, want CUSTOMER default", resp.User.Role)
	}
	if resp.Access.Token == "" || resp.Refresh.Token == "" {
		t.Fatal("missing tokens in login response")
	}
}

func TestLoginOwnerRole(t *testing.T) {
	e, h := newAuthEnv()

	rec := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"owner@royalcuts.in","password":"x","role":"owner"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.User.Role != "OWNER" {
		t.Fatalf("role = %q, want OWNER", resp.User.Role)
	}
}

func TestLoginIsIdempotentPerEmail(t *testing.T) {
	e, h := newAuthEnv()

	first := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"a@b.com","password":"x"}`)
	second := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"a@b.com","password":"different"}`)

	var u1, u2 struct {
		User struct {
			ID uint64 `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &u1); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &u2); err != nil {
		t.Fatal(err)
	}
	if u1.User.ID != u2.User.ID {
		t.Fatalf("same email got two accounts: %d and %d", u1.User.ID, u2.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e, h := newAuthEnv()

	body := `{"name":"Asha","email":"asha@example.com"}`
	if rec := doJSON(e, h.Register, http.MethodPost, "/v1/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", rec.Code)
	}
	if rec := doJSON(e, h.Register, http.MethodPost, "/v1/auth/register", body); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", rec.Code)
	}
}

func TestRefreshRotation(t *testing.T) {
	e, h := newAuthEnv()

	login := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"rot@example.com","password":"x"}`)
	var resp struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	refresh := doJSON(e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	if refresh.Code != http.StatusOK {
		t.Fatalf("refresh status = %d: %s", refresh.Code, refresh.Body.String())
	}

	// The old token was rotated out and must not work twice.
	again := doJSON(e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	if again.Code != http.StatusUnauthorized {
		t.Fatalf("reused refresh status = %d, want 401", again.Code)
	}
}

func TestLogoutRevokesRefresh(t *testing.T) {
	e, h := newAuthEnv()

	login := doJSON(e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"out@example.com","password":"x"}`)
	var resp struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	out := doJSON(e, h.Logout, http.MethodPost, "/v1/auth/logout",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	if out.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", out.Code)
	}

	dead := doJSON(e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	if dead.Code != http.StatusUnauthorized {
		t.Fatalf("refresh after logout status = %d, want 401", dead.Code)
	}
}
