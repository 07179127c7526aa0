package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/config"
	"github.com/trimtime/queue-service/internal/handler"
	"github.com/trimtime/queue-service/internal/repository"
	"github.com/trimtime/queue-service/internal/utils"
)

const testSecret = "router-test-secret"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		Env: "test", Port: "0", JWTSecret: testSecret,
		AccessTTLMin: 15, RefreshTTLDays: 7,
		ShopName:       "Royal Cuts",
		WhatsAppNumber: "+918382930021",
		Greeting:       "Hi, I want to join the queue",
	}

	e := echo.New()
	e.Validator = handler.NewValidator()

	shops := repository.NewShopRepo(repository.SeedShops())
	waiting, serving, stats := repository.SeedQueue()
	queueRepo := repository.NewQueueRepo(waiting, serving, stats)
	bookings := repository.NewBookingRepo(repository.SeedBookings())

	noCache := func(next echo.HandlerFunc) echo.HandlerFunc { return next }

	RegisterRoutes(e)
	RegisterAuthRoutes(e, handler.NewAuthHandler(cfg, repository.NewUserRepo(), repository.NewTokenRepo()), testSecret)
	RegisterPublic(e, handler.NewPublicHandler(shops), &handler.I18nHandler{}, handler.NewOnboardingHandler(cfg), noCache)
	RegisterOwner(e, handler.NewOwnerHandler(cfg, queueRepo), testSecret)
	RegisterCustomer(e, handler.NewCustomerHandler(bookings), testSecret)
	return e
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 1, "tester", role, 15)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + tok.Token
}

func do(e *echo.Echo, method, target, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	if rec := do(e, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz = %d", rec.Code)
	}
}

func TestPublicRoutesNeedNoAuth(t *testing.T) {
	e := newTestServer(t)
	for _, target := range []string{
		"/v1/shops",
		"/v1/shops/1",
		"/v1/stats",
		"/v1/i18n/languages",
		"/v1/i18n/hi",
		"/v1/onboarding",
	} {
		if rec := do(e, http.MethodGet, target, ""); rec.Code != http.StatusOK {
			t.Errorf("%s = %d, want 200", target, rec.Code)
		}
	}
}

func TestOwnerRoutesEnforceRole(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/v1/owner/queue", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d, want 401", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/owner/queue", "Bearer garbage"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token = %d, want 401", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/owner/queue", bearerFor(t, "CUSTOMER")); rec.Code != http.StatusForbidden {
		t.Fatalf("customer token = %d, want 403", rec.Code)
	}

	rec := do(e, http.MethodGet, "/v1/owner/queue", bearerFor(t, "OWNER"))
	if rec.Code != http.StatusOK {
		t.Fatalf("owner token = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Rahul Sharma") {
		t.Fatalf("queue body missing seed entry: %s", rec.Body.String())
	}
}

func TestCustomerRoutesEnforceRole(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/v1/bookings/active", bearerFor(t, "OWNER")); rec.Code != http.StatusForbidden {
		t.Fatalf("owner on customer route = %d, want 403", rec.Code)
	}

	rec := do(e, http.MethodGet, "/v1/bookings/active", bearerFor(t, "CUSTOMER"))
	if rec.Code != http.StatusOK {
		t.Fatalf("customer booking = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Royal Cuts & Shaves") {
		t.Fatalf("active booking body: %s", rec.Body.String())
	}

	if rec := do(e, http.MethodGet, "/v1/favorites", bearerFor(t, "CUSTOMER")); rec.Code != http.StatusOK {
		t.Fatalf("favorites = %d", rec.Code)
	}
}

func TestMeRequiresToken(t *testing.T) {
	e := newTestServer(t)
	if rec := do(e, http.MethodGet, "/v1/me", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("/v1/me without token = %d, want 401", rec.Code)
	}
}

func TestOnboardingPayload(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/v1/onboarding", "")
	body := rec.Body.String()
	if !strings.Contains(body, "https://wa.me/918382930021?text=Hi%2C%20I%20want%20to%20join%20the%20queue") {
		t.Fatalf("onboarding deep link wrong: %s", body)
	}
	if !strings.Contains(body, "Chat with Bot") {
		t.Fatalf("onboarding steps missing: %s", body)
	}
}

func TestI18nTable(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/v1/i18n/ar", "")
	if !strings.Contains(rec.Body.String(), `"lang":"ar"`) {
		t.Fatalf("arabic table response: %s", rec.Body.String())
	}

	// Unknown codes fall back to the default language.
	rec = do(e, http.MethodGet, "/v1/i18n/fr", "")
	if !strings.Contains(rec.Body.String(), `"lang":"en"`) {
		t.Fatalf("fallback table response: %s", rec.Body.String())
	}
}
