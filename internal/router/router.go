package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/handler"
	"github.com/trimtime/queue-service/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probe this endpoint to verify the
	// service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuthRoutes registers the session endpoints.  Register, login and
// refresh live under /v1/auth and need no existing session.  Logout accepts
// a refresh token in the body (or a bearer token) and therefore also needs
// no JWT middleware.  /v1/me requires a valid access token with a known
// role.
func RegisterAuthRoutes(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated discovery, i18n and
// onboarding endpoints.  The cache middleware is applied only to the
// catalog reads; the location update must never be served from cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, i *handler.I18nHandler, o *handler.OnboardingHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/shops", p.GetShops, cache)
	e.GET("/v1/shops/:id", p.GetShop, cache)
	e.PUT("/v1/location", p.UpdateLocation)
	e.POST("/v1/location/failure", p.ReportLocationFailure)
	e.GET("/v1/stats", p.GetStats, cache)

	e.GET("/v1/i18n/languages", i.GetLanguages, cache)
	e.GET("/v1/i18n/:lang", i.GetTable, cache)

	e.GET("/v1/onboarding", o.GetOnboarding, cache)
}
