package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/handler"
	"github.com/trimtime/queue-service/internal/middleware"
)

// RegisterOwner registers OWNER-scoped queue endpoints under /v1/owner.
// All routes require a valid JWT and OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/owner",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Queue ----
	g.GET("/queue", o.GetQueue)
	g.POST("/queue/advance", o.Advance)
	g.POST("/queue/entries", o.AddWalkIn)
	g.DELETE("/queue/entries/:id", o.Remove)
	g.PUT("/queue/open", o.SetOpen)

	// ---- Stats ----
	g.GET("/stats", o.GetStats)
}
