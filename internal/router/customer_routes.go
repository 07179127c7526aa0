package router

import (
	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/handler"
	"github.com/trimtime/queue-service/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All
// routes require a valid JWT and the CUSTOMER role.  Customers can view
// their active booking, their booking history and their saved shops.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	g.GET("/bookings/active", h.GetActiveBooking)
	g.GET("/bookings/history", h.GetHistory)
	g.GET("/favorites", h.GetFavorites)
}
