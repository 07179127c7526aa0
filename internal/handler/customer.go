package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/repository"
)

// CustomerHandler serves the customer dashboard: the active booking, the
// booking history and the saved favorites.
type CustomerHandler struct {
	Bookings *repository.BookingRepo
}

func NewCustomerHandler(b *repository.BookingRepo) *CustomerHandler {
	if b == nil {
		panic("nil BookingRepo passed to NewCustomerHandler")
	}
	return &CustomerHandler{Bookings: b}
}

// GetActiveBooking returns the customer's current booking.  Having no active
// booking is a normal state, not an error: the response is a 200 with null
// data so the dashboard can render its empty state.
func (h *CustomerHandler) GetActiveBooking(c echo.Context) error {
	b, err := h.Bookings.Active()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"data": nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": b})
}

// GetHistory returns past bookings, newest first.
func (h *CustomerHandler) GetHistory(c echo.Context) error {
	items := h.Bookings.History()
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

// GetFavorites returns the customer's saved shops.
func (h *CustomerHandler) GetFavorites(c echo.Context) error {
	items := h.Bookings.Favorites()
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}
