package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/geo"
	"github.com/trimtime/queue-service/internal/locale"
	"github.com/trimtime/queue-service/internal/model"
	"github.com/trimtime/queue-service/internal/repository"
)

// PublicHandler exposes the unauthenticated discovery endpoints: catalog
// browsing with filters, the location update, and the landing stats.
type PublicHandler struct {
	Shops *repository.ShopRepo
}

func NewPublicHandler(shops *repository.ShopRepo) *PublicHandler {
	if shops == nil {
		panic("nil ShopRepo passed to NewPublicHandler")
	}
	return &PublicHandler{Shops: shops}
}

// GetShops lists the catalog through the filter pipeline.  Every filter is
// optional; absent filters are neutral.  An empty result is a normal 200
// with an empty data array.
//
// Query params: q, min_rating, max_distance_km, status (all|open|closed),
// price (all|budget|mid|premium).
func (h *PublicHandler) GetShops(c echo.Context) error {
	f := model.FilterCriteria{
		Query:  strings.TrimSpace(c.QueryParam("q")),
		Status: strings.ToLower(strings.TrimSpace(c.QueryParam("status"))),
		Price:  model.PriceBucket(strings.ToLower(strings.TrimSpace(c.QueryParam("price")))),
	}
	if v := c.QueryParam("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 || r > 5 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_rating"})
		}
		f.MinRating = r
	}
	if v := c.QueryParam("max_distance_km"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_distance_km"})
		}
		f.MaxDistanceKm = d
	}
	switch f.Status {
	case "", "all", "open", "closed":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	switch f.Price {
	case "", model.PriceAll, model.PriceBudget, model.PriceMid, model.PricePremium:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	items := h.Shops.Search(f)
	_, located := h.Shops.Location()
	return c.JSON(http.StatusOK, echo.Map{
		"data":    items,
		"total":   len(items),
		"located": located,
	})
}

// GetShop returns a single catalog record.
func (h *PublicHandler) GetShop(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Shops.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "shop not found"})
	}
	return c.JSON(http.StatusOK, s)
}

type locationReq struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UpdateLocation stores the position the client read from its device,
// recomputes every shop's distance from its seed coordinates and returns
// the catalog re-sorted nearest-first.  Suppressing overlapping requests is
// the client's job (its locating flag); the repo handles concurrent calls
// safely either way.
func (h *PublicHandler) UpdateLocation(c echo.Context) error {
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "latitude and longitude required"})
	}

	shops := h.Shops.SetLocation(geo.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude})
	return c.JSON(http.StatusOK, echo.Map{
		"message": locale.T(locale.Default, "locationUpdated"),
		"data":    shops,
		"total":   len(shops),
	})
}

type locationFailureReq struct {
	Code int `json:"code"`
}

// ReportLocationFailure classifies a device geolocation error code and
// returns the notification message to show.  The catalog is untouched:
// a failed read never mutates distances.
func (h *PublicHandler) ReportLocationFailure(c echo.Context) error {
	var req locationFailureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	f := geo.ClassifyFailure(req.Code)
	return c.JSON(http.StatusOK, echo.Map{
		"failure": f,
		"message": f.Message(),
	})
}

// GetStats returns the landing page quick stats with labels in the
// requested language (lang query param, default en).
func (h *PublicHandler) GetStats(c echo.Context) error {
	lang := locale.Parse(c.QueryParam("lang"))
	stats := []echo.Map{
		{"number": "500+", "label": locale.T(lang, "happyCustomers")},
		{"number": "50+", "label": locale.T(lang, "partnerShops")},
		{"number": "30min", "label": locale.T(lang, "avgTimeSaved")},
	}
	return c.JSON(http.StatusOK, echo.Map{"data": stats})
}
