package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/locale"
)

// I18nHandler exposes the language menu and the translation tables so
// clients can render every display string without shipping copies.
type I18nHandler struct{}

// GetLanguages lists the selectable languages in menu order.
func (h *I18nHandler) GetLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": locale.Languages()})
}

// GetTable returns the full translation table for one language.  Unknown
// codes resolve to the default language rather than a 404 so a stale client
// preference still gets usable strings.
func (h *I18nHandler) GetTable(c echo.Context) error {
	lang := locale.Parse(c.Param("lang"))
	return c.JSON(http.StatusOK, echo.Map{
		"lang":  lang,
		"table": locale.Table(lang),
	})
}
