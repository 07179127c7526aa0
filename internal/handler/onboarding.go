package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/config"
	"github.com/trimtime/queue-service/internal/utils"
)

// OnboardingHandler serves everything a printed shop poster needs: the
// WhatsApp number, the pre-filled deep link behind the QR code and the
// how-it-works steps shown next to it.
type OnboardingHandler struct {
	Cfg config.Config
}

func NewOnboardingHandler(cfg config.Config) *OnboardingHandler {
	return &OnboardingHandler{Cfg: cfg}
}

// GetOnboarding returns the QR poster payload.  The deep link is the value
// a QR renderer would encode; no image is produced server-side.
func (h *OnboardingHandler) GetOnboarding(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"shop":      h.Cfg.ShopName,
		"number":    h.Cfg.WhatsAppNumber,
		"greeting":  h.Cfg.Greeting,
		"deep_link": utils.WhatsAppLink(h.Cfg.WhatsAppNumber, h.Cfg.Greeting),
		"steps": []echo.Map{
			{"step": 1, "title": "Scan QR Code", "description": "Use your phone camera or WhatsApp to scan the QR code below"},
			{"step": 2, "title": "Chat with Bot", "description": "Send \"Hi\" to our WhatsApp bot to start the conversation"},
			{"step": 3, "title": "Join Queue", "description": "Follow the bot's instructions to join the barber queue"},
			{"step": 4, "title": "Get Notified", "description": "Receive real-time updates on WhatsApp when it's your turn"},
		},
	})
}
