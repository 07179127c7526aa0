package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/config"
	"github.com/trimtime/queue-service/internal/queue"
	"github.com/trimtime/queue-service/internal/repository"
	notify "github.com/trimtime/queue-service/internal/service"
	"github.com/trimtime/queue-service/internal/utils"
)

// OwnerHandler serves the owner dashboard: the live queue, the advance and
// remove actions, walk-in entry and the daily stats.  All routes behind it
// require an OWNER token.
type OwnerHandler struct {
	Cfg   config.Config
	Queue *repository.QueueRepo
}

func NewOwnerHandler(cfg config.Config, q *repository.QueueRepo) *OwnerHandler {
	if q == nil {
		panic("nil QueueRepo passed to NewOwnerHandler")
	}
	return &OwnerHandler{Cfg: cfg, Queue: q}
}

// GetQueue returns the waiting list, the serving slot and the open flag in
// one payload so the dashboard renders from a single fetch.
func (h *OwnerHandler) GetQueue(c echo.Context) error {
	waiting, serving, open := h.Queue.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{
		"shop":    h.Cfg.ShopName,
		"open":    open,
		"serving": serving,
		"waiting": waiting,
		"count":   len(waiting),
	})
}

// Advance pops the head of the waiting queue into the serving slot.  On an
// empty queue the slot is freed and the response carries a nil serving
// entry; advancing is never an error.  When a customer was popped a
// notification event goes out best-effort with a ready WhatsApp link.
func (h *OwnerHandler) Advance(c echo.Context) error {
	serving, popped := h.Queue.Advance()

	if popped != nil {
		link := utils.WhatsAppLink(popped.Phone, "Hi "+popped.Name+", it's your turn at "+h.Cfg.ShopName+"!")
		ev := queue.QueueAdvancedEvent{
			ShopName:     h.Cfg.ShopName,
			EntryID:      popped.ID,
			Ticket:       popped.Ticket,
			CustomerName: popped.Name,
			Service:      popped.Service,
			Phone:        popped.Phone,
			DeepLink:     link,
			AdvancedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if serving != nil {
			ev.StartedAt = serving.StartedAt
		}
		// Best effort: a broker outage must not block the queue.
		_ = notify.PublishQueueAdvanced(c.Request().Context(), ev)
	}

	waiting, _, open := h.Queue.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{
		"open":    open,
		"serving": serving,
		"waiting": waiting,
		"count":   len(waiting),
	})
}

// Remove deletes a waiting entry by id.  The serving slot is never touched
// by removal.  Unknown ids are a 404.
func (h *OwnerHandler) Remove(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if !h.Queue.Remove(id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "entry not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type walkInReq struct {
	Name    string `json:"name" validate:"required"`
	Service string `json:"service" validate:"required"`
	Phone   string `json:"phone"`
}

// AddWalkIn appends a walk-in customer to the end of the waiting queue and
// returns the created entry with its ticket and estimated wait.
func (h *OwnerHandler) AddWalkIn(c echo.Context) error {
	var req walkInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and service are required"})
	}

	entry := h.Queue.Add(req.Name, req.Service, req.Phone)

	_ = notify.PublishQueueJoined(c.Request().Context(), queue.QueueJoinedEvent{
		ShopName:     h.Cfg.ShopName,
		EntryID:      entry.ID,
		Ticket:       entry.Ticket,
		CustomerName: entry.Name,
		Service:      entry.Service,
		Phone:        entry.Phone,
		WaitTime:     entry.WaitTime,
		JoinedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, entry)
}

type openReq struct {
	Open *bool `json:"open" validate:"required"`
}

// SetOpen toggles whether the shop advertises itself as accepting new
// customers.  Closing does not block queue operations; it only changes the
// flag surfaced to the discovery views.
func (h *OwnerHandler) SetOpen(c echo.Context) error {
	var req openReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "open is required"})
	}
	open := h.Queue.SetOpen(*req.Open)
	return c.JSON(http.StatusOK, echo.Map{"open": open})
}

// GetStats returns the dashboard's daily numbers.
func (h *OwnerHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Queue.Stats())
}
