package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trimtime/queue-service/internal/model"
	"github.com/trimtime/queue-service/internal/repository"
)

func newOwnerEnv() (*echo.Echo, *OwnerHandler) {
	e := echo.New()
	e.Validator = NewValidator()
	waiting, serving, stats := repository.SeedQueue()
	return e, NewOwnerHandler(testConfig(), repository.NewQueueRepo(waiting, serving, stats))
}

type queueResp struct {
	Open    bool               `json:"open"`
	Serving *model.ServingSlot `json:"serving"`
	Waiting []model.QueueEntry `json:"waiting"`
	Count   int                `json:"count"`
}

func TestGetQueueSeed(t *testing.T) {
	e, h := newOwnerEnv()

	rec := httptest.NewRecorder()
	if err := h.GetQueue(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatal(err)
	}
	var resp queueResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Open {
		t.Fatal("seeded shop should be open")
	}
	if resp.Serving == nil || resp.Serving.Name != "Vikram Malhotra" {
		t.Fatalf("serving = %+v, want the seeded customer", resp.Serving)
	}
	if resp.Count != 3 || resp.Waiting[0].Name != "Rahul Sharma" {
		t.Fatalf("waiting = %+v, want the 3 seeded entries", resp.Waiting)
	}
}

func TestAdvanceEndpoint(t *testing.T) {
	e, h := newOwnerEnv()

	rec := httptest.NewRecorder()
	if err := h.Advance(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)); err != nil {
		t.Fatal(err)
	}
	var resp queueResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Serving == nil || resp.Serving.ID != 101 {
		t.Fatalf("serving = %+v, want entry 101", resp.Serving)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}

	// Drain and advance once more: freeing the chair is still a 200.
	for i := 0; i < 3; i++ {
		rec = httptest.NewRecorder()
		if err := h.Advance(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)); err != nil {
			t.Fatal(err)
		}
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("empty-queue advance status = %d, want 200", rec.Code)
	}
	var empty queueResp
	if err := json.Unmarshal(rec.Body.Bytes(), &empty); err != nil {
		t.Fatal(err)
	}
	if empty.Serving != nil || empty.Count != 0 {
		t.Fatalf("after drain: %+v", empty)
	}
}

func TestRemoveEndpoint(t *testing.T) {
	e, h := newOwnerEnv()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("102")
	if err := h.Remove(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("102")
	if err := h.Remove(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat remove status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Remove(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", rec.Code)
	}
}

func TestAddWalkInEndpoint(t *testing.T) {
	e, h := newOwnerEnv()

	body := `{"name":"Sanjay Rao","service":"Haircut","phone":"+919000000001"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.AddWalkIn(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var entry model.QueueEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.ID != 104 || entry.Ticket == "" || entry.WaitTime != "60 min" {
		t.Fatalf("unexpected walk-in entry: %+v", entry)
	}

	// Missing required fields are rejected before touching the queue.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"No Service"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	if err := h.AddWalkIn(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid walk-in status = %d, want 400", rec.Code)
	}
}

func TestSetOpenEndpoint(t *testing.T) {
	e, h := newOwnerEnv()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"open":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.SetOpen(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"open":false`) {
		t.Fatalf("set open response: %d %s", rec.Code, rec.Body.String())
	}

	// The flag is required so an empty body cannot silently close the shop.
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	if err := h.SetOpen(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty toggle status = %d, want 400", rec.Code)
	}
}

func TestOwnerStatsEndpoint(t *testing.T) {
	e, h := newOwnerEnv()

	rec := httptest.NewRecorder()
	if err := h.GetStats(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Body.String(), "₹4,250") {
		t.Fatalf("stats body missing revenue: %s", rec.Body.String())
	}
}
