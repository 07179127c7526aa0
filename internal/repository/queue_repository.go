package repository

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trimtime/queue-service/internal/model"
)

// QueueRepo owns a shop's waiting queue and serving slot.  The queue is
// strict FIFO: Advance always serves the head, and no priority or
// reordering exists.  The open/closed flag is independent of queue
// contents and does not gate Advance or Remove.
type QueueRepo struct {
	mu      sync.Mutex
	waiting []model.QueueEntry
	serving *model.ServingSlot
	open    bool
	stats   model.ShopStats
	nextID  uint64
	now     func() time.Time
}

// NewQueueRepo builds a queue with the given seed state.  nextID continues
// after the highest seeded entry id.
func NewQueueRepo(waiting []model.QueueEntry, serving *model.ServingSlot, stats model.ShopStats) *QueueRepo {
	q := &QueueRepo{
		waiting: append([]model.QueueEntry(nil), waiting...),
		serving: serving,
		open:    true,
		stats:   stats,
		nextID:  100,
		now:     time.Now,
	}
	for _, e := range q.waiting {
		if e.ID >= q.nextID {
			q.nextID = e.ID + 1
		}
	}
	return q
}

// Snapshot returns copies of the waiting list, the serving slot (nil when
// the chair is free) and the open flag.
func (q *QueueRepo) Snapshot() ([]model.QueueEntry, *model.ServingSlot, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	waiting := append([]model.QueueEntry(nil), q.waiting...)
	var serving *model.ServingSlot
	if q.serving != nil {
		s := *q.serving
		serving = &s
	}
	return waiting, serving, q.open
}

// Advance moves the head of the waiting queue into the serving slot with the
// current wall-clock start time.  On an empty queue the slot simply becomes
// free.  It returns the new slot (nil when freed) together with the popped
// waiting entry so callers can notify the customer; Advance cannot fail.
func (q *QueueRepo) Advance() (*model.ServingSlot, *model.QueueEntry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.waiting) == 0 {
		q.serving = nil
		return nil, nil
	}
	head := q.waiting[0]
	q.waiting = q.waiting[1:]
	q.serving = &model.ServingSlot{
		ID:        head.ID,
		Name:      head.Name,
		Service:   head.Service,
		StartedAt: q.now().Format("15:04"),
	}
	s := *q.serving
	return &s, &head
}

// Remove deletes the waiting entry with the given id.  The serving slot is
// never touched.  It reports whether an entry was actually removed.
func (q *QueueRepo) Remove(id uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.waiting {
		if e.ID == id {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			return true
		}
	}
	return false
}

// Add appends a walk-in customer to the tail of the queue and returns the
// created entry.  The wait label is a coarse estimate from queue length.
func (q *QueueRepo) Add(name, service, phone string) model.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	e := model.QueueEntry{
		ID:       q.nextID,
		Ticket:   uuid.NewString(),
		Name:     name,
		Service:  service,
		JoinedAt: q.now().Format("15:04"),
		WaitTime: waitLabel(len(q.waiting) + 1),
		Phone:    phone,
		Status:   model.EntryWaiting,
	}
	q.nextID++
	q.waiting = append(q.waiting, e)
	return e
}

// SetOpen toggles the shop open flag and returns the new value.
func (q *QueueRepo) SetOpen(open bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.open = open
	return q.open
}

// Stats returns the owner dashboard stat cards.
func (q *QueueRepo) Stats() model.ShopStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}

// waitLabel estimates wait time at 15 minutes per queued customer, matching
// the spacing of the seeded entries.
func waitLabel(position int) string {
	return strconv.Itoa(position*15) + " min"
}

// SeedQueue is the demo state of the Royal Cuts queue: one customer in the
// chair and three waiting.
func SeedQueue() ([]model.QueueEntry, *model.ServingSlot, model.ShopStats) {
	waiting := []model.QueueEntry{
		{ID: 101, Ticket: uuid.NewString(), Name: "Rahul Sharma", Service: "Haircut & Beard",
			JoinedAt: "14:15", WaitTime: "15 min", Phone: "+919876543210", Status: model.EntryWaiting},
		{ID: 102, Ticket: uuid.NewString(), Name: "Amit Kumar", Service: "Haircut",
			JoinedAt: "14:30", WaitTime: "30 min", Phone: "+919876543211", Status: model.EntryWaiting},
		{ID: 103, Ticket: uuid.NewString(), Name: "Priya Singh", Service: "Hair Spa",
			JoinedAt: "14:45", WaitTime: "45 min", Phone: "+919876543212", Status: model.EntryWaiting},
	}
	serving := &model.ServingSlot{ID: 99, Name: "Vikram Malhotra", Service: "Full Grooming Package", StartedAt: "14:00"}
	stats := model.ShopStats{
		RevenueToday:    "₹4,250",
		CustomersServed: 18,
		AvgWait:         "14 min",
		QueueEfficiency: "94%",
	}
	return waiting, serving, stats
}
