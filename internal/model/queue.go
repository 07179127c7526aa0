package model

// QueueEntry is one waiting customer in a shop's FIFO queue.  Entries are
// owned exclusively by the shop's queue list; the head of the list is the
// longest-waiting customer and the only candidate for service.
//
// Fields:
//  ID       – queue entry identifier.
//  Ticket   – opaque reference token handed to the customer when they joined.
//  Name     – customer display name.
//  Service  – requested service label.
//  JoinedAt – HH:MM wall-clock label of when the customer joined.
//  WaitTime – computed wait label, e.g. "30 min".
//  Phone    – contact number for WhatsApp notifications.
//  Status   – always "waiting" while in the list.
type QueueEntry struct {
	ID       uint64 `json:"id"`
	Ticket   string `json:"ticket"`
	Name     string `json:"name"`
	Service  string `json:"service"`
	JoinedAt string `json:"time_joined"`
	WaitTime string `json:"wait_time"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// EntryWaiting is the only status a QueueEntry carries while queued.
const EntryWaiting = "waiting"

// ServingSlot is the single customer currently being attended to.  At most
// one slot is occupied at any time; a nil slot means the chair is free.
type ServingSlot struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	StartedAt string `json:"start_time"`
}

// ShopStats are the dashboard stat cards shown to a shop owner.  The values
// are demo figures seeded at startup.
type ShopStats struct {
	RevenueToday    string `json:"revenue_today"`
	CustomersServed int    `json:"customers_served"`
	AvgWait         string `json:"avg_wait"`
	QueueEfficiency string `json:"queue_efficiency"`
}
