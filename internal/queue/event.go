// Package queue defines message payloads exchanged over the message broker.
package queue

// QueueAdvancedEvent is published when a shop advances its queue and a
// waiting customer moves into the chair.  It carries enough for downstream
// consumers to log or notify without reading the in-memory state, including
// the ready-made WhatsApp deep link for the "your turn" message.
type QueueAdvancedEvent struct {
	ShopName     string `json:"shop_name"`
	EntryID      uint64 `json:"entry_id"`
	Ticket       string `json:"ticket"`
	CustomerName string `json:"customer_name"`
	Service      string `json:"service"`
	Phone        string `json:"phone"`
	StartedAt    string `json:"started_at"`
	DeepLink     string `json:"deep_link"`
	AdvancedAt   string `json:"advanced_at"`
}

// QueueJoinedEvent is published when a walk-in customer is added to the
// waiting list.
type QueueJoinedEvent struct {
	ShopName     string `json:"shop_name"`
	EntryID      uint64 `json:"entry_id"`
	Ticket       string `json:"ticket"`
	CustomerName string `json:"customer_name"`
	Service      string `json:"service"`
	Phone        string `json:"phone"`
	WaitTime     string `json:"wait_time"`
	JoinedAt     string `json:"joined_at"`
}
