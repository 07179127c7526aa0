package model

// Booking is a customer's active queue booking as shown on the customer
// dashboard.  In this build bookings are seeded demo records with no
// mutation path; cancel and view-ticket are inert.
//
// Fields:
//  ID            – booking identifier.
//  ShopName      – shop the booking is with.
//  Service       – booked service label.
//  Time          – HH:MM slot label.
//  Date          – human date label, e.g. "Today".
//  Status        – booking status, "confirmed" for seeded records.
//  Position      – position in the shop's queue, 1-based.
//  EstimatedWait – wait estimate label.
//  Image         – shop banner URL.
type Booking struct {
	ID            uint64 `json:"id"`
	ShopName      string `json:"shop_name"`
	Service       string `json:"service"`
	Time          string `json:"time"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Position      int    `json:"position"`
	EstimatedWait string `json:"estimated_wait"`
	Image         string `json:"image"`
}

// BookingConfirmed is the status of every seeded booking.
const BookingConfirmed = "confirmed"

// PastBooking is a completed booking in the customer's history.
type PastBooking struct {
	ID       uint64 `json:"id"`
	ShopName string `json:"shop_name"`
	Date     string `json:"date"`
	Service  string `json:"service"`
	Price    string `json:"price"`
	Rating   int    `json:"rating"`
}

// Favorite is a shop the customer has saved for quick rebooking.
type Favorite struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	Image   string  `json:"image"`
}
