package repository

import (
	"sync"

	"github.com/trimtime/queue-service/internal/model"
)

// BookingRepo serves the customer dashboard data: the active booking, the
// booking history and the saved favorites.  Records are seeded demo data;
// this build exposes no mutation path for them.
type BookingRepo struct {
	mu        sync.RWMutex
	active    *model.Booking
	history   []model.PastBooking
	favorites []model.Favorite
}

func NewBookingRepo(active *model.Booking, history []model.PastBooking, favorites []model.Favorite) *BookingRepo {
	return &BookingRepo{active: active, history: history, favorites: favorites}
}

// Active returns the customer's current booking, or ErrNotFound when there
// is none.
func (r *BookingRepo) Active() (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil {
		return model.Booking{}, ErrNotFound
	}
	return *r.active, nil
}

// History returns past bookings, newest first as seeded.
func (r *BookingRepo) History() []model.PastBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.PastBooking(nil), r.history...)
}

// Favorites returns the customer's saved shops.
func (r *BookingRepo) Favorites() []model.Favorite {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Favorite(nil), r.favorites...)
}

// SeedBookings is the demo customer dashboard state.
func SeedBookings() (*model.Booking, []model.PastBooking, []model.Favorite) {
	active := &model.Booking{
		ID:            1,
		ShopName:      "Royal Cuts & Shaves",
		Service:       "Haircut & Beard Trim",
		Time:          "14:30",
		Date:          "Today",
		Status:        model.BookingConfirmed,
		Position:      3,
		EstimatedWait: "15 min",
		Image:         "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=400&h=300&fit=crop",
	}
	history := []model.PastBooking{
		{ID: 2, ShopName: "Style Studio Pro", Date: "Feb 15, 2026", Service: "Haircut", Price: "₹250", Rating: 5},
		{ID: 3, ShopName: "Urban Trim Lounge", Date: "Jan 28, 2026", Service: "Beard Trim", Price: "₹150", Rating: 4},
	}
	favorites := []model.Favorite{
		{ID: 1, Name: "Royal Cuts & Shaves", Address: "MG Road, Bangalore", Rating: 4.8,
			Image: "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=400&h=300&fit=crop"},
		{ID: 2, Name: "The Barber Society", Address: "Whitefield, Bangalore", Rating: 4.9,
			Image: "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?w=400&h=300&fit=crop"},
	}
	return active, history, favorites
}
