package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/trimtime/queue-service/internal/geo"
	"github.com/trimtime/queue-service/internal/model"
)

// ShopRepo holds the discovery catalog.  The catalog order is significant:
// filtering preserves it, and a successful location update replaces it with
// the same records sorted ascending by recomputed distance.
type ShopRepo struct {
	mu    sync.RWMutex
	shops []model.Shop
	loc   *geo.Coordinate
}

// NewShopRepo seeds a catalog.  The seed slice is copied; callers keep no
// handle into the repo's state.
func NewShopRepo(seed []model.Shop) *ShopRepo {
	shops := make([]model.Shop, len(seed))
	copy(shops, seed)
	return &ShopRepo{shops: shops}
}

// All returns a snapshot of the catalog in its current order.
func (r *ShopRepo) All() []model.Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// GetByID returns a single shop or ErrNotFound.
func (r *ShopRepo) GetByID(id uint64) (model.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shops {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Shop{}, ErrNotFound
}

// Search applies the filter criteria as a pure conjunction over the current
// catalog, preserving relative order.  An empty result is a valid result,
// not an error.
func (r *ShopRepo) Search(f model.FilterCriteria) []model.Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		if Matches(s, f) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether a single shop passes every populated predicate.
func Matches(s model.Shop, f model.FilterCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Address), q) {
			return false
		}
	}
	if f.MinRating > 0 && s.Rating < f.MinRating {
		return false
	}
	if f.MaxDistanceKm > 0 && s.DistanceKm > f.MaxDistanceKm {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(s.Status) != f.Status {
		return false
	}
	switch f.Price {
	case model.PriceBudget:
		if s.Price > 200 {
			return false
		}
	case model.PriceMid:
		if s.Price < 200 || s.Price > 300 {
			return false
		}
	case model.PricePremium:
		if s.Price < 300 {
			return false
		}
	}
	return true
}

// SetLocation stores the user's position, recomputes every record's distance
// from its immutable seed coordinates and re-sorts the catalog ascending by
// distance.  The whole catalog is replaced in one step; there is no partial
// mutation path.  The re-sorted snapshot is returned.
func (r *ShopRepo) SetLocation(c geo.Coordinate) []model.Shop {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loc = &c
	for i := range r.shops {
		r.shops[i].DistanceKm = geo.Distance(c, r.shops[i].Seed)
	}
	sort.SliceStable(r.shops, func(i, j int) bool {
		return r.shops[i].DistanceKm < r.shops[j].DistanceKm
	})
	return r.snapshot()
}

// Location returns the last stored user position, if any.
func (r *ShopRepo) Location() (geo.Coordinate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.loc == nil {
		return geo.Coordinate{}, false
	}
	return *r.loc, true
}

func (r *ShopRepo) snapshot() []model.Shop {
	out := make([]model.Shop, len(r.shops))
	copy(out, r.shops)
	return out
}

// SeedShops is the demo catalog: six Bangalore barber shops.  Distances are
// the pre-location defaults and get replaced on the first location update.
func SeedShops() []model.Shop {
	return []model.Shop{
		{
			ID: 1, Name: "Royal Cuts & Shaves",
			Image:      "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=400&h=300&fit=crop",
			Rating:     4.8, Reviews: 245, DistanceKm: 1.2,
			Seed:       geo.Coordinate{Lat: 12.9750, Lng: 77.6000},
			Address:    "MG Road, Bangalore",
			Description: "Premium grooming experience with expert barbers",
			WaitTime:   "15 min", Status: model.StatusOpen, Price: 300,
		},
		{
			ID: 2, Name: "Style Studio Pro",
			Image:      "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?w=400&h=300&fit=crop",
			Rating:     4.9, Reviews: 189, DistanceKm: 0.8,
			Seed:       geo.Coordinate{Lat: 12.9800, Lng: 77.6400},
			Address:    "Indiranagar, Bangalore",
			Description: "Modern cuts, traditional service",
			WaitTime:   "10 min", Status: model.StatusOpen, Price: 250,
		},
		{
			ID: 3, Name: "Gentleman's Corner",
			Image:      "https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=400&h=300&fit=crop",
			Rating:     4.7, Reviews: 312, DistanceKm: 2.0,
			Seed:       geo.Coordinate{Lat: 12.9350, Lng: 77.6150},
			Address:    "Koramangala, Bangalore",
			Description: "Classic barber shop with modern twist",
			WaitTime:   "20 min", Status: model.StatusOpen, Price: 200,
		},
		{
			ID: 4, Name: "Urban Trim Lounge",
			Image:      "https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=400&h=300&fit=crop",
			Rating:     4.6, Reviews: 156, DistanceKm: 1.5,
			Seed:       geo.Coordinate{Lat: 12.9100, Lng: 77.6400},
			Address:    "HSR Layout, Bangalore",
			Description: "Quick cuts, great vibes",
			WaitTime:   "25 min", Status: model.StatusClosed, Price: 180,
		},
		{
			ID: 5, Name: "The Barber Society",
			Image:      "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?w=400&h=300&fit=crop",
			Rating:     4.9, Reviews: 428, DistanceKm: 0.5,
			Seed:       geo.Coordinate{Lat: 12.9700, Lng: 77.7500},
			Address:    "Whitefield, Bangalore",
			Description: "Award-winning barbers, luxury service",
			WaitTime:   "12 min", Status: model.StatusOpen, Price: 400,
		},
		{
			ID: 6, Name: "Fresh Fade Studio",
			Image:      "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=400&h=300&fit=crop",
			Rating:     4.5, Reviews: 203, DistanceKm: 1.8,
			Seed:       geo.Coordinate{Lat: 12.9050, Lng: 77.5900},
			Address:    "JP Nagar, Bangalore",
			Description: "Specializing in fades and modern styles",
			WaitTime:   "18 min", Status: model.StatusOpen, Price: 220,
		},
	}
}
