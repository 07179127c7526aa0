package model

import "github.com/trimtime/queue-service/internal/geo"

// ShopStatus enumerates whether a shop is currently taking customers.
type ShopStatus string

const (
	StatusOpen   ShopStatus = "open"
	StatusClosed ShopStatus = "closed"
)

// Shop represents one barber shop in the discovery catalog.  The catalog is
// seeded at startup and lives in memory for the lifetime of the process.
//
// Fields:
//  ID          – catalog identifier.
//  Name        – display name of the shop.
//  Image       – banner image URL.
//  Rating      – average rating, 0–5 with one decimal.
//  Reviews     – number of reviews behind the rating.
//  DistanceKm  – distance from the user in kilometres.  Derived: recomputed
//                from Seed whenever a user location is known, never hand-edited.
//  Seed        – the shop's fixed coordinates.  Ground truth for all distance
//                recomputation; immutable after seeding.
//  Address     – street address shown on cards and matched by text search.
//  Description – one-line marketing blurb.
//  WaitTime    – free-text wait estimate, e.g. "15 min".
//  Status      – open or closed.
//  Price       – typical price for a cut, whole currency units.
type Shop struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	DistanceKm  float64        `json:"distance"`
	Seed        geo.Coordinate `json:"-"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	WaitTime    string         `json:"wait_time"`
	Status      ShopStatus     `json:"status"`
	Price       int            `json:"price"`
}

// PriceBucket groups shops into the three coarse price tiers used by the
// discovery filters.  Bucket boundaries overlap on purpose: a 200 shop is
// both budget and mid, a 300 shop both mid and premium.
type PriceBucket string

const (
	PriceAll     PriceBucket = "all"
	PriceBudget  PriceBucket = "budget"  // price <= 200
	PriceMid     PriceBucket = "mid"     // 200 <= price <= 300
	PricePremium PriceBucket = "premium" // price >= 300
)

// FilterCriteria is the set of independent, neutral-by-default predicates a
// discovery query composes.  Matching is a pure conjunction: a shop is kept
// only when every populated predicate holds.
type FilterCriteria struct {
	Query         string      // case-insensitive substring of name or address; empty matches all
	MinRating     float64     // 0 disables the floor
	MaxDistanceKm float64     // inclusive ceiling on DistanceKm
	Status        string      // "all", "open" or "closed"
	Price         PriceBucket // price tier, PriceAll disables
}
