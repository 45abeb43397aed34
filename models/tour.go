package models

import "time"

// TourStatus enumerates the lifecycle states of a tour. Status is owned by
// the administrative domain and never derived from booking volume.
type TourStatus string

const (
	TourStatusAvailable  TourStatus = "available"
	TourStatusSoldOut    TourStatus = "sold-out"
	TourStatusComingSoon TourStatus = "coming-soon"
)

// Tour represents a bookable travel product.
type Tour struct {
	ID          string     `firestore:"-" json:"id"`                                   // Document ID assigned by the store
	Name        string     `firestore:"name" json:"name"`                              // Display name
	Description string     `firestore:"description" json:"description"`                // Marketing description
	Destination string     `firestore:"destination,omitempty" json:"destination"`      // Primary destination
	Location    string     `firestore:"location,omitempty" json:"location,omitempty"`  // Secondary location field
	Category    string     `firestore:"category,omitempty" json:"category,omitempty"`  // e.g. "island", "hiking"
	Type        string     `firestore:"type,omitempty" json:"type,omitempty"`          // Secondary category field
	Price       string     `firestore:"price" json:"price"`                            // Display price, currency-agnostic (e.g. "RM 1,200")
	Status      TourStatus `firestore:"status" json:"status"`                          // available | sold-out | coming-soon
	Images      []string   `firestore:"images,omitempty" json:"images,omitempty"`      // Ordered image references
	CreatedAt   time.Time  `firestore:"createdAt,omitempty" json:"createdAt"`          // Timestamp set on creation
}

// PriceRange bounds a filter on parsed tour prices. Nil bounds are open.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// FilterCriteria is the predicate applied to the catalog snapshot.
// Empty slices match everything; a nil criteria resets to the full set.
type FilterCriteria struct {
	Destinations []string    `json:"destinations"`
	Categories   []string    `json:"categories"`
	PriceRange   *PriceRange `json:"priceRange,omitempty"`
}
