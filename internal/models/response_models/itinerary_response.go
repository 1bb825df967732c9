package response_models

import "github.com/google/uuid"

// Top-level itinerary payload returned to clients, grouped by day.
type ItineraryDetailResponse struct {
	ID         uuid.UUID `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Notes      string    `json:"notes,omitempty"`
	TotalItems int       `json:"total_items"`

	Days []ItineraryDayResponse `json:"days"`
}

// One day bucket. Day is null for the trailing unscheduled bucket.
type ItineraryDayResponse struct {
	Day   *int                    `json:"day"`
	Items []ItineraryItemResponse `json:"items"`
}

type ItineraryItemResponse struct {
	ID        uuid.UUID   `json:"id"`
	Order     int         `json:"order"`
	StartTime string      `json:"start_time,omitempty"` // RFC3339
	EndTime   string      `json:"end_time,omitempty"`   // RFC3339
	Notes     string      `json:"notes,omitempty"`
	Stop      StopSummary `json:"stop"`
}

// Minimal stop info that's useful on the itinerary view.
type StopSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Address   string    `json:"address,omitempty"`
	Latitude  float64   `json:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty"`
	Category  string    `json:"category,omitempty"`
}
