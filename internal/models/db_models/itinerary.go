package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Notes  string

	Items []ItineraryItem `gorm:"constraint:OnDelete:CASCADE"`
}

// ItineraryItem schedules one stop. Day is nil for unscheduled items;
// SortOrder values within one day are a contiguous zero-based sequence,
// maintained by the repository on every mutation.
type ItineraryItem struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	StopID      uuid.UUID `gorm:"type:uuid;index"`
	Day         *int
	SortOrder   int `gorm:"column:sort_order"`
	StartTime   *time.Time
	EndTime     *time.Time
	Notes       string

	Stop Stop `gorm:"foreignKey:StopID"`
}
