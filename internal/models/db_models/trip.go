package db_models

import "github.com/google/uuid"

type Trip struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	StartDate   int64  // epoch seconds
	EndDate     *int64 // epoch seconds, nil when open-ended
	Currency    string
	IsPublic    bool

	Itinerary *Itinerary `gorm:"constraint:OnDelete:CASCADE"`
}
