package db_models

type Stop struct {
	BaseModel
	Name             string
	Description      string
	Latitude         float64
	Longitude        float64
	Address          string
	City             string
	Category         string
	EstimatedMinutes int
	EstimatedCost    float64
	Notes            string

	Items []ItineraryItem `gorm:"foreignKey:StopID"`
}
