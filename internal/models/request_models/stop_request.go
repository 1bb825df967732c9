package request_models

type CreateStopRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	Category         string  `json:"category"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	EstimatedCost    float64 `json:"estimated_cost"`
	Notes            string  `json:"notes"`
}

type UpdateStopRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Address          *string  `json:"address"`
	City             *string  `json:"city"`
	Category         *string  `json:"category"`
	EstimatedMinutes *int     `json:"estimated_minutes"`
	EstimatedCost    *float64 `json:"estimated_cost"`
	Notes            *string  `json:"notes"`
}

type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type SuggestItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
}
