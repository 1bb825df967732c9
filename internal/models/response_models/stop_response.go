package response_models

type StopResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Address          string  `json:"address,omitempty"`
	City             string  `json:"city,omitempty"`
	Category         string  `json:"category,omitempty"`
	EstimatedMinutes int     `json:"estimated_minutes,omitempty"`
	EstimatedCost    float64 `json:"estimated_cost,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	Similarity       float64 `json:"similarity,omitempty"` // semantic search only
}
