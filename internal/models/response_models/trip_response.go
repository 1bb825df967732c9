package response_models

type TripResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`         // RFC3339, "" when unset
	EndDate     string `json:"end_date,omitempty"` // RFC3339
	Currency    string `json:"currency,omitempty"`
	IsPublic    bool   `json:"is_public"`
	OwnerID     string `json:"owner_id"`
}
