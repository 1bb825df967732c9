package request_models

type CreateTripRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// RFC3339 (e.g. "2026-10-10T09:00:00Z")
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
	Currency  string `json:"currency"`
	IsPublic  bool   `json:"is_public"`
}

type UpdateTripRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Currency    *string `json:"currency"`
	IsPublic    *bool   `json:"is_public"`
}
