package request_models

type AddStopToItineraryRequest struct {
	StopID string `json:"stop_id" binding:"required,uuid4"`
	// Day is omitted for unscheduled items; must be >= 0 when present.
	Day *int `json:"day"`
	// Order is omitted to append at the end of the day.
	Order     *int   `json:"order"`
	StartTime string `json:"start_time"` // RFC3339
	EndTime   string `json:"end_time"`   // RFC3339
	Notes     string `json:"notes"`
}

type UpdateItineraryItemRequest struct {
	StartTime *string `json:"start_time"` // RFC3339
	EndTime   *string `json:"end_time"`   // RFC3339
	Notes     *string `json:"notes"`
}
