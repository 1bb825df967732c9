package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip owned by the authenticated user; an empty itinerary is created alongside it
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and start_date are required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), owner, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

func (t *TripController) GetTrip(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), caller, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// ListTrips returns the caller's trips, paginated.
func (t *TripController) ListTrips(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	tripID := c.Param("tripId")
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), caller, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), caller, c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
