package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GetItinerary godoc
// @Summary Get a trip's itinerary grouped by day
// @Description Fetch the day-grouped itinerary; an optional keyword filters items by stop name or city
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param keyword query string false "Case-insensitive keyword filter"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	itin, err := i.itineraryService.GetItinerary(c.Request.Context(), caller, tripID, c.Query("keyword"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itin, "Itinerary fetched successfully")
}

// AddStop godoc
// @Summary Add a stop to a trip's itinerary
// @Description Insert a stop on a day; omitting order appends, a taken order shifts later items up by one
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddStopToItineraryRequest true "Stop ID, day, optional order and times"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary/items [post]
func (i *ItineraryController) AddStop(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.AddStopToItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "stop_id is required")
		return
	}

	itin, err := i.itineraryService.AddStop(c.Request.Context(), caller, c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itin, "Stop added to itinerary successfully")
}

// RemoveStop removes an item; the remaining items of its day are renumbered
// contiguously from zero.
func (i *ItineraryController) RemoveStop(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	itin, err := i.itineraryService.RemoveStop(c.Request.Context(), caller, c.Param("tripId"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itin, "Stop removed from itinerary successfully")
}

func (i *ItineraryController) UpdateItem(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdateItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item payload")
		return
	}

	itin, err := i.itineraryService.UpdateItem(c.Request.Context(), caller, c.Param("tripId"), c.Param("itemId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itin, "Itinerary item updated successfully")
}
