package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{stopService: stopService}
}

func (s *StopController) GetStopByID(c *gin.Context) {
	stopID := c.Param("stopId")
	if stopID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Stop ID is required")
		return
	}

	stop, err := s.stopService.GetStopByID(c.Request.Context(), stopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop fetched successfully")
}

// ListStops serves both plain listing and keyword search via the optional
// keyword query parameter.
func (s *StopController) ListStops(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	stops, err := s.stopService.SearchStops(c.Request.Context(), c.Query("keyword"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stops, "Stops fetched successfully")
}

func (s *StopController) SemanticSearch(c *gin.Context) {
	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	stops, err := s.stopService.SemanticSearch(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stops, "Stops fetched successfully")
}

func (s *StopController) CreateStop(c *gin.Context) {
	var req request_models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	stop, err := s.stopService.CreateStop(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop created successfully")
}

func (s *StopController) UpdateStop(c *gin.Context) {
	var req request_models.UpdateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid stop payload")
		return
	}

	stop, err := s.stopService.UpdateStop(c.Request.Context(), c.Param("stopId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop updated successfully")
}

func (s *StopController) DeleteStop(c *gin.Context) {
	if err := s.stopService.DeleteStop(c.Request.Context(), c.Param("stopId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop deleted successfully")
}
