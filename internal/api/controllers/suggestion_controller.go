package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{suggestionService: suggestionService}
}

func (s *SuggestionController) SuggestItinerary(c *gin.Context) {
	var req request_models.SuggestItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination and days (1-30) are required")
		return
	}

	text, err := s.suggestionService.SuggestItinerary(c.Request.Context(), req.Destination, req.Days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"suggestion": text}, "Suggestion generated successfully")
}
