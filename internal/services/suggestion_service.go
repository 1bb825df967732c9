package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"wander/pkg/utils"
)

// Suggester produces a plain-text itinerary outline for a destination.
// ai.Client satisfies it.
type Suggester interface {
	Suggest(ctx context.Context, destination string, days int) (string, error)
}

type SuggestionServiceInterface interface {
	SuggestItinerary(ctx context.Context, destination string, days int) (string, error)
}

type SuggestionService struct {
	suggester Suggester
}

func NewSuggestionService(suggester Suggester) SuggestionServiceInterface {
	return &SuggestionService{suggester: suggester}
}

func (s *SuggestionService) SuggestItinerary(ctx context.Context, destination string, days int) (string, error) {
	if destination == "" || days < 1 {
		return "", utils.ErrInvalidInput
	}

	text, err := s.suggester.Suggest(ctx, destination, days)
	if err != nil {
		log.Warn().Err(err).Str("destination", destination).Msg("itinerary suggestion failed")
		return "", utils.ErrDatabaseError
	}
	return text, nil
}
