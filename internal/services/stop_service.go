package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

// Embedder turns free text into a vector for semantic search.
// ai.Client satisfies it.
type Embedder interface {
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
}

type StopServiceInterface interface {
	GetStopByID(ctx context.Context, stopID string) (*response_models.StopResponse, error)
	ListStops(ctx context.Context, page, pageSize int) ([]response_models.StopResponse, error)
	SearchStops(ctx context.Context, keyword string, page, pageSize int) ([]response_models.StopResponse, error)
	SemanticSearch(ctx context.Context, query string) ([]response_models.StopResponse, error)
	CreateStop(ctx context.Context, req request_models.CreateStopRequest) (*response_models.StopResponse, error)
	UpdateStop(ctx context.Context, stopID string, req request_models.UpdateStopRequest) (*response_models.StopResponse, error)
	DeleteStop(ctx context.Context, stopID string) error
}

type StopService struct {
	stopRepo      repositories.StopRepository
	embeddingRepo repositories.StopEmbeddingRepository
	embedder      Embedder
}

func NewStopService(
	stopRepo repositories.StopRepository,
	embeddingRepo repositories.StopEmbeddingRepository,
	embedder Embedder,
) StopServiceInterface {
	return &StopService{
		stopRepo:      stopRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
	}
}

func (s *StopService) GetStopByID(ctx context.Context, stopID string) (*response_models.StopResponse, error) {
	stopUUID, err := uuid.Parse(stopID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.GetByID(ctx, stopUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}
	return buildStopResponse(stop, 0), nil
}

func (s *StopService) ListStops(ctx context.Context, page, pageSize int) ([]response_models.StopResponse, error) {
	stops, err := s.stopRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildStopResponses(stops), nil
}

// SearchStops matches the keyword against stop names and cities,
// case-insensitively. An empty keyword degrades to a plain listing.
func (s *StopService) SearchStops(ctx context.Context, keyword string, page, pageSize int) ([]response_models.StopResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.ListStops(ctx, page, pageSize)
	}

	stops, err := s.stopRepo.SearchByKeyword(ctx, keyword, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildStopResponses(stops), nil
}

func (s *StopService) SemanticSearch(ctx context.Context, query string) ([]response_models.StopResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	matches, err := s.embeddingRepo.SearchByVector(ctx, vector, 15)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.StopResponse, 0, len(matches))
	for _, m := range matches {
		stopUUID, err := uuid.Parse(m.StopID)
		if err != nil {
			continue
		}
		stop, err := s.stopRepo.GetByID(ctx, stopUUID)
		if err != nil || stop == nil {
			continue
		}
		out = append(out, *buildStopResponse(stop, m.Similarity))
	}
	return out, nil
}

func (s *StopService) CreateStop(ctx context.Context, req request_models.CreateStopRequest) (*response_models.StopResponse, error) {
	stop := &dbm.Stop{
		Name:             req.Name,
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Address:          req.Address,
		City:             req.City,
		Category:         req.Category,
		EstimatedMinutes: req.EstimatedMinutes,
		EstimatedCost:    req.EstimatedCost,
		Notes:            req.Notes,
	}
	if err := s.stopRepo.Create(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, stop)
	return buildStopResponse(stop, 0), nil
}

func (s *StopService) UpdateStop(ctx context.Context, stopID string, req request_models.UpdateStopRequest) (*response_models.StopResponse, error) {
	stopUUID, err := uuid.Parse(stopID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.GetByID(ctx, stopUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}

	if req.Name != nil {
		stop.Name = *req.Name
	}
	if req.Description != nil {
		stop.Description = *req.Description
	}
	if req.Latitude != nil {
		stop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		stop.Longitude = *req.Longitude
	}
	if req.Address != nil {
		stop.Address = *req.Address
	}
	if req.City != nil {
		stop.City = *req.City
	}
	if req.Category != nil {
		stop.Category = *req.Category
	}
	if req.EstimatedMinutes != nil {
		stop.EstimatedMinutes = *req.EstimatedMinutes
	}
	if req.EstimatedCost != nil {
		stop.EstimatedCost = *req.EstimatedCost
	}
	if req.Notes != nil {
		stop.Notes = *req.Notes
	}

	if err := s.stopRepo.Update(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, stop)
	return buildStopResponse(stop, 0), nil
}

func (s *StopService) DeleteStop(ctx context.Context, stopID string) error {
	stopUUID, err := uuid.Parse(stopID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.GetByID(ctx, stopUUID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if stop == nil {
		return utils.ErrStopNotFound
	}

	if err := s.stopRepo.Delete(ctx, stopUUID); err != nil {
		return utils.ErrDatabaseError
	}
	if err := s.embeddingRepo.Delete(ctx, stopID); err != nil {
		log.Warn().Err(err).Str("stop_id", stopID).Msg("failed to delete stop embedding")
	}
	return nil
}

// refreshEmbedding recomputes the stop's search vector. Best-effort: a
// missing API key or upstream failure must not fail the stop mutation.
func (s *StopService) refreshEmbedding(ctx context.Context, stop *dbm.Stop) {
	text := strings.TrimSpace(stop.Name + ". " + stop.Description + ". " + stop.City)
	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.Warn().Err(err).Str("stop_id", stop.ID.String()).Msg("skipping stop embedding")
		return
	}

	err = s.embeddingRepo.Upsert(ctx, dbm.StopEmbedding{
		StopID:      stop.ID.String(),
		Name:        stop.Name,
		Description: stop.Description,
		City:        stop.City,
		Category:    stop.Category,
		Embedding:   vector,
	})
	if err != nil {
		log.Warn().Err(err).Str("stop_id", stop.ID.String()).Msg("failed to upsert stop embedding")
	}
}

func buildStopResponse(stop *dbm.Stop, similarity float64) *response_models.StopResponse {
	return &response_models.StopResponse{
		ID:               stop.ID.String(),
		Name:             stop.Name,
		Description:      stop.Description,
		Latitude:         stop.Latitude,
		Longitude:        stop.Longitude,
		Address:          stop.Address,
		City:             stop.City,
		Category:         stop.Category,
		EstimatedMinutes: stop.EstimatedMinutes,
		EstimatedCost:    stop.EstimatedCost,
		Notes:            stop.Notes,
		Similarity:       similarity,
	}
}

func buildStopResponses(stops []dbm.Stop) []response_models.StopResponse {
	out := make([]response_models.StopResponse, 0, len(stops))
	for i := range stops {
		out = append(out, *buildStopResponse(&stops[i], 0))
	}
	return out
}
