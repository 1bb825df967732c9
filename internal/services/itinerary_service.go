package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetItinerary(ctx context.Context, callerID uuid.UUID, tripID string, keyword string) (*response_models.ItineraryDetailResponse, error)
	AddStop(ctx context.Context, callerID uuid.UUID, tripID string, req request_models.AddStopToItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	RemoveStop(ctx context.Context, callerID uuid.UUID, tripID string, itemID string) (*response_models.ItineraryDetailResponse, error)
	UpdateItem(ctx context.Context, callerID uuid.UUID, tripID string, itemID string, req request_models.UpdateItineraryItemRequest) (*response_models.ItineraryDetailResponse, error)
}

type ItineraryService struct {
	tripRepo repositories.TripRepository
	stopRepo repositories.StopRepository
	itinRepo repositories.ItineraryRepository
}

func NewItineraryService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	itinRepo repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo: tripRepo,
		stopRepo: stopRepo,
		itinRepo: itinRepo,
	}
}

func (s *ItineraryService) GetItinerary(
	ctx context.Context, callerID uuid.UUID, tripID string, keyword string,
) (*response_models.ItineraryDetailResponse, error) {
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.OwnerID != callerID {
		return nil, utils.ErrForbidden
	}

	itin, err := s.itinRepo.GetByTripID(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itin == nil {
		return nil, utils.ErrItineraryNotFound
	}

	items := dbm.FilterItemsByKeyword(itin.Items, keyword)
	return dbm.BuildItineraryDetailResponse(itin, items), nil
}

func (s *ItineraryService) AddStop(
	ctx context.Context, callerID uuid.UUID, tripID string, req request_models.AddStopToItineraryRequest,
) (*response_models.ItineraryDetailResponse, error) {
	trip, err := s.ownedTrip(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}
	if req.Day != nil && *req.Day < 0 {
		return nil, utils.ErrInvalidState
	}
	if req.Order != nil && *req.Order < 0 {
		return nil, utils.ErrInvalidState
	}

	stopUUID, err := uuid.Parse(req.StopID)
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

	startTime, err := parseTimePtr(req.StartTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endTime, err := parseTimePtr(req.EndTime)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itin, err := s.itineraryOf(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	item := dbm.ItineraryItem{
		StopID:    stopUUID,
		Day:       req.Day,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     req.Notes,
	}
	if _, err := s.itinRepo.AddItem(ctx, itin.ID, item, req.Order); err != nil {
		return nil, mapItineraryRepoErr(err)
	}

	return s.detail(ctx, trip.ID)
}

func (s *ItineraryService) RemoveStop(
	ctx context.Context, callerID uuid.UUID, tripID string, itemID string,
) (*response_models.ItineraryDetailResponse, error) {
	trip, err := s.ownedTrip(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itin, err := s.itineraryOf(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	if err := s.itinRepo.RemoveItem(ctx, itin.ID, itemUUID); err != nil {
		return nil, mapItineraryRepoErr(err)
	}

	return s.detail(ctx, trip.ID)
}

func (s *ItineraryService) UpdateItem(
	ctx context.Context, callerID uuid.UUID, tripID string, itemID string, req request_models.UpdateItineraryItemRequest,
) (*response_models.ItineraryDetailResponse, error) {
	trip, err := s.ownedTrip(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var startTime, endTime *time.Time
	if req.StartTime != nil {
		if startTime, err = parseTimePtr(*req.StartTime); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}
	if req.EndTime != nil {
		if endTime, err = parseTimePtr(*req.EndTime); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}

	itin, err := s.itineraryOf(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	if err := s.itinRepo.UpdateItem(ctx, itin.ID, itemUUID, startTime, endTime, req.Notes); err != nil {
		return nil, mapItineraryRepoErr(err)
	}

	return s.detail(ctx, trip.ID)
}

// ownedTrip loads the trip and enforces that the caller owns it. Mutations
// are owner-only regardless of the trip's public flag.
func (s *ItineraryService) ownedTrip(ctx context.Context, callerID uuid.UUID, tripID string) (*dbm.Trip, error) {
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetByID(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.OwnerID != callerID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (s *ItineraryService) itineraryOf(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error) {
	itin, err := s.itinRepo.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itin == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itin, nil
}

func (s *ItineraryService) detail(ctx context.Context, tripID uuid.UUID) (*response_models.ItineraryDetailResponse, error) {
	itin, err := s.itineraryOf(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return dbm.BuildItineraryDetailResponse(itin, itin.Items), nil
}

func mapItineraryRepoErr(err error) error {
	switch {
	case errors.Is(err, utils.ErrItineraryNotFound), errors.Is(err, utils.ErrItemNotFound):
		return err
	default:
		return utils.ErrDatabaseError
	}
}

func parseTimePtr(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
