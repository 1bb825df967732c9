package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, callerID uuid.UUID, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, callerID uuid.UUID, tripID string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, callerID uuid.UUID, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) CreateTrip(
	ctx context.Context, ownerID uuid.UUID, req request_models.CreateTripRequest,
) (*response_models.TripResponse, error) {
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var endUnix *int64
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		if end.Before(start) {
			return nil, utils.ErrInvalidInput
		}
		v := end.Unix()
		endUnix = &v
	}

	trip := &dbm.Trip{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start.Unix(),
		EndDate:     endUnix,
		Currency:    req.Currency,
		IsPublic:    req.IsPublic,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildTripResponse(trip), nil
}

func (s *TripService) GetTrip(
	ctx context.Context, callerID uuid.UUID, tripID string,
) (*response_models.TripResponse, error) {
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

	return buildTripResponse(trip), nil
}

func (s *TripService) ListTrips(
	ctx context.Context, ownerID uuid.UUID, page, pageSize int,
) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) UpdateTrip(
	ctx context.Context, callerID uuid.UUID, tripID string, req request_models.UpdateTripRequest,
) (*response_models.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.StartDate != nil {
		start, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start.Unix()
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			trip.EndDate = nil
		} else {
			end, err := time.Parse(time.RFC3339, *req.EndDate)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			v := end.Unix()
			trip.EndDate = &v
		}
	}
	if req.Currency != nil {
		trip.Currency = *req.Currency
	}
	if req.IsPublic != nil {
		trip.IsPublic = *req.IsPublic
	}
	if trip.EndDate != nil && *trip.EndDate < trip.StartDate {
		return nil, utils.ErrInvalidInput
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, callerID uuid.UUID, tripID string) error {
	trip, err := s.ownedTrip(ctx, callerID, tripID)
	if err != nil {
		return err
	}
	if err := s.tripRepo.Delete(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) ownedTrip(ctx context.Context, callerID uuid.UUID, tripID string) (*dbm.Trip, error) {
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

func buildTripResponse(trip *dbm.Trip) *response_models.TripResponse {
	out := &response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Description: trip.Description,
		StartDate:   utils.FormatRFC3339(utils.FromUnixSeconds(trip.StartDate)),
		Currency:    trip.Currency,
		IsPublic:    trip.IsPublic,
		OwnerID:     trip.OwnerID.String(),
	}
	if trip.EndDate != nil {
		out.EndDate = utils.FormatRFC3339(utils.FromUnixSeconds(*trip.EndDate))
	}
	return out
}
