package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/utils"
)

// ---- mock repos ------------------------------------------------------------

type mockTripRepo struct {
	create      func(ctx context.Context, trip *dbm.Trip) error
	getByID     func(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	listByOwner func(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]dbm.Trip, error)
	update      func(ctx context.Context, trip *dbm.Trip) error
	delete      func(ctx context.Context, tripID uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip *dbm.Trip) error {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	return m.getByID(ctx, tripID)
}
func (m *mockTripRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]dbm.Trip, error) {
	return m.listByOwner(ctx, ownerID, page, pageSize)
}
func (m *mockTripRepo) Update(ctx context.Context, trip *dbm.Trip) error {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	return m.delete(ctx, tripID)
}

var _ repositories.TripRepository = (*mockTripRepo)(nil)

type mockStopRepo struct {
	create          func(ctx context.Context, stop *dbm.Stop) error
	getByID         func(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error)
	list            func(ctx context.Context, page, pageSize int) ([]dbm.Stop, error)
	searchByKeyword func(ctx context.Context, keyword string, page, pageSize int) ([]dbm.Stop, error)
	update          func(ctx context.Context, stop *dbm.Stop) error
	delete          func(ctx context.Context, stopID uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop *dbm.Stop) error {
	if m.create == nil {
		return nil
	}
	return m.create(ctx, stop)
}
func (m *mockStopRepo) GetByID(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error) {
	return m.getByID(ctx, stopID)
}
func (m *mockStopRepo) List(ctx context.Context, page, pageSize int) ([]dbm.Stop, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx, page, pageSize)
}
func (m *mockStopRepo) SearchByKeyword(ctx context.Context, keyword string, page, pageSize int) ([]dbm.Stop, error) {
	if m.searchByKeyword == nil {
		return nil, nil
	}
	return m.searchByKeyword(ctx, keyword, page, pageSize)
}
func (m *mockStopRepo) Update(ctx context.Context, stop *dbm.Stop) error {
	if m.update == nil {
		return nil
	}
	return m.update(ctx, stop)
}
func (m *mockStopRepo) Delete(ctx context.Context, stopID uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, stopID)
}

var _ repositories.StopRepository = (*mockStopRepo)(nil)

type mockItineraryRepo struct {
	getByTripID func(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error)
	addItem     func(ctx context.Context, itineraryID uuid.UUID, item dbm.ItineraryItem, desiredOrder *int) (*dbm.ItineraryItem, error)
	removeItem  func(ctx context.Context, itineraryID, itemID uuid.UUID) error
	updateItem  func(ctx context.Context, itineraryID, itemID uuid.UUID, startTime, endTime *time.Time, notes *string) error
}

func (m *mockItineraryRepo) CreateForTrip(_ context.Context, _ *gorm.DB, _ uuid.UUID) error {
	return nil
}
func (m *mockItineraryRepo) GetByTripID(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error) {
	return m.getByTripID(ctx, tripID)
}
func (m *mockItineraryRepo) AddItem(ctx context.Context, itineraryID uuid.UUID, item dbm.ItineraryItem, desiredOrder *int) (*dbm.ItineraryItem, error) {
	return m.addItem(ctx, itineraryID, item, desiredOrder)
}
func (m *mockItineraryRepo) RemoveItem(ctx context.Context, itineraryID, itemID uuid.UUID) error {
	return m.removeItem(ctx, itineraryID, itemID)
}
func (m *mockItineraryRepo) UpdateItem(ctx context.Context, itineraryID, itemID uuid.UUID, startTime, endTime *time.Time, notes *string) error {
	return m.updateItem(ctx, itineraryID, itemID, startTime, endTime, notes)
}

var _ repositories.ItineraryRepository = (*mockItineraryRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func ownedTrip(owner uuid.UUID) *dbm.Trip {
	trip := &dbm.Trip{OwnerID: owner, Title: "Paris long weekend"}
	trip.ID = uuid.New()
	return trip
}

func emptyItinerary(tripID uuid.UUID) *dbm.Itinerary {
	itin := &dbm.Itinerary{TripID: tripID}
	itin.ID = uuid.New()
	return itin
}

func intp(v int) *int { return &v }

// ---- AddStop ---------------------------------------------------------------

func TestItineraryService_AddStop_OK(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	itin := emptyItinerary(trip.ID)
	stopID := uuid.New()

	var gotDesired *int
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{getByID: func(_ context.Context, id uuid.UUID) (*dbm.Stop, error) {
			return &dbm.Stop{Name: "Louvre"}, nil
		}},
		&mockItineraryRepo{
			getByTripID: func(_ context.Context, _ uuid.UUID) (*dbm.Itinerary, error) {
				return itin, nil
			},
			addItem: func(_ context.Context, itineraryID uuid.UUID, item dbm.ItineraryItem, desiredOrder *int) (*dbm.ItineraryItem, error) {
				assert.Equal(t, itin.ID, itineraryID)
				assert.Equal(t, stopID, item.StopID)
				gotDesired = desiredOrder
				return &item, nil
			},
		},
	)

	resp, err := svc.AddStop(context.Background(), owner, trip.ID.String(), request_models.AddStopToItineraryRequest{
		StopID: stopID.String(),
		Day:    intp(1),
		Order:  intp(0),
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, gotDesired)
	assert.Equal(t, 0, *gotDesired)
}

func TestItineraryService_AddStop_TripNotFound(t *testing.T) {
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return nil, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{},
	)

	_, err := svc.AddStop(context.Background(), uuid.New(), uuid.NewString(), request_models.AddStopToItineraryRequest{
		StopID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestItineraryService_AddStop_NotOwner(t *testing.T) {
	trip := ownedTrip(uuid.New())
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{},
	)

	_, err := svc.AddStop(context.Background(), uuid.New(), trip.ID.String(), request_models.AddStopToItineraryRequest{
		StopID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestItineraryService_AddStop_NegativeDay(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{},
	)

	_, err := svc.AddStop(context.Background(), owner, trip.ID.String(), request_models.AddStopToItineraryRequest{
		StopID: uuid.NewString(),
		Day:    intp(-1),
	})

	assert.ErrorIs(t, err, utils.ErrInvalidState)
}

func TestItineraryService_AddStop_StopNotFound(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Stop, error) {
			return nil, nil
		}},
		&mockItineraryRepo{},
	)

	_, err := svc.AddStop(context.Background(), owner, trip.ID.String(), request_models.AddStopToItineraryRequest{
		StopID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, utils.ErrStopNotFound)
}

// ---- RemoveStop ------------------------------------------------------------

func TestItineraryService_RemoveStop_OK(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	itin := emptyItinerary(trip.ID)
	itemID := uuid.New()

	removed := false
	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{
			getByTripID: func(_ context.Context, _ uuid.UUID) (*dbm.Itinerary, error) {
				return itin, nil
			},
			removeItem: func(_ context.Context, itineraryID, gotItemID uuid.UUID) error {
				assert.Equal(t, itin.ID, itineraryID)
				assert.Equal(t, itemID, gotItemID)
				removed = true
				return nil
			},
		},
	)

	_, err := svc.RemoveStop(context.Background(), owner, trip.ID.String(), itemID.String())

	require.NoError(t, err)
	assert.True(t, removed)
}

func TestItineraryService_RemoveStop_ItemNotFound(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	itin := emptyItinerary(trip.ID)

	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{
			getByTripID: func(_ context.Context, _ uuid.UUID) (*dbm.Itinerary, error) {
				return itin, nil
			},
			removeItem: func(_ context.Context, _, _ uuid.UUID) error {
				return utils.ErrItemNotFound
			},
		},
	)

	_, err := svc.RemoveStop(context.Background(), owner, trip.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, utils.ErrItemNotFound)
}

// ---- GetItinerary ----------------------------------------------------------

func TestItineraryService_GetItinerary_PublicTripReadableByAnyone(t *testing.T) {
	trip := ownedTrip(uuid.New())
	trip.IsPublic = true
	itin := emptyItinerary(trip.ID)

	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{getByTripID: func(_ context.Context, _ uuid.UUID) (*dbm.Itinerary, error) {
			return itin, nil
		}},
	)

	resp, err := svc.GetItinerary(context.Background(), uuid.New(), trip.ID.String(), "")

	require.NoError(t, err)
	assert.Equal(t, itin.ID, resp.ID)
}

func TestItineraryService_GetItinerary_PrivateTripHiddenFromOthers(t *testing.T) {
	trip := ownedTrip(uuid.New())

	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{},
	)

	_, err := svc.GetItinerary(context.Background(), uuid.New(), trip.ID.String(), "")

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestItineraryService_GetItinerary_KeywordFiltersItems(t *testing.T) {
	owner := uuid.New()
	trip := ownedTrip(owner)
	itin := emptyItinerary(trip.ID)

	louvre := dbm.ItineraryItem{Day: intp(0), SortOrder: 0, Stop: dbm.Stop{Name: "Louvre", City: "Paris"}}
	louvre.ID = uuid.New()
	colosseum := dbm.ItineraryItem{Day: intp(0), SortOrder: 1, Stop: dbm.Stop{Name: "Colosseum", City: "Rome"}}
	colosseum.ID = uuid.New()
	itin.Items = []dbm.ItineraryItem{louvre, colosseum}

	svc := services.NewItineraryService(
		&mockTripRepo{getByID: func(_ context.Context, _ uuid.UUID) (*dbm.Trip, error) {
			return trip, nil
		}},
		&mockStopRepo{},
		&mockItineraryRepo{getByTripID: func(_ context.Context, _ uuid.UUID) (*dbm.Itinerary, error) {
			return itin, nil
		}},
	)

	resp, err := svc.GetItinerary(context.Background(), owner, trip.ID.String(), "rome")

	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalItems)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Items, 1)
	assert.Equal(t, "Colosseum", resp.Days[0].Items[0].Stop.Name)
}
