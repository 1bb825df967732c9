package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]dbm.Trip, error)
	Update(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, tripID uuid.UUID) error
}

type tripRepository struct {
	db       *gorm.DB
	itinRepo ItineraryRepository
}

func NewTripRepository(db *gorm.DB, itinRepo ItineraryRepository) TripRepository {
	return &tripRepository{db: db, itinRepo: itinRepo}
}

// Create persists the trip and its empty itinerary in one transaction.
func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		return r.itinRepo.CreateForTrip(ctx, tx, trip.ID)
	})
}

func (r *tripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_date").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// Delete cascades to the itinerary and its items.
func (r *tripRepository) Delete(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subItinIDs := tx.Model(&dbm.Itinerary{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("itinerary_id IN (?)", subItinIDs).
			Delete(&dbm.ItineraryItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Itinerary{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripID).Delete(&dbm.Trip{}).Error
	})
}
