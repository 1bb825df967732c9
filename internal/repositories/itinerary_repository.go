package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wander/internal/models/db_models"
	"wander/pkg/utils"
)

type ItineraryRepository interface {
	CreateForTrip(ctx context.Context, tx *gorm.DB, tripID uuid.UUID) error
	GetByTripID(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error)
	AddItem(ctx context.Context, itineraryID uuid.UUID, item dbm.ItineraryItem, desiredOrder *int) (*dbm.ItineraryItem, error)
	RemoveItem(ctx context.Context, itineraryID uuid.UUID, itemID uuid.UUID) error
	UpdateItem(ctx context.Context, itineraryID uuid.UUID, itemID uuid.UUID, startTime, endTime *time.Time, notes *string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// CreateForTrip runs inside the trip-creation transaction so a trip and its
// itinerary appear together.
func (r *itineraryRepository) CreateForTrip(_ context.Context, tx *gorm.DB, tripID uuid.UUID) error {
	return tx.Create(&dbm.Itinerary{TripID: tripID}).Error
}

func (r *itineraryRepository) GetByTripID(ctx context.Context, tripID uuid.UUID) (*dbm.Itinerary, error) {
	var itin dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("Items").
		Preload("Items.Stop").
		First(&itin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itin, nil
}

// AddItem inserts item under the itinerary's row lock so concurrent
// mutations of the same itinerary serialize and each observes the previous
// committed ordering.
func (r *itineraryRepository) AddItem(
	ctx context.Context, itineraryID uuid.UUID, item dbm.ItineraryItem, desiredOrder *int,
) (*dbm.ItineraryItem, error) {
	var created dbm.ItineraryItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := lockAndLoadItems(tx, itineraryID)
		if err != nil {
			return err
		}

		before := make(map[uuid.UUID]int, len(items))
		for _, it := range items {
			before[it.ID] = it.SortOrder
		}

		item.ItineraryID = itineraryID
		next := dbm.InsertItem(items, item, desiredOrder)

		for i := range next {
			it := &next[i]
			if it.ID == uuid.Nil {
				if err := tx.Create(it).Error; err != nil {
					return err
				}
				created = *it
				continue
			}
			if prev, ok := before[it.ID]; ok && prev != it.SortOrder {
				if err := tx.Model(&dbm.ItineraryItem{}).
					Where("id = ?", it.ID).
					Update("sort_order", it.SortOrder).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveItem deletes the item and renumbers the remaining items of its day
// contiguously from zero, under the same lock as AddItem.
func (r *itineraryRepository) RemoveItem(ctx context.Context, itineraryID uuid.UUID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := lockAndLoadItems(tx, itineraryID)
		if err != nil {
			return err
		}

		before := make(map[uuid.UUID]int, len(items))
		for _, it := range items {
			before[it.ID] = it.SortOrder
		}

		remaining, ok := dbm.RemoveItemByID(items, itemID)
		if !ok {
			return utils.ErrItemNotFound
		}

		if err := tx.Where("id = ?", itemID).Delete(&dbm.ItineraryItem{}).Error; err != nil {
			return err
		}
		for _, it := range remaining {
			if prev, ok := before[it.ID]; ok && prev != it.SortOrder {
				if err := tx.Model(&dbm.ItineraryItem{}).
					Where("id = ?", it.ID).
					Update("sort_order", it.SortOrder).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *itineraryRepository) UpdateItem(
	ctx context.Context, itineraryID uuid.UUID, itemID uuid.UUID,
	startTime, endTime *time.Time, notes *string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it dbm.ItineraryItem
		err := tx.Where("id = ? AND itinerary_id = ?", itemID, itineraryID).First(&it).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrItemNotFound
			}
			return err
		}

		if startTime != nil {
			it.StartTime = startTime
		}
		if endTime != nil {
			it.EndTime = endTime
		}
		if notes != nil {
			it.Notes = *notes
		}
		return tx.Save(&it).Error
	})
}

// lockAndLoadItems takes a FOR UPDATE lock on the itinerary row, then reads
// its items in sort order. ErrItineraryNotFound when the row is missing.
func lockAndLoadItems(tx *gorm.DB, itineraryID uuid.UUID) ([]dbm.ItineraryItem, error) {
	var itin dbm.Itinerary
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&itin, "id = ?", itineraryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, err
	}

	var items []dbm.ItineraryItem
	err = tx.Where("itinerary_id = ?", itineraryID).
		Order("day NULLS LAST, sort_order").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
