package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
)

type StopRepository interface {
	Create(ctx context.Context, stop *dbm.Stop) error
	GetByID(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error)
	List(ctx context.Context, page, pageSize int) ([]dbm.Stop, error)
	SearchByKeyword(ctx context.Context, keyword string, page, pageSize int) ([]dbm.Stop, error)
	Update(ctx context.Context, stop *dbm.Stop) error
	Delete(ctx context.Context, stopID uuid.UUID) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) Create(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *stopRepository) GetByID(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error) {
	var stop dbm.Stop
	err := r.db.WithContext(ctx).Where("id = ?", stopID).First(&stop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *stopRepository) List(ctx context.Context, page, pageSize int) ([]dbm.Stop, error) {
	var stops []dbm.Stop
	err := r.db.WithContext(ctx).
		Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) SearchByKeyword(ctx context.Context, keyword string, page, pageSize int) ([]dbm.Stop, error) {
	var stops []dbm.Stop
	pattern := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR city ILIKE ?", pattern, pattern).
		Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) Update(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Save(stop).Error
}

func (r *stopRepository) Delete(ctx context.Context, stopID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", stopID).Delete(&dbm.Stop{}).Error
}
