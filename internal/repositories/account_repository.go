package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	FindByID(ctx context.Context, id string) (*dbm.Account, error)
	Insert(ctx context.Context, account *dbm.Account) error
	UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}
