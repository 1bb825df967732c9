package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wander/internal/models/db_models"
)

type StopEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding dbm.StopEmbedding) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]StopEmbeddingMatch, error)
	Delete(ctx context.Context, stopID string) error
}

// StopEmbeddingMatch pairs an embedding row with its cosine similarity to
// the query vector.
type StopEmbeddingMatch struct {
	dbm.StopEmbedding
	Similarity float64
}

type stopEmbeddingRepository struct {
	db *gorm.DB
}

func NewStopEmbeddingRepository(db *gorm.DB) StopEmbeddingRepository {
	return &stopEmbeddingRepository{db: db}
}

func (r *stopEmbeddingRepository) Upsert(ctx context.Context, embedding dbm.StopEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stop_id"}},
			UpdateAll: true,
		}).
		Create(&embedding).Error
}

func (r *stopEmbeddingRepository) SearchByVector(
	ctx context.Context, vector pgvector.Vector, limit int,
) ([]StopEmbeddingMatch, error) {
	var results []StopEmbeddingMatch

	// Cosine distance; keep only matches above 70% similarity.
	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM stop_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *stopEmbeddingRepository) Delete(ctx context.Context, stopID string) error {
	return r.db.WithContext(ctx).
		Where("stop_id = ?", stopID).
		Delete(&dbm.StopEmbedding{}).Error
}
