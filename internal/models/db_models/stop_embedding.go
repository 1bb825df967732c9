package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// StopEmbedding mirrors the searchable text of a Stop as a pgvector row for
// cosine-similarity queries.
type StopEmbedding struct {
	StopID      string `gorm:"primaryKey;column:stop_id"`
	Name        string
	Description string
	City        string
	Category    string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
