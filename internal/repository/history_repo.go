package repository

import (
	"context"
	"time"

	"homelet/internal/domain"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

type searchQueryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Query     string    `gorm:"column:query"`
	IsDeleted bool      `gorm:"column:is_deleted"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (searchQueryModel) TableName() string { return "search_queries" }

type viewHistoryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	ListingID int64     `gorm:"column:listing_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (viewHistoryModel) TableName() string { return "view_histories" }

func (r *HistoryRepository) RecordSearch(ctx context.Context, userID int64, query string) error {
	m := searchQueryModel{UserID: userID, Query: query}
	return r.db.WithContext(ctx).Create(&m).Error
}

// RecordView keeps one row per (user, listing); repeat views are no-ops.
func (r *HistoryRepository) RecordView(ctx context.Context, userID, listingID int64) error {
	var m viewHistoryModel
	return r.db.WithContext(ctx).
		Where(viewHistoryModel{UserID: userID, ListingID: listingID}).
		FirstOrCreate(&m).Error
}

// PopularSearches groups non-deleted queries newer than since, drops queries
// shorter than minLength characters, and returns the top rows by count.
func (r *HistoryRepository) PopularSearches(ctx context.Context, since time.Time, minLength, limit int) ([]domain.PopularQuery, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []domain.PopularQuery
	q := `
SELECT query, COUNT(1) AS count
FROM search_queries
WHERE is_deleted = ?
  AND created_at >= ?
  AND query <> ''
  AND LENGTH(query) >= ?
GROUP BY query
ORDER BY count DESC
LIMIT ?
`
	tx := r.db.WithContext(ctx).Raw(q, false, since, minLength, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
