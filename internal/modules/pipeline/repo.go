package pipeline

import (
	"context"

	"github.com/blogsum/core/internal/models"
	"github.com/blogsum/core/internal/pkg/pagination"
	"gorm.io/gorm"
)

// SummaryRepo writes completed pipeline results to the relational store.
type SummaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

// SaveSummary inserts a new row. Duplicate URLs accumulate rows; there
// is no uniqueness constraint on the table.
func (r *SummaryRepo) SaveSummary(ctx context.Context, url, summary, translation string) error {
	record := models.SummaryModel{
		URL:         url,
		Summary:     summary,
		Translation: translation,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

// List returns saved summaries newest first, paginated.
func (r *SummaryRepo) List(ctx context.Context, q pagination.Query) ([]models.SummaryModel, pagination.Meta, error) {
	var rows []models.SummaryModel
	query := r.db.WithContext(ctx).Model(&models.SummaryModel{}).Order("created_at DESC")
	meta, err := pagination.Paginate(query, q, &rows)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return rows, meta, nil
}
