package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InquiryFilter narrows and orders admin inquiry listings.
type InquiryFilter struct {
	Statuses  []models.InquiryStatus
	Search    string
	SortField string
	SortOrder string
	Limit     int
	Offset    int
}

// Signature returns a stable string identifying the filter for cache keys.
func (f InquiryFilter) Signature() string {
	statuses := make([]string, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses = append(statuses, string(s))
	}
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		strings.Join(statuses, ","),
		strings.ToLower(strings.TrimSpace(f.Search)),
		f.SortField, f.SortOrder, f.Limit, f.Offset,
	)
}

// inquirySortColumns whitelists sortable columns to keep ORDER BY injection-safe.
var inquirySortColumns = map[string]struct{}{
	"id":           {},
	"academy_name": {},
	"full_name":    {},
	"email":        {},
	"phone":        {},
	"status":       {},
	"processed_at": {},
	"created_at":   {},
	"updated_at":   {},
}

// InquiryRepository defines persistence operations for inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uint) (*models.Inquiry, error)
	List(ctx context.Context, filter InquiryFilter) ([]models.Inquiry, int64, error)
	CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository returns a new InquiryRepository implementation.
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return models.NewStoreError(err)
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := readDB(r.db).WithContext(ctx).
		Preload("ProcessedByUser").
		Preload("Academy").
		First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Inquiry", id)
		}
		return nil, models.NewStoreError(err)
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context, filter InquiryFilter) ([]models.Inquiry, int64, error) {
	query := readDB(r.db).WithContext(ctx).Model(&models.Inquiry{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		// Case-insensitive substring match across the identifying columns.
		// LOWER/LIKE keeps behavior identical across Postgres and SQLite.
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(academy_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.NewStoreError(err)
	}

	sortField := filter.SortField
	if _, ok := inquirySortColumns[sortField]; !ok {
		sortField = "created_at"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var inquiries []models.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, 0, models.NewStoreError(err)
	}
	return inquiries, total, nil
}

func (r *inquiryRepository) CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error) {
	type row struct {
		Status models.InquiryStatus
		Count  int64
	}
	var rows []row
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Inquiry{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewStoreError(err)
	}

	counts := make(map[models.InquiryStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// LockInquiryForUpdate loads an inquiry inside tx with a row-level lock so a
// status transition can re-check its guard before writing.
func LockInquiryForUpdate(tx *gorm.DB, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Inquiry", id)
		}
		return nil, models.NewStoreError(err)
	}
	return &inquiry, nil
}
