package repository

import (
	"context"
	"errors"

	"eduhub/internal/cache"
	"eduhub/internal/models"

	"gorm.io/gorm"
)

// AcademyRepository defines persistence operations for academies.
type AcademyRepository interface {
	Create(ctx context.Context, academy *models.Academy) error
	GetByID(ctx context.Context, id uint) (*models.Academy, error)
	List(ctx context.Context, limit, offset int) ([]models.Academy, int64, error)
}

type academyRepository struct {
	db *gorm.DB
}

// NewAcademyRepository returns a new AcademyRepository implementation.
func NewAcademyRepository(db *gorm.DB) AcademyRepository {
	return &academyRepository{db: db}
}

func (r *academyRepository) Create(ctx context.Context, academy *models.Academy) error {
	if err := r.db.WithContext(ctx).Create(academy).Error; err != nil {
		return models.NewStoreError(err)
	}
	return nil
}

func (r *academyRepository) GetByID(ctx context.Context, id uint) (*models.Academy, error) {
	var academy models.Academy
	key := cache.AcademyKey(id)

	err := cache.Aside(ctx, key, &academy, cache.AcademyTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).First(&academy, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Academy", id)
			}
			return models.NewStoreError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &academy, nil
}

func (r *academyRepository) List(ctx context.Context, limit, offset int) ([]models.Academy, int64, error) {
	query := readDB(r.db).WithContext(ctx).Model(&models.Academy{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.NewStoreError(err)
	}

	var academies []models.Academy
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&academies).Error; err != nil {
		return nil, 0, models.NewStoreError(err)
	}
	return academies, total, nil
}
