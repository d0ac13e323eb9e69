package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	domainRepo "github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/alavista-lab/cotizador-api/pkg/pagination"
	"gorm.io/gorm"
)

type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *gorm.DB) domainRepo.OperationRepository {
	return &operationRepository{db: db}
}

func (r *operationRepository) Create(ctx context.Context, operation *entity.Operation) error {
	return r.db.WithContext(ctx).Create(operation).Error
}

func (r *operationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	var operation entity.Operation
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&operation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operation, err
}

func (r *operationRepository) Update(ctx context.Context, operation *entity.Operation) error {
	return r.db.WithContext(ctx).Save(operation).Error
}

func (r *operationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Operation{}, "id = ?", id).Error
}

func (r *operationRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.OperationFilter) ([]entity.Operation, int64, error) {
	var operations []entity.Operation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Operation{})

	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.Search != "" {
		// LOWER/LIKE instead of ILIKE so sqlite-backed tests run the same query
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?)", pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("User").
		Order("created_at DESC").
		Find(&operations).Error

	return operations, total, err
}

func (r *operationRepository) CountByStatus(ctx context.Context) ([]domainRepo.StatusCount, error) {
	var counts []domainRepo.StatusCount
	err := r.db.WithContext(ctx).Model(&entity.Operation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *operationRepository) CountByArea(ctx context.Context) ([]domainRepo.AreaCount, error) {
	var counts []domainRepo.AreaCount
	err := r.db.WithContext(ctx).Model(&entity.Operation{}).
		Select("area, COUNT(*) as count").
		Group("area").
		Scan(&counts).Error
	return counts, err
}

func (r *operationRepository) Recent(ctx context.Context, n int) ([]entity.Operation, error) {
	var operations []entity.Operation
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(n).
		Find(&operations).Error
	return operations, err
}
