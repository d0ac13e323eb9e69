package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
	"github.com/alavista-lab/cotizador-api/pkg/pagination"
)

// OperationFilter narrows the operation list. Zero values mean "no filter".
type OperationFilter struct {
	Area   string
	Status *enum.OperationStatus
	Search string
}

// StatusCount pairs a status with the number of operations in it.
type StatusCount struct {
	Status enum.OperationStatus `json:"status"`
	Count  int64                `json:"count"`
}

// AreaCount pairs an area with the number of operations tagged with it.
type AreaCount struct {
	Area  string `json:"area"`
	Count int64  `json:"count"`
}

// OperationRepository defines the interface for operation data operations
type OperationRepository interface {
	Create(ctx context.Context, operation *entity.Operation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error)
	Update(ctx context.Context, operation *entity.Operation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns operations newest first, filtered and paginated.
	List(ctx context.Context, params *pagination.PaginationParams, filter OperationFilter) ([]entity.Operation, int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByArea(ctx context.Context) ([]AreaCount, error)
	// Recent returns the latest n operations across all areas.
	Recent(ctx context.Context, n int) ([]entity.Operation, error)
}
