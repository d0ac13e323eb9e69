package service

import (
	"context"

	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/repository"
)

const recentOperationCount = 5

// DashboardService aggregates operation counts for the dashboard view
type DashboardService struct {
	operationRepo repository.OperationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(operationRepo repository.OperationRepository) *DashboardService {
	return &DashboardService{operationRepo: operationRepo}
}

// DashboardStats summarizes all saved operations
type DashboardStats struct {
	TotalOperations  int64                    `json:"total_operations"`
	ByStatus         []repository.StatusCount `json:"by_status"`
	ByArea           []repository.AreaCount   `json:"by_area"`
	RecentOperations []entity.Operation       `json:"recent_operations"`
}

// GetStats builds the dashboard summary
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.operationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byArea, err := s.operationRepo.CountByArea(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.operationRepo.Recent(ctx, recentOperationCount)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range byStatus {
		total += count.Count
	}

	return &DashboardStats{
		TotalOperations:  total,
		ByStatus:         byStatus,
		ByArea:           byArea,
		RecentOperations: recent,
	}, nil
}
