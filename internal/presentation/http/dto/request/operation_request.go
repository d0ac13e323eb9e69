package request

import (
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
)

// SaveOperationRequest creates or overwrites a persisted operation
type SaveOperationRequest struct {
	Name     string                    `json:"name" binding:"required"`
	Date     string                    `json:"date"`
	Document *entity.QuotationDocument `json:"document" binding:"required"`
}

// UpdateStatusRequest moves an operation through review
type UpdateStatusRequest struct {
	Status enum.OperationStatus `json:"status"`
}

// ListOperationsRequest filters the dashboard operation listing
type ListOperationsRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Area    string `form:"area"`
	Status  string `form:"status"`
	Search  string `form:"search"`
}
