package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
	"github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/alavista-lab/cotizador-api/pkg/apperror"
	"github.com/alavista-lab/cotizador-api/pkg/pagination"
)

// OperationService manages persisted quotation operations
type OperationService struct {
	operationRepo repository.OperationRepository
	now           func() time.Time
}

// NewOperationService creates a new operation service
func NewOperationService(operationRepo repository.OperationRepository) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		now:           time.Now,
	}
}

// OperationInput carries the fields a save or update provides
type OperationInput struct {
	Name     string
	Date     string
	Document *entity.QuotationDocument
}

func (s *OperationService) validate(input *OperationInput) (*time.Time, error) {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Document == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "document", Message: "Document is required"})
	} else if len(input.Document.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "document.items", Message: "At least one proposal item is required"})
	}

	date := s.now()
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		} else {
			date = parsed
		}
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}
	return &date, nil
}

// Create persists a new operation owned by the saving user and tagged with
// the session area. Status starts as in review.
func (s *OperationService) Create(ctx context.Context, userID uuid.UUID, area string, input *OperationInput) (*entity.Operation, error) {
	date, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	input.Document.Recompute()

	operation := &entity.Operation{
		UserID:  userID,
		Name:    input.Name,
		Date:    *date,
		Status:  enum.OperationStatusInReview,
		Area:    area,
		Payload: entity.DocumentPayload{QuotationDocument: *input.Document},
	}

	if err := s.operationRepo.Create(ctx, operation); err != nil {
		return nil, err
	}
	return operation, nil
}

// GetByID returns a single operation
func (s *OperationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	operation, err := s.operationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operation == nil {
		return nil, apperror.NewNotFoundError("Operation")
	}
	return operation, nil
}

// List returns operations newest first, filtered and paginated
func (s *OperationService) List(ctx context.Context, params *pagination.PaginationParams, filter repository.OperationFilter) (*pagination.PaginatedResult[entity.Operation], error) {
	params.Validate()

	operations, total, err := s.operationRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(operations, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Update overwrites an operation's name, date and payload. Each save replaces
// the stored snapshot; there is no versioning. Only the owner or an admin
// may update.
func (s *OperationService) Update(ctx context.Context, id, userID uuid.UUID, isAdmin bool, input *OperationInput) (*entity.Operation, error) {
	operation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operation.UserID != userID && !isAdmin {
		return nil, apperror.ErrForbidden
	}

	date, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	input.Document.Recompute()

	operation.Name = input.Name
	operation.Date = *date
	operation.Payload = entity.DocumentPayload{QuotationDocument: *input.Document}

	if err := s.operationRepo.Update(ctx, operation); err != nil {
		return nil, err
	}
	return operation, nil
}

// UpdateStatus moves an operation through review. Admin only.
func (s *OperationService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OperationStatus, isAdmin bool) (*entity.Operation, error) {
	if !isAdmin {
		return nil, apperror.ErrForbidden
	}
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid status")
	}

	operation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	operation.Status = status
	if err := s.operationRepo.Update(ctx, operation); err != nil {
		return nil, err
	}
	return operation, nil
}

// Delete removes an operation. Admin only.
func (s *OperationService) Delete(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	if !isAdmin {
		return apperror.ErrForbidden
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.operationRepo.Delete(ctx, id)
}
