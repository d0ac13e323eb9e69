package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/alavista-lab/cotizador-api/pkg/apperror"
)

// DraftService persists the single in-progress document per user so a page
// reload restores unsaved edits. Each write replaces the previous draft.
type DraftService struct {
	draftRepo repository.DraftRepository
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repository.DraftRepository) *DraftService {
	return &DraftService{draftRepo: draftRepo}
}

// Save stores the latest edit state, overwriting any previous draft
func (s *DraftService) Save(ctx context.Context, userID uuid.UUID, doc *entity.QuotationDocument) error {
	doc.Recompute()
	return s.draftRepo.Save(ctx, userID, doc)
}

// Get returns the user's draft
func (s *DraftService) Get(ctx context.Context, userID uuid.UUID) (*entity.QuotationDocument, error) {
	doc, err := s.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return doc, nil
}

// Delete discards the user's draft. Deleting a missing draft is not an error.
func (s *DraftService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.draftRepo.Delete(ctx, userID)
}
