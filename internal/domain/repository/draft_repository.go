package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
)

// DraftRepository stores the single in-progress quotation document per user.
type DraftRepository interface {
	Save(ctx context.Context, userID uuid.UUID, doc *entity.QuotationDocument) error
	// Get returns (nil, nil) when the user has no draft.
	Get(ctx context.Context, userID uuid.UUID) (*entity.QuotationDocument, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
