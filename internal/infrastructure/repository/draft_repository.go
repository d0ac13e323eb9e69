package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	domainRepo "github.com/alavista-lab/cotizador-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "cotizador:draft:"

type draftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftRepository creates a redis-backed draft store. Drafts expire after
// ttl so abandoned sessions do not accumulate.
func NewDraftRepository(client *redis.Client, ttl time.Duration) domainRepo.DraftRepository {
	return &draftRepository{client: client, ttl: ttl}
}

func draftKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", draftKeyPrefix, userID)
}

func (r *draftRepository) Save(ctx context.Context, userID uuid.UUID, doc *entity.QuotationDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(userID), data, r.ttl).Err()
}

func (r *draftRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.QuotationDocument, error) {
	data, err := r.client.Get(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc entity.QuotationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *draftRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, draftKey(userID)).Err()
}
