package taxid

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/infrastructure/cache"
	"rotaclick/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const cacheNamespace = "taxid"

type Cache interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error
}

// CachedClient keeps successful lookups for ttl. Cache failures degrade to a
// direct registry call.
type CachedClient struct {
	next   interfaces.ITaxIDValidator
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ITaxIDValidator = (*CachedClient)(nil)

func NewCachedClient(next interfaces.ITaxIDValidator, c Cache, ttl time.Duration, logger *zap.Logger) *CachedClient {
	return &CachedClient{next: next, cache: c, ttl: ttl, logger: logger}
}

func (c *CachedClient) Lookup(ctx context.Context, cnpj string) (entities.TaxIDRecord, error) {
	b, err := c.cache.Get(ctx, cacheNamespace, cnpj)
	switch {
	case err == nil:
		var rec entities.TaxIDRecord
		if jerr := json.Unmarshal(b, &rec); jerr == nil {
			return rec, nil
		}
		c.logger.Warn("[taxid][cache] corrupt entry ignored", zap.String("cnpj", cnpj))
	case !errors.Is(err, cache.ErrMiss):
		c.logger.Warn("[taxid][cache] get failed", zap.String("cnpj", cnpj), zap.Error(err))
	}

	rec, err := c.next.Lookup(ctx, cnpj)
	if err != nil {
		return rec, err
	}

	if b, err := json.Marshal(rec); err == nil {
		if err := c.cache.Set(ctx, cacheNamespace, cnpj, b, c.ttl); err != nil {
			c.logger.Warn("[taxid][cache] set failed", zap.String("cnpj", cnpj), zap.Error(err))
		}
	}
	return rec, nil
}
