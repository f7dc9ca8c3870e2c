package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"jadlog-rates/internal/core/cache"
	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"
	"jadlog-rates/internal/features/quotes/ports"

	"go.uber.org/zap"
)

const rateCacheKeyPrefix = "jadlog_rates:"

// CachedRateProvider decorates a RateProvider with a short-lived cache so
// identical carts re-quote without another carrier round trip.
//
// Cache failures are logged and never fail the rating call.
type CachedRateProvider struct {
	next   ports.RateProvider
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedRateProvider creates a caching decorator around the given provider.
func NewCachedRateProvider(next ports.RateProvider, c cache.Cache, ttl time.Duration) *CachedRateProvider {
	return &CachedRateProvider{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.Get(),
	}
}

// Rate returns a cached result when available, otherwise delegates and caches.
func (p *CachedRateProvider) Rate(ctx context.Context, token string, requests []domain.RateRequest) (*domain.RateResult, error) {
	key, keyErr := p.cacheKey(token, requests)
	if keyErr == nil {
		if data, err := p.cache.Get(ctx, key); err == nil {
			var result domain.RateResult
			if err := json.Unmarshal(data, &result); err == nil {
				p.logger.Debug("Rate cache hit", zap.String("key", key))
				return &result, nil
			}
			p.logger.Warn("Discarding unreadable cached rate", zap.String("key", key))
		}
	}

	result, err := p.next.Rate(ctx, token, requests)
	if err != nil {
		return nil, err
	}

	if keyErr == nil {
		if data, err := json.Marshal(result); err == nil {
			if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
				p.logger.Warn("Failed to cache rate result", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return result, nil
}

// cacheKey hashes the contract token together with the request batch so
// merchants never share cached prices.
func (p *CachedRateProvider) cacheKey(token string, requests []domain.RateRequest) (string, error) {
	data, err := json.Marshal(requests)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(token))
	h.Write(data)
	return rateCacheKeyPrefix + hex.EncodeToString(h.Sum(nil)), nil
}
