package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"jadlog-rates/internal/core/cache"
	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider records how many times Rate is invoked.
type countingProvider struct {
	calls  int
	result *domain.RateResult
	err    error
}

func (p *countingProvider) Rate(ctx context.Context, token string, requests []domain.RateRequest) (*domain.RateResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

// TestCachedRateProvider_MissThenHit verifies that identical batches only
// reach the carrier once.
func TestCachedRateProvider_MissThenHit(t *testing.T) {
	logger.Init("development", "error")

	next := &countingProvider{
		result: &domain.RateResult{Lines: []domain.RateLine{{VlTotal: 35.5}}},
	}
	provider := NewCachedRateProvider(next, newTestCache(t), time.Minute)

	ctx := context.Background()
	requests := sampleRequests()

	first, err := provider.Rate(ctx, "tok", requests)
	require.NoError(t, err)
	require.Len(t, first.Lines, 1)

	second, err := provider.Rate(ctx, "tok", requests)
	require.NoError(t, err)
	assert.Equal(t, first.Lines, second.Lines)

	assert.Equal(t, 1, next.calls)
}

// TestCachedRateProvider_DistinctTokens verifies merchants never share
// cached prices.
func TestCachedRateProvider_DistinctTokens(t *testing.T) {
	logger.Init("development", "error")

	next := &countingProvider{
		result: &domain.RateResult{Lines: []domain.RateLine{{VlTotal: 35.5}}},
	}
	provider := NewCachedRateProvider(next, newTestCache(t), time.Minute)

	ctx := context.Background()
	requests := sampleRequests()

	_, err := provider.Rate(ctx, "merchant-a", requests)
	require.NoError(t, err)

	_, err = provider.Rate(ctx, "merchant-b", requests)
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
}

// TestCachedRateProvider_ErrorsNotCached verifies provider failures pass
// through without being cached.
func TestCachedRateProvider_ErrorsNotCached(t *testing.T) {
	logger.Init("development", "error")

	next := &countingProvider{err: errors.New("carrier down")}
	provider := NewCachedRateProvider(next, newTestCache(t), time.Minute)

	ctx := context.Background()
	requests := sampleRequests()

	_, err := provider.Rate(ctx, "tok", requests)
	require.Error(t, err)

	_, err = provider.Rate(ctx, "tok", requests)
	require.Error(t, err)

	assert.Equal(t, 2, next.calls)
}
