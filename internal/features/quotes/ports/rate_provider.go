package ports

import (
	"context"

	"jadlog-rates/internal/features/quotes/domain"
)

// RateProvider defines the interface for the carrier rating web service.
type RateProvider interface {
	// Rate submits a batch of rate requests authenticated with the merchant
	// contract token and returns the index-aligned rating result.
	Rate(ctx context.Context, token string, requests []domain.RateRequest) (*domain.RateResult, error)
}
