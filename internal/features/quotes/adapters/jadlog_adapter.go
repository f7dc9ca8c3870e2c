package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jadlog-rates/internal/core/httpclient"
	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"

	"go.uber.org/zap"
)

// JadlogAdapter implements the RateProvider interface against the Jadlog
// freight value web service.
type JadlogAdapter struct {
	// client is the HTTP client used for rating calls.
	client *http.Client
	// apiURL is the rating endpoint.
	apiURL string
	logger *zap.Logger
}

// NewJadlogAdapter creates a new JadlogAdapter for the given endpoint.
// The timeout bounds the single batched rating round trip.
func NewJadlogAdapter(apiURL string, timeout time.Duration) *JadlogAdapter {
	return &JadlogAdapter{
		client: httpclient.NewClient(timeout),
		apiURL: apiURL,
		logger: logger.Get(),
	}
}

// jadlogRatePayload is the request envelope of the rating web service.
type jadlogRatePayload struct {
	Frete []domain.RateRequest `json:"frete"`
}

// Rate submits the batch and parses the index-aligned response.
func (a *JadlogAdapter) Rate(ctx context.Context, token string, requests []domain.RateRequest) (*domain.RateResult, error) {
	body, err := json.Marshal(jadlogRatePayload{Frete: requests})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rate payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Warn("Jadlog rating returned unexpected status",
			zap.Int("status_code", resp.StatusCode),
			zap.Int("batch_size", len(requests)),
		)
		return nil, &domain.UpstreamStatusError{Status: resp.StatusCode}
	}

	var result domain.RateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse carrier response: %w", err)
	}

	return &result, nil
}
