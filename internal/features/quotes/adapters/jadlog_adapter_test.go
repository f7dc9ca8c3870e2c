package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequests() []domain.RateRequest {
	return []domain.RateRequest{
		{
			Modalidade:  3,
			CepOri:      "01310100",
			CepDes:      "20040020",
			Peso:        2,
			VlDeclarado: 100,
			TpEntrega:   "D",
			TpSeguro:    "N",
			Conta:       "123",
		},
	}
}

// TestJadlogAdapter_Rate verifies a successful batch rating round trip.
func TestJadlogAdapter_Rate(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Frete []domain.RateRequest `json:"frete"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Frete, 1)
		assert.Equal(t, 3, payload.Frete[0].Modalidade)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"frete":[{"vltotal":35.5}]}`))
	}))
	defer ts.Close()

	adapter := NewJadlogAdapter(ts.URL, 2*time.Second)
	result, err := adapter.Rate(context.Background(), "tok", sampleRequests())

	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 35.5, result.Lines[0].VlTotal)
	assert.True(t, result.Lines[0].Usable())
}

// TestJadlogAdapter_Rate_LineError verifies per-line carrier errors are kept
// aligned and marked unusable.
func TestJadlogAdapter_Rate_LineError(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"frete":[{"error":"CEP não atendido"},{"vltotal":41.9}],"erro":{"descricao":"faixa de CEP"}}`))
	}))
	defer ts.Close()

	adapter := NewJadlogAdapter(ts.URL, 2*time.Second)
	result, err := adapter.Rate(context.Background(), "tok", sampleRequests())

	require.NoError(t, err)
	require.Len(t, result.Lines, 2)
	assert.False(t, result.Lines[0].Usable())
	assert.True(t, result.Lines[1].Usable())
	assert.Equal(t, "faixa de CEP", result.ErrorMessage())
}

// TestJadlogAdapter_Rate_UpstreamStatus verifies non-2xx statuses surface as
// UpstreamStatusError.
func TestJadlogAdapter_Rate_UpstreamStatus(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	adapter := NewJadlogAdapter(ts.URL, 2*time.Second)
	_, err := adapter.Rate(context.Background(), "bad-token", sampleRequests())

	require.Error(t, err)
	var statusErr *domain.UpstreamStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
}

// TestJadlogAdapter_Rate_MalformedBody verifies decode failures are reported.
func TestJadlogAdapter_Rate_MalformedBody(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer ts.Close()

	adapter := NewJadlogAdapter(ts.URL, 2*time.Second)
	_, err := adapter.Rate(context.Background(), "tok", sampleRequests())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse carrier response")
}

// TestJadlogAdapter_Rate_Timeout verifies the rating timeout fails the call.
func TestJadlogAdapter_Rate_Timeout(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"frete":[]}`))
	}))
	defer ts.Close()

	adapter := NewJadlogAdapter(ts.URL, 50*time.Millisecond)
	_, err := adapter.Rate(context.Background(), "tok", sampleRequests())

	require.Error(t, err)
}
