package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// ConversionHTTPFacade calls a remote conversion endpoint over HTTP. It lets
// the display tier run apart from the service hosting the rate cache.
type ConversionHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewConversionHTTPFacade creates a facade pointing at the given service
// address, e.g. "http://localhost:8080".
func NewConversionHTTPFacade(baseURL string, timeout time.Duration) *ConversionHTTPFacade {
	return &ConversionHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Convert converts an amount between two currencies via the remote endpoint.
func (f *ConversionHTTPFacade) Convert(ctx context.Context, amount float64, from, to string, forceRefresh bool) (*models.Conversion, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set("refresh", strconv.FormatBool(forceRefresh))

	reqURL := fmt.Sprintf("%s/api/currency/convert?%s", f.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call conversion endpoint",
			"from", from, "to", to, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ConversionErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		logger.Log.Errorw("conversion endpoint returned error",
			"status", resp.StatusCode, "error", errResp.Error)
		return nil, fmt.Errorf("conversion endpoint: status %d: %s", resp.StatusCode, errResp.Error)
	}

	var conv models.Conversion
	if err := json.NewDecoder(resp.Body).Decode(&conv); err != nil {
		return nil, fmt.Errorf("decode conversion response: %w", err)
	}
	return &conv, nil
}
