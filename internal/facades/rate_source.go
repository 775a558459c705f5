package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// DefaultRateAPIURL is the free-tier exchange rate provider; no API key required.
const DefaultRateAPIURL = "https://api.exchangerate-api.com/v4/latest"

// FetchError indicates the rate provider was unreachable or returned a
// non-success HTTP status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch exchange rates from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch exchange rates from %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError indicates the provider response could not be interpreted as the
// expected rates mapping.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse exchange rates response from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("parse exchange rates response from %s: missing rates mapping", e.URL)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RateSourceFacade fetches current exchange rates relative to a base currency
// from the external rate provider. It is a pure I/O boundary: no caching here,
// and retries beyond its own bounded policy are the caller's responsibility.
type RateSourceFacade struct {
	baseURL    string
	client     *http.Client
	maxRetries int // additional attempts after the first, 0 or 1
}

// NewRateSourceFacade creates a facade with a bounded per-request timeout and
// a configurable retry count (clamped to at most one retry).
func NewRateSourceFacade(baseURL string, timeout time.Duration, maxRetries int) *RateSourceFacade {
	if baseURL == "" {
		baseURL = DefaultRateAPIURL
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxRetries > 1 {
		maxRetries = 1
	}
	return &RateSourceFacade{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
	}
}

// GetRates fetches the full rate mapping for the given base currency.
func (f *RateSourceFacade) GetRates(ctx context.Context, base string) (models.Rates, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, base)

	var body []byte
	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		body, lastErr = f.fetch(ctx, url)
		if lastErr == nil {
			break
		}
		logger.Log.Warnw("rate provider request failed",
			"url", url,
			"attempt", attempt+1,
			"error", lastErr,
		)
	}
	if lastErr != nil {
		return nil, lastErr
	}

	result := gjson.GetBytes(body, "rates")
	if !result.Exists() || !result.IsObject() {
		return nil, &ParseError{URL: url}
	}

	rates := make(models.Rates)
	for code, value := range result.Map() {
		rates[code] = value.Float()
	}
	if len(rates) == 0 {
		return nil, &ParseError{URL: url}
	}

	logger.Log.Infow("fetched exchange rates",
		"base", base,
		"currencies", len(rates),
	)
	return rates, nil
}

func (f *RateSourceFacade) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}
