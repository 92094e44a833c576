package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultSourceURL serves the mainland China calendar, one JSON file per year
const DefaultSourceURL = "https://unpkg.com/holiday-calendar@1.3.0/data/CN/{year}.json"

// Source fetches a year of holidays from the source of truth
type Source interface {
	Fetch(ctx context.Context, year int) (Map, error)
}

// Fetch failure reasons, also used as the metrics label
const (
	ReasonNetwork = "network"
	ReasonStatus  = "status"
	ReasonDecode  = "decode"
)

// FetchError classifies a failed remote fetch
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("holiday fetch failed (%s): %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// calendarResponse is the body served by the holiday-calendar package
type calendarResponse struct {
	Year  int      `json:"year"`
	Dates []Record `json:"dates"`
}

// HTTPSource fetches the calendar over HTTP
type HTTPSource struct {
	URLTemplate string
	HTTPClient  *http.Client
}

// NewHTTPSource creates a source for urlTemplate, where {year} is substituted.
// A zero timeout leaves the transport default in place.
func NewHTTPSource(urlTemplate string, timeout time.Duration) *HTTPSource {
	if urlTemplate == "" {
		urlTemplate = DefaultSourceURL
	}
	return &HTTPSource{
		URLTemplate: urlTemplate,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

// URL returns the endpoint for year
func (s *HTTPSource) URL(year int) string {
	return strings.ReplaceAll(s.URLTemplate, "{year}", strconv.Itoa(year))
}

// Fetch issues one GET for year and keys the returned dates
func (s *HTTPSource) Fetch(ctx context.Context, year int) (Map, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(year), nil)
	if err != nil {
		return nil, &FetchError{Reason: ReasonNetwork, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Reason: ReasonStatus, Err: fmt.Errorf("API request failed with status %d", resp.StatusCode)}
	}

	var body calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &FetchError{Reason: ReasonDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return FromRecords(body.Dates), nil
}

// fetchReason extracts the metrics label from a Fetch error
func fetchReason(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ReasonNetwork
}
