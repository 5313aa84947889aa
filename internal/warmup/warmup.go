// Package warmup fetches a few supplemental warm-up suggestions for the
// calendar page. The feature is decorative: any failure here degrades to
// an empty list and must never break the calendar read itself.
package warmup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// How many suggestions the calendar page shows.
const suggestionCount = 3

// Exercise is one warm-up suggestion as returned by the exercises API.
type Exercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// Provider supplies warm-up suggestions.
type Provider interface {
	WarmUps(ctx context.Context) ([]Exercise, error)
}

// Client fetches stretching exercises from the API Ninjas exercises API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a warm-up client. The timeout bounds the whole fetch
// so a slow upstream can't stall the calendar page.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WarmUps returns up to three stretching exercises. Callers are expected
// to treat any error as "no suggestions today".
func (c *Client) WarmUps(ctx context.Context) ([]Exercise, error) {
	url := c.baseURL + "?type=stretching"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("warm-up API returned status %d", resp.StatusCode)
	}

	var exercises []Exercise
	if err := json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
		return nil, err
	}

	if len(exercises) > suggestionCount {
		exercises = exercises[:suggestionCount]
	}
	return exercises, nil
}
