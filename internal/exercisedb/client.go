// Package exercisedb looks up exercise metadata (notably gif URLs) from
// the ExerciseDB API. Lookups are best-effort enrichment; a miss or an
// upstream error just means the exercise keeps whatever metadata it has.
package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// apiExercise mirrors the fields we care about from the ExerciseDB payload.
type apiExercise struct {
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	GifURL           string   `json:"gifUrl"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
}

// Metadata is the resolved exercise metadata.
type Metadata struct {
	Name             string
	BodyPart         string
	Target           string
	Equipment        string
	GifURL           string
	SecondaryMuscles []string
	Instructions     []string
}

// Lookup resolves exercise metadata by name.
type Lookup interface {
	FindByName(ctx context.Context, name string) (*Metadata, error)
}

// Client calls the ExerciseDB API on RapidAPI.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an ExerciseDB client with a bounded request timeout.
func NewClient(host, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		host:       host,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindByName fetches metadata for the named exercise. Returns nil with no
// error when the API has no match.
func (c *Client) FindByName(ctx context.Context, name string) (*Metadata, error) {
	u := fmt.Sprintf("https://%s/exercises/name/%s", c.host, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exercisedb API returned status %d", resp.StatusCode)
	}

	var results []apiExercise
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	first := results[0]
	return &Metadata{
		Name:             first.Name,
		BodyPart:         first.BodyPart,
		Target:           first.Target,
		Equipment:        first.Equipment,
		GifURL:           first.GifURL,
		SecondaryMuscles: first.SecondaryMuscles,
		Instructions:     first.Instructions,
	}, nil
}
