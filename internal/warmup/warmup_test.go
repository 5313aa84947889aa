package warmup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_WarmUps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stretching", r.URL.Query().Get("type"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Arm Circles", "type": "stretching", "muscle": "shoulders", "difficulty": "beginner"},
			{"name": "Cat Cow", "type": "stretching", "muscle": "lower_back", "difficulty": "beginner"},
			{"name": "Leg Swings", "type": "stretching", "muscle": "hamstrings", "difficulty": "beginner"},
			{"name": "Neck Rolls", "type": "stretching", "muscle": "neck", "difficulty": "beginner"},
			{"name": "Hip Circles", "type": "stretching", "muscle": "hips", "difficulty": "beginner"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 2*time.Second)
	exercises, err := client.WarmUps(context.Background())
	require.NoError(t, err)

	// The list is truncated to the three shown on the calendar page.
	require.Len(t, exercises, 3)
	assert.Equal(t, "Arm Circles", exercises[0].Name)
	assert.Equal(t, "shoulders", exercises[0].Muscle)
	assert.Equal(t, "Leg Swings", exercises[2].Name)
}

func TestClient_WarmUps_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 2*time.Second)
	_, err := client.WarmUps(context.Background())
	assert.Error(t, err)
}

func TestClient_WarmUps_BadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "not a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 2*time.Second)
	_, err := client.WarmUps(context.Background())
	assert.Error(t, err)
}

func TestClient_WarmUps_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "test-key", 2*time.Second)
	_, err := client.WarmUps(ctx)
	assert.Error(t, err)
}
