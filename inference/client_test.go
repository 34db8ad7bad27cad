package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aimethods/explorer/config"
)

func newTestClient(upstreamURL string) *Client {
	cfg := &config.Config{
		HFAPIKey:     "test-key",
		SummarizeURL: upstreamURL,
		SentimentURL: upstreamURL,
	}
	return NewClient(cfg, zap.NewNop())
}

func TestSummarizeSuccess(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"summary_text": "A short summary."}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	summary, err := client.Summarize(context.Background(), "some long text to summarize")

	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "some long text to summarize", gotPayload["inputs"])
	params, ok := gotPayload["parameters"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(100), params["max_length"])
}

func TestSummarizeEmptyListIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Summarize(context.Background(), "text")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestSummarizeMissingFieldIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"unexpected": "value"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Summarize(context.Background(), "text")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestUpstreamErrorStatusIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Summarize(context.Background(), "text")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
}

func TestUpstreamUnreachableIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	_, err := client.Summarize(context.Background(), "text")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
}

func TestPayloadTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Sentiment(context.Background(), "text")

	require.True(t, errors.Is(err, ErrPayloadTooLarge))
}

func TestSentimentRankedList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label": "POSITIVE", "score": 0.98}, {"label": "NEGATIVE", "score": 0.02}]]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	candidates, err := client.Sentiment(context.Background(), "I love this tool")

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "POSITIVE", candidates[0].Label)
	assert.Equal(t, 0.98, candidates[0].Score)
}

func TestSentimentSingleObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label": "NEGATIVE", "score": 0.75}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	candidates, err := client.Sentiment(context.Background(), "this is bad")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "NEGATIVE", candidates[0].Label)
}

func TestSentimentCandidateWithoutLabelIsShapeError(t *testing.T) {
	payloads := []string{
		`[{"something_else": 1}]`,
		`[[{"score": 0.9}]]`,
	}

	for _, payload := range payloads {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))

		client := newTestClient(server.URL)
		_, err := client.Sentiment(context.Background(), "text")
		server.Close()

		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr, "payload %s", payload)
	}
}

func TestSentimentEmptyResponseIsShapeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Sentiment(context.Background(), "text")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}
