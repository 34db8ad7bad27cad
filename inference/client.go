package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/aimethods/explorer/config"
)

// summarizeMaxLength caps the length of generated summaries upstream.
const summarizeMaxLength = 100

// Candidate is one ranked sentiment label returned by the upstream model.
type Candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type summaryResult struct {
	SummaryText string `json:"summary_text"`
}

// Client issues calls against the upstream inference API: exactly one
// synchronous POST per request, no retries. Cancellation arrives only through
// the request context; the client itself sets no timeout.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	summarizeURL string
	sentimentURL string
	logger       *zap.Logger
}

// NewClient creates a new upstream inference client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{},
		apiKey:       cfg.HFAPIKey,
		summarizeURL: cfg.SummarizeURL,
		sentimentURL: cfg.SentimentURL,
		logger:       logger,
	}
}

// Summarize sends text to the summarization model and returns the summary of
// the first ranked element.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	payload := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"max_length": summarizeMaxLength,
		},
	}

	body, err := c.post(ctx, c.summarizeURL, payload)
	if err != nil {
		return "", err
	}

	var results []summaryResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", &ShapeError{Reason: "response is not a list of summaries"}
	}
	if len(results) == 0 {
		return "", &ShapeError{Reason: "empty summary list"}
	}
	if results[0].SummaryText == "" {
		return "", &ShapeError{Reason: "missing summary_text"}
	}

	return results[0].SummaryText, nil
}

// Sentiment sends text to the sentiment model and returns the ranked label
// candidates for it.
func (c *Client) Sentiment(ctx context.Context, text string) ([]Candidate, error) {
	body, err := c.post(ctx, c.sentimentURL, map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, err
	}

	// The model returns one element per input. That element is either a
	// ranked candidate list or a single {label, score} object.
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, &ShapeError{Reason: "response is not a list"}
	}
	if len(outer) == 0 {
		return nil, &ShapeError{Reason: "no sentiment data returned from API"}
	}

	var candidates []Candidate
	if err := json.Unmarshal(outer[0], &candidates); err != nil {
		var single Candidate
		if err := json.Unmarshal(outer[0], &single); err != nil {
			return nil, &ShapeError{Reason: "unexpected sentiment payload"}
		}
		candidates = []Candidate{single}
	}
	if len(candidates) == 0 {
		return nil, &ShapeError{Reason: "no sentiment data returned from API"}
	}
	for _, candidate := range candidates {
		if candidate.Label == "" {
			return nil, &ShapeError{Reason: "candidate missing label"}
		}
	}

	return candidates, nil
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream call failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return nil, ErrPayloadTooLarge
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Upstream returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	return body, nil
}
