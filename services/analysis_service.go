package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/aimethods/explorer/inference"
	"github.com/aimethods/explorer/models"
	"github.com/aimethods/explorer/repositories"
)

// UpstreamClient is the subset of the inference client the analysis service
// depends on.
type UpstreamClient interface {
	Summarize(ctx context.Context, text string) (string, error)
	Sentiment(ctx context.Context, text string) ([]inference.Candidate, error)
}

// AnalysisService runs the AI methods against the upstream API and records
// request history.
type AnalysisService interface {
	Summarize(ctx context.Context, text string) (*models.SummarizeResponse, error)
	Sentiment(ctx context.Context, text string) (*models.SentimentResponse, error)
	History(ctx context.Context, limit int) ([]models.LogEntry, error)
	Methods() []models.Method
}

// analysisService implements AnalysisService interface
type analysisService struct {
	client  UpstreamClient
	logRepo repositories.RequestLogRepository
	logger  *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(client UpstreamClient, logRepo repositories.RequestLogRepository, logger *zap.Logger) AnalysisService {
	return &analysisService{
		client:  client,
		logRepo: logRepo,
		logger:  logger,
	}
}

// Summarize condenses text through the summarization model.
func (s *analysisService) Summarize(ctx context.Context, text string) (*models.SummarizeResponse, error) {
	summary, err := s.client.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}

	resp := &models.SummarizeResponse{Result: summary}
	s.record(ctx, "/api/summarize", text, resp)
	return resp, nil
}

// Sentiment classifies text through the sentiment model. Input longer than
// the model limit is silently truncated before the upstream call.
func (s *analysisService) Sentiment(ctx context.Context, text string) (*models.SentimentResponse, error) {
	truncated := inference.Truncate(text)

	candidates, err := s.client.Sentiment(ctx, truncated)
	if err != nil {
		return nil, err
	}

	best, ok := inference.BestCandidate(candidates)
	if !ok {
		return nil, &inference.ShapeError{Reason: "no sentiment data returned from API"}
	}

	resp := &models.SentimentResponse{Sentiment: best.Label, Score: best.Score}
	s.record(ctx, "/api/sentiment", truncated, resp)
	return resp, nil
}

// History retrieves the most recent logged requests, newest first.
func (s *analysisService) History(ctx context.Context, limit int) ([]models.LogEntry, error) {
	return s.logRepo.ListRecent(ctx, limit)
}

// record appends a history row. Logging is strictly best-effort: any store
// failure is swallowed here and must never affect the primary response.
func (s *analysisService) record(ctx context.Context, endpoint, inputText string, result interface{}) {
	serialized, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Could not serialize result for request log",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return
	}

	entry := &models.LogEntry{
		Endpoint:  endpoint,
		InputText: inputText,
		Result:    string(serialized),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("Request log write failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
	}
}
