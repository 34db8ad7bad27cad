package services

import "github.com/aimethods/explorer/models"

// availableMethods is the static catalog served by GET /api/methods.
var availableMethods = []models.Method{
	{
		ID:          "summarize",
		Name:        "Text Summarization",
		Description: "Condenses long text into a shorter summary while preserving key information.",
		Model:       "facebook/bart-large-cnn",
		Endpoint:    "/api/summarize",
	},
	{
		ID:          "sentiment",
		Name:        "Sentiment Analysis",
		Description: "Analyzes the sentiment, emotional tone of a text (positive/negative) and returns a score.",
		Model:       "distilbert-base-uncased-finetuned-sst-2-english",
		Endpoint:    "/api/sentiment",
	},
}

// Methods returns the available AI method catalog.
func (s *analysisService) Methods() []models.Method {
	return availableMethods
}
