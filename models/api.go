package models

// TextInput is the request body for the summarize and sentiment endpoints.
type TextInput struct {
	Text string `json:"text"`
}

// SummarizeResponse is the normalized output of the summarization model.
type SummarizeResponse struct {
	Result string `json:"result"`
}

// SentimentResponse is the normalized output of the sentiment model: the
// best-scoring label and its score.
type SentimentResponse struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// Method describes one entry of the static AI method catalog.
type Method struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Model       string `json:"model"`
	Endpoint    string `json:"endpoint"`
}
