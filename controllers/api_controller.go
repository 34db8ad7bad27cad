package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aimethods/explorer/inference"
	"github.com/aimethods/explorer/models"
	"github.com/aimethods/explorer/services"
)

// APIController handles the JSON API requests
type APIController struct {
	services *services.Services
}

// NewAPIController creates a new API controller
func NewAPIController(services *services.Services) *APIController {
	return &APIController{
		services: services,
	}
}

// Root handles GET /
func (c *APIController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Methods Explorer API"})
}

// Health handles GET /health
func (c *APIController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ai-methods-explorer",
	})
}

// Summarize handles POST /api/summarize
func (c *APIController) Summarize(w http.ResponseWriter, r *http.Request) {
	var input models.TextInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := c.services.Analysis.Summarize(r.Context(), input.Text)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Sentiment handles POST /api/sentiment
func (c *APIController) Sentiment(w http.ResponseWriter, r *http.Request) {
	var input models.TextInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := c.services.Analysis.Sentiment(r.Context(), input.Text)
	if err != nil {
		// Only the sentiment path turns an oversized payload into a client
		// error; the model enforces its input limit here.
		if errors.Is(err, inference.ErrPayloadTooLarge) {
			writeError(w, http.StatusBadRequest, "Text is too long. Please use a shorter text (maximum 500 words).")
			return
		}
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Methods handles GET /api/methods
func (c *APIController) Methods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"methods": c.services.Analysis.Methods(),
	})
}

// History handles GET /api/history
func (c *APIController) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	entries, err := c.services.Analysis.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load request history: "+err.Error())
		return
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}

// writeUpstreamError maps the upstream failure taxonomy onto client-facing
// 500s with a descriptive detail string.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var shapeErr *inference.ShapeError
	if errors.As(err, &shapeErr) {
		writeError(w, http.StatusInternalServerError, "Error processing request: "+shapeErr.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, "API request failed: "+err.Error())
}
