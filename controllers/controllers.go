package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/aimethods/explorer/services"
)

// Controllers holds all controller instances
type Controllers struct {
	API *APIController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		API: NewAPIController(services),
	}
}

// writeJSON encodes v as the response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends an error response in the {"detail": ...} shape
func writeError(w http.ResponseWriter, statusCode int, detail string) {
	writeJSON(w, statusCode, map[string]string{"detail": detail})
}
