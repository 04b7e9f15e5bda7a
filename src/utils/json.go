package utils

import (
	"encoding/json"
	"net/http"
)

// SendJSONResponse writes v as a JSON body with the given status code.
func SendJSONResponse(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// SendJSONError writes a JSON error payload. The frontend renders the
// message as the dashboard's error banner.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	SendJSONResponse(w, map[string]string{"error": message}, statusCode)
}
