package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/models"
)

// internalErrorBody is written when a response value cannot be marshaled.
var internalErrorBody = []byte(`{"error":"` + app.MsgInternalServerError + `"}`)

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" content type.
//
// If marshaling fails nothing of data is sent: the client receives a 500 with
// the same {"error": ...} body every other API failure carries, and the
// marshal error is returned for logging.
//
// Example usage:
//
//	WriteJSON(w, assets, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: app.MsgAssetNotFound}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalErrorBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an API error body. fieldErrors is omitted from the JSON
// when empty.
func WriteError(w http.ResponseWriter, statusCode int, message string, fieldErrors []models.FieldError) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message, Errors: fieldErrors}, statusCode)
}

// WriteMessage writes a {"message": ...} confirmation body.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// WriteText writes a plain-text body.
func WriteText(w http.ResponseWriter, statusCode int, text string) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
