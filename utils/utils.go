package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RenderJsonMessage writes JSON response with status code
func RenderJsonMessage(data any, w http.ResponseWriter, httpStatusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode JSON for response", zap.Error(err))
	}
}
