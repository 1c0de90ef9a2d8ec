// Health-check
package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse описывает ответ health-check эндпоинта.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health сообщает, что сервер жив.
//
// Ответы:
//   - 200 OK: {"status":"ok","timestamp":"..."}
//
// @Summary      Health check
// @Description  Returns service status and current server time.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
