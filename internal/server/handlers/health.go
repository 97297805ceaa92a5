package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"hd2api/internal/shared/redis"
	"hd2api/internal/shared/response"
	"hd2api/internal/tracker"
)

type HealthResponse struct {
	Status       string     `json:"status"`
	Timestamp    string     `json:"timestamp"`
	Provider     string     `json:"provider"`
	Snapshots    int        `json:"snapshots"`
	LastSnapshot *time.Time `json:"last_snapshot,omitempty"`
	Redis        string     `json:"redis"`
}

type HealthHandler struct {
	tracker  *tracker.Tracker
	redis    *redis.Client
	provider string
}

// NewHealthHandler accepts a nil redis client when the cache runs in memory.
func NewHealthHandler(t *tracker.Tracker, rdb *redis.Client, provider string) *HealthHandler {
	return &HealthHandler{tracker: t, redis: rdb, provider: provider}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	redisStatus := "disabled"
	if h.redis != nil {
		if err := h.redis.Ping(r.Context()).Err(); err == nil {
			redisStatus = "connected"
		} else {
			redisStatus = "disconnected"
			logger.Warn("Redis ping failed", "error", err)
		}
	}

	status := "healthy"
	resp := HealthResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Provider:  h.provider,
		Snapshots: h.tracker.Len(),
		Redis:     redisStatus,
	}
	if frame, err := h.tracker.Latest(); err == nil {
		at := frame.War.RetrievedAt
		resp.LastSnapshot = &at
	} else {
		status = "warming_up"
	}
	resp.Status = status

	response.Success(w, http.StatusOK, resp)
}
