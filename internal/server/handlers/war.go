package handlers

import (
	"log/slog"
	"net/http"

	"hd2api/internal/galaxy"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/response"
	"hd2api/internal/tracker"
)

type WarResponse struct {
	War   *galaxy.War `json:"war"`
	Delta *galaxy.War `json:"delta,omitempty"`
}

type WarHandler struct {
	tracker *tracker.Tracker
}

func NewWarHandler(t *tracker.Tracker) *WarHandler {
	return &WarHandler{tracker: t}
}

func (h *WarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_war")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	frame, err := h.tracker.Latest()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	resp := WarResponse{War: frame.War}
	// A single snapshot has no delta yet
	if diff, err := h.tracker.WarDelta(); err == nil {
		resp.Delta = diff
	}

	response.Success(w, http.StatusOK, resp)
}
