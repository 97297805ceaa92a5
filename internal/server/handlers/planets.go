package handlers

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"hd2api/internal/planet"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/response"
	"hd2api/internal/tracker"
)

type PlanetHandler struct {
	tracker *tracker.Tracker
}

func NewPlanetHandler(t *tracker.Tracker) *PlanetHandler {
	return &PlanetHandler{tracker: t}
}

// GetAll lists every planet of the newest snapshot ordered by index.
func (h *PlanetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	frame, err := h.tracker.Latest()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	planets := make([]*planet.Planet, 0, len(frame.Planets))
	for _, index := range slices.Sorted(maps.Keys(frame.Planets)) {
		planets = append(planets, frame.Planets[index])
	}

	response.Success(w, http.StatusOK, planets)
}

func (h *PlanetHandler) GetByIndex(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet")

	index, ok := h.pathIndex(w, r, logger)
	if !ok {
		return
	}

	frame, err := h.tracker.Latest()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	p, found := frame.Planets[index]
	if !found {
		response.Error(w, r, logger, errors.NotFoundf("planet %d not found", index))
		return
	}

	response.Success(w, http.StatusOK, p)
}

func (h *PlanetHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet_trend")

	index, ok := h.pathIndex(w, r, logger)
	if !ok {
		return
	}

	trend, err := h.tracker.PlanetTrend(index)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, trend)
}

func (h *PlanetHandler) GetEventTrend(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_event_trend")

	index, ok := h.pathIndex(w, r, logger)
	if !ok {
		return
	}

	trend, err := h.tracker.EventTrend(index)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, trend)
}

func (h *PlanetHandler) pathIndex(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return 0, false
	}

	indexStr := r.PathValue("index")
	if indexStr == "" {
		response.Error(w, r, logger, errors.Validationf("planet index is required"))
		return 0, false
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid planet index format", err))
		return 0, false
	}
	return index, true
}
