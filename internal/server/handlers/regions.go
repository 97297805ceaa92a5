package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"hd2api/internal/region"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/response"
	"hd2api/internal/tracker"
)

type RegionHandler struct {
	tracker *tracker.Tracker
}

func NewRegionHandler(t *tracker.Tracker) *RegionHandler {
	return &RegionHandler{tracker: t}
}

// GetAll lists regions. ?planet= narrows the list to one planet.
func (h *RegionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_regions")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	frame, err := h.tracker.Latest()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	regions := frame.Regions
	if planetStr := r.URL.Query().Get("planet"); planetStr != "" {
		index, err := strconv.Atoi(planetStr)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid planet index format", err))
			return
		}
		regions = region.ForPlanet(regions, index)
	}

	if regions == nil {
		regions = []region.Region{}
	}

	response.Success(w, http.StatusOK, regions)
}

func (h *RegionHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_region_trend")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	key := r.PathValue("key")
	if key == "" {
		response.Error(w, r, logger, errors.Validationf("region key is required"))
		return
	}

	trend, err := h.tracker.RegionTrend(key)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, trend)
}
