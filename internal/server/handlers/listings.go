package handlers

import (
	"log/slog"
	"net/http"

	"hd2api/internal/assignment"
	"hd2api/internal/campaign"
	"hd2api/internal/sector"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/response"
	"hd2api/internal/tracker"
)

// ListingHandler serves the aggregates that are returned whole from the
// newest frame.
type ListingHandler struct {
	tracker *tracker.Tracker
}

func NewListingHandler(t *tracker.Tracker) *ListingHandler {
	return &ListingHandler{tracker: t}
}

func (h *ListingHandler) latest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*tracker.Frame, bool) {
	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return nil, false
	}
	frame, err := h.tracker.Latest()
	if err != nil {
		response.Error(w, r, logger, err)
		return nil, false
	}
	return frame, true
}

func (h *ListingHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.latest(w, r, slog.With("handler", "get_campaigns"))
	if !ok {
		return
	}
	campaigns := frame.Campaigns
	if campaigns == nil {
		campaigns = []campaign.Campaign{}
	}
	response.Success(w, http.StatusOK, campaigns)
}

func (h *ListingHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.latest(w, r, slog.With("handler", "get_sectors"))
	if !ok {
		return
	}
	sectors := frame.Sectors
	if sectors == nil {
		sectors = []sector.State{}
	}
	response.Success(w, http.StatusOK, sectors)
}

func (h *ListingHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.latest(w, r, slog.With("handler", "get_assignments"))
	if !ok {
		return
	}
	assignments := frame.Assignments
	if assignments == nil {
		assignments = []assignment.Assignment{}
	}
	response.Success(w, http.StatusOK, assignments)
}
