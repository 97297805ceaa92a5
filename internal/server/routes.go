package server

import (
	"log/slog"
	"net/http"

	serverHandlers "hd2api/internal/server/handlers"
	"hd2api/internal/shared/redis"
	"hd2api/internal/tracker"
)

type Routes struct {
	tracker  *tracker.Tracker
	redis    *redis.Client
	provider string
}

func NewRoutes(t *tracker.Tracker, rdb *redis.Client, provider string) *Routes {
	return &Routes{
		tracker:  t,
		redis:    rdb,
		provider: provider,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.tracker, r.redis, r.provider)
	warHandler := serverHandlers.NewWarHandler(r.tracker)
	planetHandler := serverHandlers.NewPlanetHandler(r.tracker)
	regionHandler := serverHandlers.NewRegionHandler(r.tracker)
	listingHandler := serverHandlers.NewListingHandler(r.tracker)

	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/war", warHandler)

	mux.HandleFunc("/api/planets", planetHandler.GetAll)
	mux.HandleFunc("/api/planets/{index}", planetHandler.GetByIndex)
	mux.HandleFunc("/api/planets/{index}/trend", planetHandler.GetTrend)
	mux.HandleFunc("/api/planets/{index}/event/trend", planetHandler.GetEventTrend)

	mux.HandleFunc("/api/regions", regionHandler.GetAll)
	mux.HandleFunc("/api/regions/{key}/trend", regionHandler.GetTrend)

	mux.HandleFunc("/api/campaigns", listingHandler.GetCampaigns)
	mux.HandleFunc("/api/sectors", listingHandler.GetSectors)
	mux.HandleFunc("/api/assignments", listingHandler.GetAssignments)

	logger.Info("Routes configured successfully",
		"endpoints", []string{
			"/api/server/health", "/api/war",
			"/api/planets", "/api/planets/{index}", "/api/planets/{index}/trend", "/api/planets/{index}/event/trend",
			"/api/regions", "/api/regions/{key}/trend",
			"/api/campaigns", "/api/sectors", "/api/assignments",
		},
	)

	return mux
}
