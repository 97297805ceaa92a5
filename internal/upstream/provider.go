package upstream

import (
	"context"

	"hd2api/internal/raw"
	"hd2api/internal/shared/config"
	"hd2api/internal/shared/errors"
)

// Provider fetches one complete snapshot from an upstream source. Every
// nested row of the result is stamped with the retrieval time.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (*raw.Snapshot, error)
}

// New returns the provider named by cfg.Provider.
func New(cfg config.UpstreamConfig, limits config.RateLimitConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderDiveharder:
		return NewDiveharder(NewClient(cfg.DiveharderURL, cfg, limits)), nil
	case config.ProviderCommunity:
		return NewCommunity(NewClient(cfg.CommunityURL, cfg, limits), cfg.WarSeason), nil
	case config.ProviderDirect:
		return NewDirect(NewClient(cfg.DirectURL, cfg, limits), cfg.WarSeason, cfg.NewsMaxEntries), nil
	default:
		return nil, errors.Validationf("unknown upstream provider %q", cfg.Provider)
	}
}
