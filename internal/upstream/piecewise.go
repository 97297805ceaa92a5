package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"hd2api/internal/raw"
	"hd2api/internal/shared/config"
)

// Piecewise assembles a snapshot from the per-section endpoints shared by
// the community mirror and the game's own API. The two differ only in path
// prefix and the news feed page size.
type Piecewise struct {
	name       string
	client     *Client
	prefix     string
	season     int
	newsParams url.Values
}

// NewCommunity targets the community mirror's /raw/api endpoints.
func NewCommunity(client *Client, season int) *Piecewise {
	return &Piecewise{name: config.ProviderCommunity, client: client, prefix: "/raw/api", season: season}
}

// NewDirect targets the game API. maxEntries bounds the news feed.
func NewDirect(client *Client, season, maxEntries int) *Piecewise {
	return &Piecewise{
		name:       config.ProviderDirect,
		client:     client,
		prefix:     "/api",
		season:     season,
		newsParams: url.Values{"maxEntries": {strconv.Itoa(maxEntries)}},
	}
}

func (p *Piecewise) Name() string { return p.name }

func (p *Piecewise) path(format string) string {
	return p.prefix + fmt.Sprintf(format, p.season)
}

// Fetch requests every section concurrently. Status and war info are
// required; the optional sections are logged and left empty on failure.
func (p *Piecewise) Fetch(ctx context.Context) (*raw.Snapshot, error) {
	logger := slog.With("component", "upstream", "operation", "fetch", "provider", p.name)

	var snap raw.Snapshot
	var summary raw.WarSummary
	var orders []raw.Assignment
	var news []raw.NewsFeedItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var status raw.WarStatus
		if err := p.client.getJSON(gctx, p.path("/WarSeason/%d/Status"), nil, &status); err != nil {
			return err
		}
		snap.Status = &status
		return nil
	})
	g.Go(func() error {
		var info raw.WarInfo
		if err := p.client.getJSON(gctx, p.path("/WarSeason/%d/WarInfo"), nil, &info); err != nil {
			return err
		}
		snap.WarInfo = &info
		return nil
	})

	// Optional sections never fail the group.
	var opt errgroup.Group
	opt.Go(func() error {
		if err := p.client.getJSON(ctx, p.path("/Stats/War/%d/Summary"), nil, &summary); err != nil {
			logger.Warn("War summary unavailable", "error", err)
			return nil
		}
		snap.Summary = &summary
		return nil
	})
	opt.Go(func() error {
		if err := p.client.getJSON(ctx, p.path("/v2/Assignment/War/%d"), nil, &orders); err != nil {
			logger.Warn("Assignments unavailable", "error", err)
			return nil
		}
		snap.MajorOrders = orders
		return nil
	})
	opt.Go(func() error {
		if err := p.client.getJSON(ctx, p.path("/NewsFeed/%d"), p.newsParams, &news); err != nil {
			logger.Warn("News feed unavailable", "error", err)
			return nil
		}
		snap.NewsFeed = news
		return nil
	})

	err := g.Wait()
	_ = opt.Wait()
	if err != nil {
		return nil, err
	}

	snap.Stamp(p.client.now())
	logger.Debug("Snapshot assembled",
		"has_summary", snap.Summary != nil,
		"major_orders", len(snap.MajorOrders),
		"news", len(snap.NewsFeed))
	return &snap, nil
}
