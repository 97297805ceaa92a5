package upstream

import (
	"context"
	"log/slog"

	"hd2api/internal/raw"
	"hd2api/internal/shared/config"
)

// Diveharder fetches everything in one request to /raw/all.
type Diveharder struct {
	client *Client
}

func NewDiveharder(client *Client) *Diveharder {
	return &Diveharder{client: client}
}

func (d *Diveharder) Name() string { return config.ProviderDiveharder }

func (d *Diveharder) Fetch(ctx context.Context) (*raw.Snapshot, error) {
	logger := slog.With("component", "upstream", "operation", "fetch", "provider", d.Name())

	var snap raw.Snapshot
	if err := d.client.getJSON(ctx, "/raw/all", nil, &snap); err != nil {
		return nil, err
	}
	snap.Stamp(d.client.now())

	logger.Debug("Snapshot fetched", "has_status", snap.Status != nil, "has_info", snap.WarInfo != nil)
	return &snap, nil
}
