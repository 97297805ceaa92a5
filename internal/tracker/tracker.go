package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/event"
	"hd2api/internal/galaxy"
	"hd2api/internal/planet"
	"hd2api/internal/region"
	"hd2api/internal/shared/errors"
	"hd2api/internal/static"
	"hd2api/internal/upstream"
)

// Trend is the latest value of an aggregate together with the average of
// the differences between consecutive retained frames. Diff is nil until
// two frames carry the aggregate.
type Trend[T any] struct {
	Latest     T                `json:"latest"`
	Diff       *T               `json:"diff"`
	Samples    int              `json:"samples"`
	Projection delta.Projection `json:"projection"`
}

// Tracker keeps the last few frames in memory. Nothing is persisted.
type Tracker struct {
	provider upstream.Provider
	statics  *static.All
	builder  *planet.Builder
	history  int

	mu     sync.RWMutex
	frames []*Frame
}

func New(provider upstream.Provider, statics *static.All, builder *planet.Builder, history int) *Tracker {
	return &Tracker{
		provider: provider,
		statics:  statics,
		builder:  builder,
		history:  max(history, 2),
	}
}

// Record fetches a snapshot, builds a frame and retains it.
func (t *Tracker) Record(ctx context.Context) (*Frame, error) {
	logger := slog.With("component", "tracker", "operation", "record", "provider", t.provider.Name())

	snap, err := t.provider.Fetch(ctx)
	if err != nil {
		logger.Warn("Snapshot fetch failed", "error", err)
		return nil, err
	}
	frame, err := BuildFrame(snap, t.statics, t.builder)
	if err != nil {
		logger.Warn("Snapshot could not be built", "error", err)
		return nil, err
	}
	t.Push(frame)

	logger.Info("Snapshot recorded",
		"retrieved_at", snap.RetrievedAt,
		"planets", len(frame.Planets),
		"regions", len(frame.Regions))
	return frame, nil
}

// Push retains frame, dropping the oldest beyond the history bound. A frame
// with the same retrieval time as the newest replaces it.
func (t *Tracker) Push(frame *Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.frames); n > 0 && t.frames[n-1].War.RetrievedAt.Equal(frame.War.RetrievedAt) {
		t.frames[n-1] = frame
		return
	}
	t.frames = append(t.frames, frame)
	if excess := len(t.frames) - t.history; excess > 0 {
		t.frames = append([]*Frame(nil), t.frames[excess:]...)
	}
}

// Run records immediately and then every interval until ctx ends.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	logger := slog.With("component", "tracker", "operation", "run", "interval", interval)
	logger.Info("Tracker started")

	_, _ = t.Record(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Tracker stopped")
			return
		case <-ticker.C:
			_, _ = t.Record(ctx)
		}
	}
}

func (t *Tracker) snapshot() []*Frame {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*Frame(nil), t.frames...)
}

// Latest returns the newest frame.
func (t *Tracker) Latest() (*Frame, error) {
	frames := t.snapshot()
	if len(frames) == 0 {
		return nil, errors.Unavailable("no snapshot recorded yet")
	}
	return frames[len(frames)-1], nil
}

// Len is the number of retained frames.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.frames)
}

// consecutiveDiffs pairs each frame with the one before it and collects
// later.Sub(earlier) wherever pick finds the aggregate in both.
func consecutiveDiffs[T any](frames []*Frame, pick func(*Frame) (T, bool), sub func(later, earlier T) T) []T {
	var diffs []T
	for i := 1; i < len(frames); i++ {
		earlier, ok := pick(frames[i-1])
		if !ok {
			continue
		}
		later, ok := pick(frames[i])
		if !ok {
			continue
		}
		diffs = append(diffs, sub(later, earlier))
	}
	return diffs
}

// PlanetTrend reports the latest planet and its averaged health change.
func (t *Tracker) PlanetTrend(index int) (*Trend[planet.Planet], error) {
	frames := t.snapshot()
	if len(frames) == 0 {
		return nil, errors.Unavailable("no snapshot recorded yet")
	}
	pick := func(f *Frame) (planet.Planet, bool) {
		p, ok := f.Planets[index]
		if !ok || p == nil {
			return planet.Planet{}, false
		}
		return *p, true
	}
	latest, ok := pick(frames[len(frames)-1])
	if !ok {
		return nil, errors.NotFoundf("planet %d not found", index)
	}

	trend := &Trend[planet.Planet]{Latest: latest, Projection: delta.Projection{Direction: delta.DirectionStalemate}}
	diffs := consecutiveDiffs(frames, pick, func(a, b planet.Planet) planet.Planet { return a.Sub(b) })
	if len(diffs) > 0 {
		avg := planet.Average(diffs)
		trend.Diff = &avg
		trend.Samples = len(diffs)
		trend.Projection = latest.Estimate(avg)
	}
	return trend, nil
}

// RegionTrend reports the latest region by composite key.
func (t *Tracker) RegionTrend(key string) (*Trend[region.Region], error) {
	frames := t.snapshot()
	if len(frames) == 0 {
		return nil, errors.Unavailable("no snapshot recorded yet")
	}
	pick := func(f *Frame) (region.Region, bool) {
		for _, r := range f.Regions {
			if r.Key == key {
				return r, true
			}
		}
		return region.Region{}, false
	}
	latest, ok := pick(frames[len(frames)-1])
	if !ok {
		return nil, errors.NotFoundf("region %s not found", key)
	}

	trend := &Trend[region.Region]{Latest: latest, Projection: delta.Projection{Direction: delta.DirectionStalemate}}
	diffs := consecutiveDiffs(frames, pick, func(a, b region.Region) region.Region { return a.Sub(b) })
	if len(diffs) > 0 {
		avg := region.Average(diffs)
		trend.Diff = &avg
		trend.Samples = len(diffs)
		trend.Projection = latest.Estimate(avg)
	}
	return trend, nil
}

// EventTrend reports the event on a planet. Only frames carrying the same
// event id as the latest one contribute.
func (t *Tracker) EventTrend(index int) (*Trend[event.Event], error) {
	frames := t.snapshot()
	if len(frames) == 0 {
		return nil, errors.Unavailable("no snapshot recorded yet")
	}
	current := frames[len(frames)-1].Planets[index]
	if current == nil || current.Event == nil {
		return nil, errors.NotFoundf("no active event on planet %d", index)
	}
	id := current.Event.ID
	pick := func(f *Frame) (event.Event, bool) {
		p := f.Planets[index]
		if p == nil || p.Event == nil || p.Event.ID != id {
			return event.Event{}, false
		}
		return *p.Event, true
	}

	latest := *current.Event
	trend := &Trend[event.Event]{Latest: latest, Projection: delta.Projection{Direction: delta.DirectionStalemate}}
	diffs := consecutiveDiffs(frames, pick, func(a, b event.Event) event.Event { return a.Sub(b) })
	if len(diffs) > 0 {
		avg := event.Average(diffs)
		trend.Diff = &avg
		trend.Samples = len(diffs)
		trend.Projection = latest.Estimate(avg)
	}
	return trend, nil
}

// WarDelta is the newest war summary minus the one before it.
func (t *Tracker) WarDelta() (*galaxy.War, error) {
	frames := t.snapshot()
	if len(frames) < 2 {
		return nil, errors.Unavailable("need two snapshots for a war delta")
	}
	diff := frames[len(frames)-1].War.Sub(*frames[len(frames)-2].War)
	return &diff, nil
}
