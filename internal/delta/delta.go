// Package delta holds the arithmetic shared by every aggregate's difference,
// average and projection operators.
//
// Sign convention: a difference is always later minus earlier, so a change
// rate below zero means health is falling toward zero and a rate above zero
// means health is climbing back toward its maximum. Display code reports the
// latter as "loss" because the defenders are regenerating.
package delta

import (
	"math"
	"time"
)

// Stamp is the provenance block embedded in every aggregate. TimeDelta is
// only set on values produced by Sub or Average.
type Stamp struct {
	RetrievedAt time.Time      `json:"retrieved_at"`
	TimeDelta   *time.Duration `json:"time_delta,omitempty"`
}

// At returns a snapshot stamp with no delta.
func At(t time.Time) Stamp {
	return Stamp{RetrievedAt: t}
}

// IsDelta reports whether the stamp belongs to a difference aggregate.
func (s Stamp) IsDelta() bool {
	return s.TimeDelta != nil
}

// Elapsed returns the stored delta, or zero when there is none.
func (s Stamp) Elapsed() time.Duration {
	if s.TimeDelta == nil {
		return 0
	}
	return *s.TimeDelta
}

// Between stamps the difference later - earlier.
func Between(later, earlier Stamp) Stamp {
	d := later.RetrievedAt.Sub(earlier.RetrievedAt)
	return Stamp{RetrievedAt: later.RetrievedAt, TimeDelta: &d}
}

// Mean averages the deltas of stamps over len(stamps). Stamps without a
// delta contribute zero; when none has one the result has none either.
// RetrievedAt comes from the first stamp.
func Mean(stamps []Stamp) Stamp {
	if len(stamps) == 0 {
		return Stamp{}
	}
	var total time.Duration
	var hasDelta bool
	for _, s := range stamps {
		total += s.Elapsed()
		hasDelta = hasDelta || s.IsDelta()
	}
	if !hasDelta {
		return At(stamps[0].RetrievedAt)
	}
	avg := total / time.Duration(len(stamps))
	return Stamp{RetrievedAt: stamps[0].RetrievedAt, TimeDelta: &avg}
}

// FloorDiv divides rounding toward negative infinity, so the mean of -1 and
// -2 is -2 rather than -1.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// MeanInt floor-averages values over count. A zero count yields zero.
func MeanInt(values []int64, count int) int64 {
	if count == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	return FloorDiv(sum, int64(count))
}

// Rate is health change per second. Zero elapsed time yields 0.
func Rate(healthDiff int64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(healthDiff) / seconds
}

// Direction classifies a change rate.
type Direction string

const (
	DirectionStalemate  Direction = "stalemate"
	DirectionTowardZero Direction = "toward_zero"
	DirectionTowardMax  Direction = "toward_max"
)

// DirectionOf maps a change rate onto a Direction.
func DirectionOf(change float64) Direction {
	switch {
	case change > 0:
		return DirectionTowardMax
	case change < 0:
		return DirectionTowardZero
	default:
		return DirectionStalemate
	}
}

// ETA projects when health reaches zero (change < 0) or maxHealth
// (change > 0). A zero change returns from unchanged.
func ETA(from time.Time, health, maxHealth int64, change float64) time.Time {
	var remaining float64
	switch DirectionOf(change) {
	case DirectionTowardMax:
		remaining = float64(maxHealth - health)
	case DirectionTowardZero:
		remaining = float64(health)
	default:
		return from
	}
	seconds := math.Abs(remaining / change)
	return from.Add(time.Duration(seconds * float64(time.Second)))
}

// Projection is the display-ready outcome of a rate estimate.
type Projection struct {
	Change    float64    `json:"change"`
	Direction Direction  `json:"direction"`
	ETA       *time.Time `json:"eta,omitempty"`
}

// Project combines Rate, DirectionOf and ETA. Stalemates carry no ETA.
func Project(from time.Time, health, maxHealth, healthDiff int64, elapsed time.Duration) Projection {
	change := Rate(healthDiff, elapsed)
	p := Projection{Change: change, Direction: DirectionOf(change)}
	if p.Direction != DirectionStalemate {
		eta := ETA(from, health, maxHealth, change)
		p.ETA = &eta
	}
	return p
}

// HealthPercent is health over maxHealth as a percentage; maxHealth below 1
// is treated as 1.
func HealthPercent(health, maxHealth int64) float64 {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return math.Round(float64(health)/float64(maxHealth)*100*1000) / 1000
}
