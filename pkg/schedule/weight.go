// Package schedule decides which sources a run fetches and in what order,
// under the weight × cadence × budget policy.
package schedule

import (
	"math"
	"time"
)

// Weight bounds. Sources never score outside [0.1, 1.0]; a floor keeps even
// long-quiet sources occasionally revisited.
const (
	weightFloor   = 0.1
	weightCeiling = 1.0
	coldStart     = 0.5
)

// decayHalfLife is the half-life applied to the weight for time since the
// source last produced a signal.
const decayHalfLife = 30 * 24 * time.Hour

// ComputeWeight derives a source's scheduling weight from its production
// history. Pure: same inputs, same output.
func ComputeWeight(totalSignals, corroborated, scrapeCount, tensionCount int, lastProduced *time.Time, now time.Time) float64 {
	w := coldStart

	if scrapeCount > 0 {
		w += math.Min(0.4, float64(totalSignals)/float64(scrapeCount)*0.1)
	}
	w += math.Min(0.2, float64(corroborated)*0.02)
	w += math.Min(0.2, float64(tensionCount)*0.05)

	if lastProduced != nil {
		age := now.Sub(*lastProduced)
		if age > 0 {
			halfLives := float64(age) / float64(decayHalfLife)
			w -= w * (1 - math.Pow(0.5, halfLives))
		}
	}

	return math.Min(weightCeiling, math.Max(weightFloor, w))
}

// freshnessBonus boosts sources that produced recently: full boost inside a
// day, tapering to 1.0 (no boost) at the decay half-life.
func freshnessBonus(lastProduced *time.Time, now time.Time) float64 {
	if lastProduced == nil {
		return 1.0
	}
	age := now.Sub(*lastProduced)
	if age <= 24*time.Hour {
		return 1.25
	}
	if age >= decayHalfLife {
		return 1.0
	}
	frac := 1 - float64(age)/float64(decayHalfLife)
	return 1.0 + 0.25*frac
}
