package schedule

import (
	"math"

	"github.com/fourthplaces/rootsignal/pkg/models"
)

// Cadence bounds in hours. High-weight sources come back every 6 hours;
// dead weight drifts toward 72 and backs off exponentially on empty runs.
const (
	cadenceMinHours    = 6
	cadenceSpreadHours = 66
	cadenceMaxHours    = 168
	curatedMaxHours    = 48
	emptyBackoffFactor = 1.5
)

// CadenceHours is the pure function from (weight, consecutive empty runs,
// discovery method) to the minimum hours between scrapes of a source.
func CadenceHours(weight float64, consecutiveEmpty int, discovery models.DiscoveryMethod) int {
	base := math.Round(cadenceMinHours + (1-weight)*cadenceSpreadHours)
	hours := base * math.Pow(emptyBackoffFactor, float64(consecutiveEmpty))

	cap := float64(cadenceMaxHours)
	if discovery == models.DiscoveryCurated {
		cap = curatedMaxHours
	}
	if hours > cap {
		hours = cap
	}
	return int(math.Round(hours))
}
