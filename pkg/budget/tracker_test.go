package budget

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Has(t *testing.T) {
	t.Run("allows spending within limit", func(t *testing.T) {
		tracker := NewTracker(100)
		assert.True(t, tracker.Has(100))
		assert.False(t, tracker.Has(101))
	})

	t.Run("zero limit disables the cap", func(t *testing.T) {
		tracker := NewTracker(0)
		assert.True(t, tracker.Has(1_000_000))
		tracker.Spend(1_000_000)
		assert.True(t, tracker.Has(1))
		assert.False(t, tracker.Exhausted())
	})
}

func TestTracker_Spend(t *testing.T) {
	tracker := NewTracker(10)

	assert.True(t, tracker.Spend(5))
	assert.True(t, tracker.Spend(5))
	assert.Equal(t, int64(10), tracker.Spent())
	assert.True(t, tracker.Exhausted())

	// Spend is unconditional; the return flags the overshoot.
	assert.False(t, tracker.Spend(1))
	assert.Equal(t, int64(11), tracker.Spent())
}

func TestTracker_OvershootBound(t *testing.T) {
	// With the check-then-spend protocol, a run can exceed its limit by at
	// most one operation's cost. A single caller stops once the next
	// operation no longer fits: 8 of 10 cents spent, limit not yet reached.
	tracker := NewTracker(10)
	const opCost = int64(4)

	for tracker.Has(opCost) {
		tracker.Spend(opCost)
	}

	assert.LessOrEqual(t, tracker.Spent(), int64(10)+opCost)
	assert.False(t, tracker.Exhausted())
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := NewTracker(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Spend(2)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(100), tracker.Spent())
}
