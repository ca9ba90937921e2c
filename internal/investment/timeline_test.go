package investment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseScheduleProportions(t *testing.T) {
	phases := PhaseSchedule(24)
	assert.Len(t, phases, 5)

	assert.Equal(t, "Planning & Permits", phases[0].Phase)
	assert.Equal(t, 3, phases[0].Duration) // floor(24 * 0.15)
	assert.Equal(t, "Site Preparation", phases[1].Phase)
	assert.Equal(t, 2, phases[1].Duration)
	assert.Equal(t, "Construction", phases[2].Phase)
	assert.Equal(t, 12, phases[2].Duration)
	assert.Equal(t, "Finishing & Inspection", phases[3].Phase)
	assert.Equal(t, 3, phases[3].Duration)
	assert.Equal(t, "Marketing & Sale", phases[4].Phase)

	// Rounding shortfall lands on the final phase
	assert.Equal(t, 24, phases[4].EndMonth)
}

func TestPhaseSchedulePartitionsDuration(t *testing.T) {
	for _, totalMonths := range []int{1, 2, 5, 7, 12, 18, 24, 36, 100} {
		phases := PhaseSchedule(totalMonths)
		assert.Len(t, phases, 5)

		assert.Equal(t, 0, phases[0].StartMonth)
		for i := 1; i < len(phases); i++ {
			// Contiguous: each phase starts where the previous ends
			assert.Equal(t, phases[i-1].EndMonth, phases[i].StartMonth,
				"gap or overlap at phase %d for %d months", i, totalMonths)
		}
		assert.Equal(t, totalMonths, phases[len(phases)-1].EndMonth,
			"schedule must consume the full %d months", totalMonths)

		for _, p := range phases {
			assert.Equal(t, p.EndMonth-p.StartMonth, p.Duration)
			assert.GreaterOrEqual(t, p.Duration, 0)
		}
	}
}

func TestPhaseScheduleInvalidDuration(t *testing.T) {
	assert.Nil(t, PhaseSchedule(0))
	assert.Nil(t, PhaseSchedule(-3))
}
