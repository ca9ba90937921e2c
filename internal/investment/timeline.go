package investment

import "bayouhomes/server/internal/models"

// phaseSplit is the fixed proportional schedule applied to every project.
var phaseSplit = []struct {
	name string
	pct  float64
}{
	{"Planning & Permits", 0.15},
	{"Site Preparation", 0.10},
	{"Construction", 0.50},
	{"Finishing & Inspection", 0.15},
	{"Marketing & Sale", 0.10},
}

// PhaseSchedule splits a project duration into the standard phases. Phases
// are laid out contiguously from month 0; rounding shortfall is absorbed by
// extending the final phase, so the schedule always partitions the full
// duration with no gap. totalMonths must be at least 1.
func PhaseSchedule(totalMonths int) []models.TimelinePhase {
	if totalMonths < 1 {
		return nil
	}

	phases := make([]models.TimelinePhase, 0, len(phaseSplit))
	start := 0
	for i, p := range phaseSplit {
		duration := int(float64(totalMonths) * p.pct)
		end := start + duration
		if i == len(phaseSplit)-1 && end < totalMonths {
			end = totalMonths
			duration = end - start
		}
		phases = append(phases, models.TimelinePhase{
			Phase:      p.name,
			StartMonth: start,
			EndMonth:   end,
			Duration:   duration,
		})
		start = end
	}
	return phases
}
