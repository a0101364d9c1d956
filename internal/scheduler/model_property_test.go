package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planmyday/internal/domain"
)

// randomActivity builds a schedulable but not necessarily feasible
// activity from the given rng, biased toward small durations so a
// randomized set is likely to fit inside a 9-hour shift.
func randomActivity(rng *rand.Rand, idx int, shiftStart, shiftEnd int) domain.Activity {
	a := domain.Activity{
		ID:       fmt.Sprintf("gen_%d", idx),
		Type:     domain.ActivityTask,
		Duration: 15 + rng.Intn(6)*15, // 15..90 in 15-minute steps
		Priority: 1 + rng.Intn(10),
		Title:    fmt.Sprintf("Generated activity %d", idx),
	}

	switch rng.Intn(4) {
	case 0:
		a.IsFixed = true
		a.FixedStart = shiftStart + rng.Intn(shiftEnd-shiftStart-a.Duration+1)
	case 1:
		a.HasDeadline = true
		earliest := shiftStart + a.Duration
		a.Deadline = earliest + rng.Intn(shiftEnd-earliest+1)
	}

	if rng.Intn(3) == 0 {
		a.PatientID = fmt.Sprintf("patient_%d", rng.Intn(5))
	}

	return a
}

// randomScenario generates a count of loosely-packed activities sized so
// the shift has a good chance of fitting them, keeping the feasible rate
// high enough that the invariant checks below exercise real schedules
// rather than mostly-infeasible ones.
func randomScenario(rng *rand.Rand, shiftStart, shiftEnd, count int) []domain.Activity {
	activities := make([]domain.Activity, 0, count)
	for i := 0; i < count; i++ {
		activities = append(activities, randomActivity(rng, i, shiftStart, shiftEnd))
	}
	return activities
}

func TestOptimize_RandomizedScenarios_InvariantsHold(t *testing.T) {
	const shiftStart, shiftEnd = 480, 1020 // 08:00-17:00
	lunch := domain.LunchBreak{Duration: 30, PreferredStart: 720}

	policies := []domain.SchedulePolicy{
		domain.PolicyBalanced,
		domain.PolicyHighPriorityFirst,
		domain.PolicyCriticalPatientFocused,
		domain.PolicyPatientContextFocused,
		domain.PolicySimilarTaskFirst,
	}

	rng := rand.New(rand.NewSource(20260730))

	for trial := 0; trial < 40; trial++ {
		count := 2 + rng.Intn(4)
		activities := randomScenario(rng, shiftStart, shiftEnd, count)
		policy := policies[rng.Intn(len(policies))]

		t.Run(fmt.Sprintf("trial_%d_%s", trial, policy), func(t *testing.T) {
			boosted := make([]domain.Activity, len(activities))
			copy(boosted, activities)
			ApplyPolicyBoosts(boosted, policy)

			bm, err := BuildModel(shiftStart, shiftEnd, boosted, lunch, nil)
			require.NoError(t, err)

			LinkLunchDeviation(bm, lunch.PreferredStart)
			ComposeObjective(bm, policy)

			solution, status, err := Solve(bm, 5*time.Second)
			require.NoError(t, err)

			result := Extract(bm, status, solution, boosted, lunch, nil, policy)

			if status != StatusSuccess {
				require.Len(t, result.UnachievableItems, len(boosted))
				require.Empty(t, result.Schedule)
				return
			}

			require.Len(t, result.Schedule, len(boosted)+1)
			require.Empty(t, result.UnachievableItems)
			require.GreaterOrEqual(t, result.OptimizationScore, 0.0)

			ends := make(map[string]int, len(result.Schedule))
			for _, item := range result.Schedule {
				start, err := toMinutes(item.SlotStartTime)
				require.NoError(t, err)
				end, err := toMinutes(item.SlotEndTime)
				require.NoError(t, err)

				require.GreaterOrEqual(t, start, shiftStart, "item %s starts before shift", item.RelatedItemID)
				require.LessOrEqual(t, end, shiftEnd, "item %s ends after shift", item.RelatedItemID)
				ends[item.RelatedItemID] = end
			}

			for i := 1; i < len(result.Schedule); i++ {
				require.GreaterOrEqual(t, result.Schedule[i].SortMinute, result.Schedule[i-1].SortMinute)
			}

			for i := 0; i < len(result.Schedule); i++ {
				for j := i + 1; j < len(result.Schedule); j++ {
					a, b := result.Schedule[i], result.Schedule[j]
					aStart, _ := toMinutes(a.SlotStartTime)
					bStart, _ := toMinutes(b.SlotStartTime)
					aEnd, bEnd := ends[a.RelatedItemID], ends[b.RelatedItemID]
					overlap := aStart < bEnd && bStart < aEnd
					require.False(t, overlap, "items %s and %s overlap", a.RelatedItemID, b.RelatedItemID)
				}
			}

			starts := make(map[string]int, len(result.Schedule))
			for _, item := range result.Schedule {
				start, _ := toMinutes(item.SlotStartTime)
				starts[item.RelatedItemID] = start
			}
			for _, a := range boosted {
				if a.IsFixed {
					require.Equal(t, a.FixedStart, starts[a.ID], "fixed activity %s kept its exact start", a.ID)
				}
				if a.HasDeadline {
					require.LessOrEqual(t, starts[a.ID]+a.Duration, a.Deadline, "activity %s missed its deadline", a.ID)
				}
			}
		})
	}
}

func toMinutes(hhmm string) (int, error) {
	var h, m int
	_, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
