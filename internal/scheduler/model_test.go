package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planmyday/internal/domain"
)

func solveScenario(
	t *testing.T,
	shiftStart, shiftEnd int,
	activities []domain.Activity,
	lunch domain.LunchBreak,
	blocked []domain.BlockedInterval,
	policy domain.SchedulePolicy,
) Result {
	t.Helper()

	bm, err := BuildModel(shiftStart, shiftEnd, activities, lunch, blocked)
	require.NoError(t, err)

	LinkLunchDeviation(bm, lunch.PreferredStart)
	ComposeObjective(bm, policy)

	solution, status, err := Solve(bm, 5*time.Second)
	require.NoError(t, err)

	return Extract(bm, status, solution, activities, lunch, blocked, policy)
}

func TestOptimize_SimpleDay_FeasibleAndNonOverlapping(t *testing.T) {
	activities := []domain.Activity{
		{ID: "a1", Type: domain.ActivityTask, Title: "Chart review", Duration: 60, Priority: 5},
		{ID: "a2", Type: domain.ActivityAppointment, Title: "Dr. visit", Duration: 30, Priority: 6,
			IsFixed: true, FixedStart: 600},
	}
	lunch := domain.LunchBreak{Duration: 30, PreferredStart: 720}

	result := solveScenario(t, 480, 1020, activities, lunch, nil, domain.PolicyBalanced)

	require.Len(t, result.Schedule, len(activities)+1)
	require.Empty(t, result.UnachievableItems)

	for i := 1; i < len(result.Schedule); i++ {
		assert.GreaterOrEqual(t, result.Schedule[i].SortMinute, result.Schedule[i-1].SortMinute,
			"schedule must be sorted by start minute")
	}

	var fixedRecord *string
	for _, item := range result.Schedule {
		if item.RelatedItemID == "a2" {
			got := item.SlotStartTime
			fixedRecord = &got
		}
	}
	require.NotNil(t, fixedRecord)
	assert.Equal(t, "10:00", *fixedRecord, "fixed-time activity keeps its exact start")
}

func TestOptimize_BlockedIntervalIsRespected(t *testing.T) {
	activities := []domain.Activity{
		{ID: "a1", Type: domain.ActivityTask, Title: "Follow up", Duration: 30, Priority: 5},
	}
	lunch := domain.LunchBreak{Duration: 30, PreferredStart: 720}
	blocked := []domain.BlockedInterval{{Start: 480, End: 960, Reason: "Meeting block"}}

	result := solveScenario(t, 480, 1020, activities, lunch, blocked, domain.PolicyBalanced)

	require.NotEmpty(t, result.Schedule)
	for _, item := range result.Schedule {
		if item.RelatedItemID == "a1" || item.RelatedItemID == "LUNCH" {
			assert.GreaterOrEqual(t, item.SortMinute, 960, "activity must start after the blocked interval ends")
		}
	}
}

func TestOptimize_UnreachableDeadline_ReportsUnachievable(t *testing.T) {
	activities := []domain.Activity{
		{ID: "a1", Type: domain.ActivityFollowUp, Title: "Unreachable", Duration: 120,
			HasDeadline: true, Deadline: 500, Priority: 7},
	}
	lunch := domain.LunchBreak{Duration: 30, PreferredStart: 720}

	result := solveScenario(t, 480, 1020, activities, lunch, nil, domain.PolicyBalanced)

	assert.Empty(t, result.Schedule)
	require.Len(t, result.UnachievableItems, 1)
	assert.Equal(t, "a1", result.UnachievableItems[0].ItemID)
}

func TestOptimize_HighPriorityFirst_PrefersEarlyStartForHighPriority(t *testing.T) {
	activities := []domain.Activity{
		{ID: "low", Type: domain.ActivityTask, Title: "Low priority", Duration: 60, Priority: 3},
		{ID: "high", Type: domain.ActivityTask, Title: "High priority", Duration: 60, Priority: 9},
	}
	lunch := domain.LunchBreak{Duration: 30, PreferredStart: 720}

	result := solveScenario(t, 480, 1020, activities, lunch, nil, domain.PolicyHighPriorityFirst)

	var highStart, lowStart int
	for _, item := range result.Schedule {
		switch item.RelatedItemID {
		case "high":
			highStart = item.SortMinute
		case "low":
			lowStart = item.SortMinute
		}
	}
	assert.LessOrEqual(t, highStart, lowStart, "HIGH_PRIORITY_FIRST should place the high-priority activity no later")
}
