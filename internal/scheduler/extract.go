package scheduler

import (
	"fmt"
	"sort"

	"github.com/nextmv-io/sdk/mip"

	"github.com/alexanderramin/planmyday/internal/app"
	"github.com/alexanderramin/planmyday/internal/domain"
)

// lunchDeviationWarningThreshold is the minute tolerance past which a
// placed lunch start, however optimal, is still worth flagging to the
// caller.
const lunchDeviationWarningThreshold = 15

// Result is everything the Solution Extractor produces from one solved
// (or unsolved) model: the three output lists plus the recomputed score,
// ready to drop straight into an app.OptimizeResponse.
type Result struct {
	Schedule          []app.ScheduleItem
	UnachievableItems []app.UnachievableItem
	OptimizationScore float64
	Warnings          []string
}

// Extract turns a solved model into the output shape. On SUCCESS every
// activity, the lunch break, and every blocked interval becomes a
// schedule record, sorted by start minute. On INFEASIBLE or UNKNOWN every
// activity becomes an unachievable record instead and the schedule is
// empty, mirroring the original's presence-gated emission with every
// presence forced false.
func Extract(
	bm *BuiltModel,
	status SolveStatus,
	solution mip.Solution,
	activities []domain.Activity,
	lunch domain.LunchBreak,
	blocked []domain.BlockedInterval,
	policy domain.SchedulePolicy,
) Result {
	if status != StatusSuccess {
		return extractUnachievable(status, activities)
	}

	items := make([]app.ScheduleItem, 0, len(activities)+len(blocked)+1)
	starts := make(map[string]int, len(activities))

	for _, a := range activities {
		start := int(solution.Value(bm.ActivityStarts[a.ID]) + 0.5)
		starts[a.ID] = start
		items = append(items, app.ScheduleItem{
			SlotStartTime: formatMinutes(start),
			SlotEndTime:   formatMinutes(start + a.Duration),
			ActivityType:  a.Type.String(),
			Title:         a.Title,
			Details:       activityDetails(a),
			RelatedItemID: a.ID,
			SortMinute:    start,
		})
	}

	lunchStart := int(solution.Value(bm.LunchStart) + 0.5)
	items = append(items, app.ScheduleItem{
		SlotStartTime: formatMinutes(lunchStart),
		SlotEndTime:   formatMinutes(lunchStart + lunch.Duration),
		ActivityType:  "Break",
		Title:         "Lunch Break",
		Details:       "",
		RelatedItemID: "LUNCH",
		SortMinute:    lunchStart,
	})

	for i, b := range blocked {
		if b.End-b.Start <= 0 {
			continue
		}
		title := b.Reason
		if title == "" {
			title = "Blocked Time"
		}
		items = append(items, app.ScheduleItem{
			SlotStartTime: formatMinutes(b.Start),
			SlotEndTime:   formatMinutes(b.End),
			ActivityType:  "Blocked",
			Title:         title,
			Details:       "",
			RelatedItemID: fmt.Sprintf("BLOCK_%d", i),
			SortMinute:    b.Start,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].SortMinute < items[j].SortMinute })

	var warnings []string
	deviation := lunchStart - lunch.PreferredStart
	if deviation < 0 {
		deviation = -deviation
	}
	if deviation > lunchDeviationWarningThreshold {
		warnings = append(warnings, "Lunch break scheduled more than 15 minutes from preferred time.")
	}

	return Result{
		Schedule:          items,
		UnachievableItems: []app.UnachievableItem{},
		OptimizationScore: recomputeScore(activities, starts, policy, deviation),
		Warnings:          warnings,
	}
}

// recomputeScore rebuilds the spec-exact integer optimization score from
// the extracted solution, rather than trusting the solver's own
// ObjectiveValue: the MIP model scores each policy term with real-valued
// coefficients so HiGHS can work with a continuous relaxation internally,
// but the reported score follows the original's integer-division
// arithmetic exactly, following the same branch-then-fallback structure
// as ComposeObjective.
func recomputeScore(activities []domain.Activity, starts map[string]int, policy domain.SchedulePolicy, lunchDeviation int) float64 {
	score := lunchDeviation
	termsAdded := 0

	switch policy {
	case domain.PolicyHighPriorityFirst:
		if term, ok := highPrioritySum(activities, starts); ok {
			score += term
			termsAdded++
		}
	case domain.PolicyCriticalPatientFocused:
		if term, ok := criticalSum(activities, starts); ok {
			score += term
			termsAdded++
		}
	case domain.PolicyPatientContextFocused, domain.PolicySimilarTaskFirst:
		termsAdded++
	}

	if termsAdded == 0 {
		if term, ok := highPrioritySum(activities, starts); ok {
			score += term
		}
	}

	return float64(score)
}

func highPrioritySum(activities []domain.Activity, starts map[string]int) (int, bool) {
	sum := 0
	found := false
	for _, a := range activities {
		if a.Priority < 8 {
			continue
		}
		start, ok := starts[a.ID]
		if !ok {
			continue
		}
		sum += start
		found = true
	}
	if !found {
		return 0, false
	}
	return sum / 10, true
}

func criticalSum(activities []domain.Activity, starts map[string]int) (int, bool) {
	sum := 0
	found := false
	for _, a := range activities {
		if !isCriticalType(a.Type) {
			continue
		}
		start, ok := starts[a.ID]
		if !ok {
			continue
		}
		sum += start
		found = true
	}
	if !found {
		return 0, false
	}
	return sum / 5, true
}

func extractUnachievable(status SolveStatus, activities []domain.Activity) Result {
	unachievable := make([]app.UnachievableItem, 0, len(activities))
	for _, a := range activities {
		unachievable = append(unachievable, app.UnachievableItem{
			ItemID:   a.ID,
			ItemType: a.Type.String(),
			Reason:   "No feasible schedule found.",
		})
	}

	return Result{
		Schedule:          []app.ScheduleItem{},
		UnachievableItems: unachievable,
		OptimizationScore: 0,
		Warnings:          []string{"No feasible schedule could be generated with the given constraints."},
	}
}

func activityDetails(a domain.Activity) string {
	location := a.Location
	if location == "" {
		location = "N/A"
	}
	patientID := a.PatientID
	if patientID == "" {
		patientID = "N/A"
	}
	return fmt.Sprintf("Location: %s, Patient: %s", location, patientID)
}

func formatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	h := (total / 60) % 24
	m := total % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
