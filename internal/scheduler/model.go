package scheduler

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"

	"github.com/alexanderramin/planmyday/internal/domain"
)

// minutesPerDay is used as the big-M constant in the pairwise disjunction
// constraints below: no two start-minute variables in this model are ever
// more than a day apart, so it safely dominates every slack term.
const minutesPerDay = 1440

// modelInterval is the uniform representation every schedulable item is
// reduced to before the non-overlap constraints are built: a start
// variable plus a constant duration. An Activity with a narrow domain, a
// fixed-time activity, the lunch break, and a blocked-out interval all
// become one of these; the pairwise disjunction code below never needs to
// know which.
type modelInterval struct {
	label    string
	start    mip.Float
	duration int
}

// BuiltModel is the MIP formulation of one optimize request: variables,
// non-overlap and deadline constraints, ready for ComposeObjective and
// then Solve.
type BuiltModel struct {
	Model mip.Model

	ActivityStarts map[string]mip.Float
	LunchStart     mip.Float
	LunchDeviation mip.Float

	activities []domain.Activity
	intervals  []modelInterval
}

// BuildModel constructs the variables and structural constraints shared by
// every objective: start-domain bounds, global non-overlap across
// activities, lunch and blocked time, and per-activity deadlines.
func BuildModel(
	shiftStart, shiftEnd int,
	activities []domain.Activity,
	lunch domain.LunchBreak,
	blocked []domain.BlockedInterval,
) (*BuiltModel, error) {
	if shiftEnd <= shiftStart {
		return nil, fmt.Errorf("scheduler: shift end %d must be after shift start %d", shiftEnd, shiftStart)
	}

	m := mip.NewModel()
	m.Objective().SetMinimize()

	bm := &BuiltModel{
		Model:          m,
		ActivityStarts: make(map[string]mip.Float, len(activities)),
		activities:     activities,
	}

	for _, a := range activities {
		d := activityDomain(shiftStart, shiftEnd, a)
		start := m.NewFloat(float64(d.lo), float64(d.hi))
		bm.ActivityStarts[a.ID] = start
		bm.intervals = append(bm.intervals, modelInterval{label: "activity:" + a.ID, start: start, duration: a.Duration})

		if a.HasDeadline {
			deadline := m.NewConstraint(mip.LessThanOrEqual, float64(a.Deadline-a.Duration))
			deadline.NewTerm(1.0, start)
		}
	}

	ld := lunchDomain(shiftStart, shiftEnd, lunch.Duration)
	lunchStart := m.NewFloat(float64(ld.lo), float64(ld.hi))
	bm.LunchStart = lunchStart
	bm.intervals = append(bm.intervals, modelInterval{label: "lunch", start: lunchStart, duration: lunch.Duration})

	for i, b := range blocked {
		duration := b.End - b.Start
		if duration <= 0 {
			continue
		}
		fixed := m.NewFloat(float64(b.Start), float64(b.Start))
		bm.intervals = append(bm.intervals, modelInterval{
			label:    fmt.Sprintf("blocked:%d", i),
			start:    fixed,
			duration: duration,
		})
	}

	for i := 0; i < len(bm.intervals); i++ {
		for j := i + 1; j < len(bm.intervals); j++ {
			addNoOverlap(m, bm.intervals[i], bm.intervals[j])
		}
	}

	bm.LunchDeviation = m.NewFloat(0, float64(shiftEnd))

	return bm, nil
}

// addNoOverlap forbids a and b from occupying overlapping time, the MIP
// disjunctive-scheduling encoding of what the CP-SAT original expresses
// with a single AddNoOverlap call over interval variables: exactly one of
// "a finishes before b starts" or "b finishes before a starts" must hold,
// switched by a fresh order boolean and a big-M relaxation of the other
// side.
func addNoOverlap(m mip.Model, a, b modelInterval) {
	order := m.NewBool()

	// a.start + a.duration - b.start <= M*(1-order)
	before := m.NewConstraint(mip.LessThanOrEqual, float64(minutesPerDay-a.duration))
	before.NewTerm(1.0, a.start)
	before.NewTerm(-1.0, b.start)
	before.NewTerm(float64(minutesPerDay), order)

	// b.start + b.duration - a.start <= M*order
	after := m.NewConstraint(mip.LessThanOrEqual, float64(-b.duration))
	after.NewTerm(-1.0, a.start)
	after.NewTerm(1.0, b.start)
	after.NewTerm(float64(-minutesPerDay), order)
}
