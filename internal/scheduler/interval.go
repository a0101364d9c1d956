package scheduler

import (
	"github.com/alexanderramin/planmyday/internal/domain"
)

// startDomain is the inclusive [lo, hi] range a start minute may take,
// computed by activityDomain for an Activity and by lunchDomain for the
// LunchBreak. BlockedIntervals do not use it: BuildModel pins their start
// directly.
type startDomain struct {
	lo, hi int
}

// activityDomain computes an activity's start domain per the fixed-time,
// deadline, and shift-bound rules. When fixed-time and deadline
// constraints leave no valid domain, hi collapses to lo rather than
// producing lo > hi — the resulting degenerate interval typically
// drives the whole model infeasible, which the Solution Extractor
// diagnoses rather than the domain computation itself.
func activityDomain(shiftStart, shiftEnd int, a domain.Activity) startDomain {
	lo := shiftStart
	hi := shiftEnd - a.Duration
	if hi < shiftStart {
		hi = shiftStart
	}

	if a.IsFixed {
		lo = a.FixedStart
		hi = a.FixedStart
	}

	if a.HasDeadline {
		deadlineHi := a.Deadline - a.Duration
		if deadlineHi < hi {
			hi = deadlineHi
		}
	}

	if lo > hi {
		hi = lo
	}
	return startDomain{lo: lo, hi: hi}
}

// lunchDomain computes the lunch break's start domain: anywhere in the
// shift that leaves room for its full duration.
func lunchDomain(shiftStart, shiftEnd, lunchDuration int) startDomain {
	hi := shiftEnd - lunchDuration
	if hi < shiftStart {
		hi = shiftStart
	}
	return startDomain{lo: shiftStart, hi: hi}
}
