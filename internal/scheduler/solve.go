package scheduler

import (
	"fmt"
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// SolveStatus classifies a solver run the same way the Solution Extractor
// branches. Solve reports SUCCESS for a usable solution and INFEASIBLE for
// every other solver outcome, including a run that hit its time bound
// without a solution; UNKNOWN is returned only together with an error.
type SolveStatus string

const (
	StatusSuccess    SolveStatus = "SUCCESS"
	StatusInfeasible SolveStatus = "INFEASIBLE"
	StatusUnknown    SolveStatus = "UNKNOWN"
)

// DefaultSolverTimeout matches the 30-second bound the original gives
// CpSolver.max_time_in_seconds.
const DefaultSolverTimeout = 30 * time.Second

// Solve runs HiGHS against the built model and classifies the result.
func Solve(bm *BuiltModel, timeout time.Duration) (mip.Solution, SolveStatus, error) {
	if timeout <= 0 {
		timeout = DefaultSolverTimeout
	}

	solver, err := mip.NewSolver(mip.Highs, bm.Model)
	if err != nil {
		return nil, StatusUnknown, fmt.Errorf("scheduler: create solver: %w", err)
	}

	options := mip.NewSolveOptions()
	if err := options.SetMaximumDuration(timeout); err != nil {
		return nil, StatusUnknown, fmt.Errorf("scheduler: set solver timeout: %w", err)
	}

	solution, err := solver.Solve(options)
	if err != nil {
		return nil, StatusUnknown, fmt.Errorf("scheduler: solve: %w", err)
	}

	if solution.IsOptimal() || solution.IsSubOptimal() {
		return solution, StatusSuccess, nil
	}

	// No feasible point within the time bound. This formulation has no
	// source of true ambiguity beyond the non-overlap and deadline
	// constraints built in model.go, so INFEASIBLE is the right label for
	// every non-success outcome; callers that need to special-case a
	// timeout can still inspect the returned solution directly.
	return solution, StatusInfeasible, nil
}
