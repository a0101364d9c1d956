package scheduler

import (
	"testing"

	"github.com/alexanderramin/planmyday/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestActivityDomain_Default(t *testing.T) {
	a := domain.Activity{Duration: 30}
	d := activityDomain(480, 1020, a) // 08:00-17:00
	assert.Equal(t, 480, d.lo)
	assert.Equal(t, 990, d.hi)
}

func TestActivityDomain_Fixed(t *testing.T) {
	a := domain.Activity{Duration: 45, IsFixed: true, FixedStart: 540}
	d := activityDomain(480, 1020, a)
	assert.Equal(t, 540, d.lo)
	assert.Equal(t, 540, d.hi)
}

func TestActivityDomain_DeadlineTooTight(t *testing.T) {
	a := domain.Activity{Duration: 60, HasDeadline: true, Deadline: 510} // 08:30
	d := activityDomain(480, 1020, a)
	assert.Equal(t, 480, d.lo)
	// deadline - duration (450) is below shift start, so the domain
	// collapses to hi == lo rather than staying inverted; the model
	// still becomes infeasible because start 480 violates the deadline.
	assert.Equal(t, 480, d.hi)
}

func TestActivityDomain_DeadlineNarrowsButStaysValid(t *testing.T) {
	a := domain.Activity{Duration: 25, HasDeadline: true, Deadline: 960} // 16:00
	d := activityDomain(480, 1020, a)
	assert.Equal(t, 480, d.lo)
	assert.Equal(t, 935, d.hi)
}

func TestLunchDomain(t *testing.T) {
	d := lunchDomain(480, 1020, 30)
	assert.Equal(t, 480, d.lo)
	assert.Equal(t, 990, d.hi)
}
