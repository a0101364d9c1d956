package domain

// Activity is the uniform scheduling record the Normalizer produces from
// any of the thirteen input work-item categories. Every Activity has the
// same fields regardless of source category (fields a category does not
// supply stay at their zero value); category-specific quirks are absorbed
// before construction.
type Activity struct {
	ID       string
	Type     ActivityType
	Duration int // minutes, > 0

	Priority int // typical range 1-12 after policy boosts

	Title     string
	Location  string
	PatientID string

	IsFixed    bool
	FixedStart int // minutes from midnight, meaningful iff IsFixed

	HasDeadline bool
	Deadline    int // minutes from midnight, meaningful iff HasDeadline
}

// BlockedInterval is an immovable occupant of the timeline — not an
// activity, never appears in unachievableItems, never moves.
type BlockedInterval struct {
	Start  int
	End    int
	Reason string
}

// LunchBreak is the schedulable, fixed-duration interval whose start is
// chosen by the solver near PreferredStart.
type LunchBreak struct {
	Duration       int
	PreferredStart int
}
