package app

// This file defines the stable wire contract for the single external
// operation the core exposes: optimize. JSON tags reproduce the field
// names the original knowledge-base-driven scheduler used, so the
// thirteen work-item categories round-trip through encoding/json without
// a separate DTO-mapping layer.

// OptimizeRequest is the input to the optimize operation.
type OptimizeRequest struct {
	NurseID          string           `json:"nurseId"`
	ScheduleDate     string           `json:"scheduleDate"`
	WorkItems        WorkItems        `json:"workItems"`
	NurseConstraints NurseConstraints `json:"nurseConstraints"`
}

// WorkItems holds the thirteen heterogeneous input categories. Every list
// may be empty or absent.
type WorkItems struct {
	Appointments            []Appointment          `json:"appointments"`
	CalendarEvents          []CalendarEvent         `json:"calendar_events"`
	Tasks                   []Task                 `json:"tasks"`
	CriticalAlertsToAddress []CriticalAlert        `json:"critical_alerts_to_address"`
	FollowUps               []FollowUp             `json:"follow_ups"`
	BreakTimes              []BreakTime            `json:"break_times"`
	CarePlans               []CarePlan             `json:"care_plans"`
	PatientAdmissionAlerts  []AdmissionAlert       `json:"patient_admission_alerts"`
	PatientEDVisits         []EDVisit              `json:"patient_ed_visits"`
	PredefinedAppointments  []PredefinedAppointment `json:"predefined_appointments"`
	Interventions           []Intervention         `json:"interventions"`
	PatientCommunications   []Communication        `json:"patient_communications"`
	PatientVitalAlerts      []VitalAlert           `json:"patient_vital_alerts"`
}

type Appointment struct {
	ItemID              string `json:"itemId"`
	EstimatedDuration   int    `json:"estimatedDuration"`
	InitialPriorityScore *int  `json:"initialPriorityScore,omitempty"`
	Title               string `json:"title"`
	IsFixedTime         bool   `json:"isFixedTime"`
	StartTime           string `json:"startTime,omitempty"`
	Location            string `json:"location,omitempty"`
	PatientID           string `json:"patientId,omitempty"`
}

type CalendarEvent struct {
	ItemID              string `json:"itemId"`
	EstimatedDuration   int    `json:"estimatedDuration"`
	InitialPriorityScore *int  `json:"initialPriorityScore,omitempty"`
	Title               string `json:"title"`
	IsFixedTime         bool   `json:"isFixedTime"`
	StartTime           string `json:"startTime,omitempty"`
	Location            string `json:"location,omitempty"`
}

type Task struct {
	TaskID                  string `json:"taskId"`
	InitialPriorityScoreText string `json:"initialPriorityScore_text,omitempty"`
	InitialPriorityScore    *int   `json:"initialPriorityScore,omitempty"`
	EstimatedDuration       int    `json:"estimatedDuration"`
	Description             string `json:"description"`
	Deadline                string `json:"deadline,omitempty"`
	LocationDependency      string `json:"locationDependency,omitempty"`
	PatientID               string `json:"patientId,omitempty"`
}

type CriticalAlert struct {
	AlertID               string `json:"alertId"`
	EstimatedTimeToAddress int    `json:"estimatedTimeToAddress"`
	UrgencyScore          *int   `json:"urgencyScore,omitempty"`
	Summary               string `json:"summary"`
	PatientID             string `json:"patientId,omitempty"`
}

type FollowUp struct {
	FollowUpID                        string `json:"followUpId"`
	EstimatedDurationForFollowUpAction int    `json:"estimatedDurationForFollowUpAction"`
	InitialPriorityScore              *int   `json:"initialPriorityScore,omitempty"`
	Reason                            string `json:"reason"`
	PatientID                         string `json:"patientId,omitempty"`
}

type BreakTime struct {
	BreakID   string `json:"breakId,omitempty"`
	Duration  int    `json:"duration"`
	Reason    string `json:"reason,omitempty"`
	IsFixed   bool   `json:"isFixed"`
	StartTime string `json:"startTime,omitempty"`
}

type CarePlan struct {
	CarePlanID        string `json:"carePlanId,omitempty"`
	EstimatedDuration *int   `json:"estimatedDuration,omitempty"`
	Priority          *int   `json:"priority,omitempty"`
	Description       string `json:"description,omitempty"`
	Deadline          string `json:"deadline,omitempty"`
	PatientID         string `json:"patientId,omitempty"`
}

type AdmissionAlert struct {
	AlertID                string `json:"alertId,omitempty"`
	EstimatedTimeToAddress *int   `json:"estimatedTimeToAddress,omitempty"`
	UrgencyScore           *int   `json:"urgencyScore,omitempty"`
	Summary                string `json:"summary,omitempty"`
	PatientID              string `json:"patientId,omitempty"`
}

type EDVisit struct {
	VisitID                   string `json:"visitId,omitempty"`
	EstimatedFollowUpDuration *int   `json:"estimatedFollowUpDuration,omitempty"`
	Priority                  *int   `json:"priority,omitempty"`
	Reason                    string `json:"reason,omitempty"`
	Deadline                  string `json:"deadline,omitempty"`
	PatientID                 string `json:"patientId,omitempty"`
}

type PredefinedAppointment struct {
	AppointmentID string `json:"appointmentId,omitempty"`
	Duration      int    `json:"duration"`
	Priority      *int   `json:"priority,omitempty"`
	Title         string `json:"title"`
	IsFixed       *bool  `json:"isFixed,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	Location      string `json:"location,omitempty"`
	PatientID     string `json:"patientId,omitempty"`
}

type Intervention struct {
	InterventionID    string `json:"interventionId,omitempty"`
	EstimatedDuration *int   `json:"estimatedDuration,omitempty"`
	Priority          *int   `json:"priority,omitempty"`
	Description       string `json:"description,omitempty"`
	Deadline          string `json:"deadline,omitempty"`
	PatientID         string `json:"patientId,omitempty"`
}

type Communication struct {
	CommunicationID   string `json:"communicationId,omitempty"`
	EstimatedDuration *int   `json:"estimatedDuration,omitempty"`
	Priority          *int   `json:"priority,omitempty"`
	Subject           string `json:"subject,omitempty"`
	Deadline          string `json:"deadline,omitempty"`
	PatientID         string `json:"patientId,omitempty"`
}

type VitalAlert struct {
	AlertID               string `json:"alertId,omitempty"`
	EstimatedTimeToAddress *int  `json:"estimatedTimeToAddress,omitempty"`
	UrgencyScore          *int   `json:"urgencyScore,omitempty"`
	Summary               string `json:"summary,omitempty"`
	PatientID             string `json:"patientId,omitempty"`
}

// BlockedOutTime is an immovable span the nurse is unavailable for
// scheduling (e.g. mandatory training).
type BlockedOutTime struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason,omitempty"`
}

// NurseConstraints carries the shift window, lunch preference, blocked
// spans, and policy tag.
type NurseConstraints struct {
	ShiftStartTime               string           `json:"shiftStartTime"`
	ShiftEndTime                 string           `json:"shiftEndTime"`
	LunchBreakPreferredStartTime string           `json:"lunchBreakPreferredStartTime"`
	LunchBreakDuration           int              `json:"lunchBreakDuration"`
	BlockedOutTimes              []BlockedOutTime `json:"blockedOutTimes"`
	// PatientPreference is read as a raw string so an unrecognized tag
	// can fall back to BALANCED (per the normalizer's documented
	// behavior) instead of failing JSON decode.
	PatientPreference string `json:"patientPreference,omitempty"`
}

// OptimizeResponse is the output of the optimize operation.
type OptimizeResponse struct {
	NurseID           string              `json:"nurseId"`
	ScheduleDate      string              `json:"scheduleDate"`
	OptimizedSchedule []ScheduleItem      `json:"optimizedSchedule"`
	UnachievableItems []UnachievableItem  `json:"unachievableItems"`
	OptimizationScore float64             `json:"optimizationScore"`
	Warnings          []string            `json:"warnings"`
}

// ScheduleItem is one placed record in the output schedule, in any of
// the scheduled-activity / Break / Blocked shapes.
type ScheduleItem struct {
	SlotStartTime string `json:"slotStartTime"`
	SlotEndTime   string `json:"slotEndTime"`
	ActivityType  string `json:"activityType"`
	Title         string `json:"title"`
	Details       string `json:"details"`
	RelatedItemID string `json:"relatedItemId"`

	// SortMinute is carried alongside the formatted time strings so the
	// Solution Extractor can sort without re-parsing its own output. It
	// is never part of the wire contract.
	SortMinute int `json:"-"`
}

// UnachievableItem reports an activity that could not be placed, or a
// system-level failure (itemId == "ERROR").
type UnachievableItem struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"`
	Reason   string `json:"reason"`
}
