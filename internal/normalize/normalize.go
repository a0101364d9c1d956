// Package normalize flattens the thirteen heterogeneous work-item
// categories of an OptimizeRequest into the uniform []domain.Activity
// list the scheduler package operates on, resolving per-category
// defaults and priority fallbacks the same way the knowledge-base-driven
// original does.
package normalize

import (
	"fmt"

	"github.com/alexanderramin/planmyday/internal/app"
	"github.com/alexanderramin/planmyday/internal/domain"
	"github.com/alexanderramin/planmyday/internal/kbs"
)

// Normalized is everything the Model Builder needs out of one
// OptimizeRequest: the flattened activities, the shift window, the lunch
// break, and the blocked intervals, all in minutes-from-midnight.
type Normalized struct {
	Activities  []domain.Activity
	ShiftStart  int
	ShiftEnd    int
	Lunch       domain.LunchBreak
	Blocked     []domain.BlockedInterval
	Policy      domain.SchedulePolicy
}

// Normalize builds a Normalized from the wire request. kb resolves named
// priority levels ("High"/"Medium"/"Low") for tasks whose
// initialPriorityScore_text is present without an explicit numeric
// override.
func Normalize(req app.OptimizeRequest, kb kbs.KnowledgeBase) (Normalized, error) {
	var n Normalized
	var err error

	n.ShiftStart, err = ParseMinutes(req.NurseConstraints.ShiftStartTime)
	if err != nil {
		return n, fmt.Errorf("normalize: shiftStartTime: %w", err)
	}
	n.ShiftEnd, err = ParseMinutes(req.NurseConstraints.ShiftEndTime)
	if err != nil {
		return n, fmt.Errorf("normalize: shiftEndTime: %w", err)
	}

	lunchPreferred, err := ParseMinutes(req.NurseConstraints.LunchBreakPreferredStartTime)
	if err != nil {
		return n, fmt.Errorf("normalize: lunchBreakPreferredStartTime: %w", err)
	}
	n.Lunch = domain.LunchBreak{Duration: req.NurseConstraints.LunchBreakDuration, PreferredStart: lunchPreferred}

	for _, b := range req.NurseConstraints.BlockedOutTimes {
		start, err := ParseMinutes(b.Start)
		if err != nil {
			return n, fmt.Errorf("normalize: blockedOutTimes.start: %w", err)
		}
		end, err := ParseMinutes(b.End)
		if err != nil {
			return n, fmt.Errorf("normalize: blockedOutTimes.end: %w", err)
		}
		n.Blocked = append(n.Blocked, domain.BlockedInterval{Start: start, End: end, Reason: b.Reason})
	}

	n.Policy = ResolvePolicy(req.NurseConstraints.PatientPreference)

	b := builder{kb: kb}
	items := req.WorkItems

	for _, x := range items.Appointments {
		a, err := b.appointment(x)
		if err != nil {
			return n, err
		}
		b.add(a)
	}
	for _, x := range items.CalendarEvents {
		a, err := b.calendarEvent(x)
		if err != nil {
			return n, err
		}
		b.add(a)
	}
	for _, x := range items.Tasks {
		a, err := b.task(x)
		if err != nil {
			return n, err
		}
		b.add(a)
	}
	for _, x := range items.CriticalAlertsToAddress {
		b.add(b.criticalAlert(x))
	}
	for _, x := range items.FollowUps {
		b.add(b.followUp(x))
	}
	for _, x := range items.BreakTimes {
		a, err := b.breakTime(x)
		if err != nil {
			return n, err
		}
		b.add(a)
	}
	for _, x := range items.CarePlans {
		b.add(b.carePlan(x))
	}
	for _, x := range items.PatientAdmissionAlerts {
		b.add(b.admissionAlert(x))
	}
	for _, x := range items.PatientEDVisits {
		b.add(b.edVisit(x))
	}
	for _, x := range items.PredefinedAppointments {
		a, err := b.predefinedAppointment(x)
		if err != nil {
			return n, err
		}
		b.add(a)
	}
	for _, x := range items.Interventions {
		b.add(b.intervention(x))
	}
	for _, x := range items.PatientCommunications {
		b.add(b.communication(x))
	}
	for _, x := range items.PatientVitalAlerts {
		b.add(b.vitalAlert(x))
	}

	n.Activities = b.activities
	return n, nil
}

// builder accumulates activities in category-processing order so that
// fallback IDs (e.g. "BREAK_3") can reference the running position in the
// combined list, exactly as the original's f"BREAK_{len(prepared_activities)}"
// does.
type builder struct {
	kb         kbs.KnowledgeBase
	activities []domain.Activity
}

func (b *builder) add(a domain.Activity) { b.activities = append(b.activities, a) }

func (b *builder) nextFallbackID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, len(b.activities))
}

func (b *builder) appointment(x app.Appointment) (domain.Activity, error) {
	a := domain.Activity{
		ID:       x.ItemID,
		Type:     domain.ActivityAppointment,
		Duration: x.EstimatedDuration,
		Priority: intOrDefault(x.InitialPriorityScore, 5),
		Title:    x.Title,
		Location: x.Location,
		PatientID: x.PatientID,
		IsFixed:  x.IsFixedTime,
	}
	if a.IsFixed {
		start, err := ParseMinutes(x.StartTime)
		if err != nil {
			return a, fmt.Errorf("normalize: appointment %s startTime: %w", x.ItemID, err)
		}
		a.FixedStart = start
	}
	return a, nil
}

func (b *builder) calendarEvent(x app.CalendarEvent) (domain.Activity, error) {
	a := domain.Activity{
		ID:       x.ItemID,
		Type:     domain.ActivityMeeting,
		Duration: x.EstimatedDuration,
		Priority: intOrDefault(x.InitialPriorityScore, 4),
		Title:    x.Title,
		Location: x.Location,
		IsFixed:  x.IsFixedTime,
	}
	if a.IsFixed {
		start, err := ParseMinutes(x.StartTime)
		if err != nil {
			return a, fmt.Errorf("normalize: calendar event %s startTime: %w", x.ItemID, err)
		}
		a.FixedStart = start
	}
	return a, nil
}

func (b *builder) task(x app.Task) (domain.Activity, error) {
	priorityText := x.InitialPriorityScoreText
	if priorityText == "" {
		priorityText = "Medium"
	}
	weight, ok := b.kb.PriorityWeight(priorityText)
	if !ok {
		weight = 5
	}
	priority := weight
	if x.InitialPriorityScore != nil {
		priority = *x.InitialPriorityScore
	}

	a := domain.Activity{
		ID:        x.TaskID,
		Type:      domain.ActivityTask,
		Duration:  x.EstimatedDuration,
		Priority:  priority,
		Title:     x.Description,
		Location:  x.LocationDependency,
		PatientID: x.PatientID,
	}
	if d, ok := ParseDeadline(x.Deadline); ok {
		a.HasDeadline = true
		a.Deadline = d
	}
	return a, nil
}

func (b *builder) criticalAlert(x app.CriticalAlert) domain.Activity {
	return domain.Activity{
		ID:        x.AlertID,
		Type:      domain.ActivityAlert,
		Duration:  x.EstimatedTimeToAddress,
		Priority:  intOrDefault(x.UrgencyScore, 10),
		Title:     fmt.Sprintf("Alert: %s", x.Summary),
		PatientID: x.PatientID,
	}
}

func (b *builder) followUp(x app.FollowUp) domain.Activity {
	return domain.Activity{
		ID:        x.FollowUpID,
		Type:      domain.ActivityFollowUp,
		Duration:  x.EstimatedDurationForFollowUpAction,
		Priority:  intOrDefault(x.InitialPriorityScore, 7),
		Title:     fmt.Sprintf("Follow-up: %s", x.Reason),
		PatientID: x.PatientID,
	}
}

func (b *builder) breakTime(x app.BreakTime) (domain.Activity, error) {
	id := x.BreakID
	if id == "" {
		id = b.nextFallbackID("BREAK")
	}
	reason := x.Reason
	if reason == "" {
		reason = "Scheduled Break"
	}
	a := domain.Activity{
		ID:       id,
		Type:     domain.ActivityBreak,
		Duration: x.Duration,
		Priority: 5,
		Title:    fmt.Sprintf("Break: %s", reason),
		IsFixed:  x.IsFixed,
	}
	if a.IsFixed {
		start, err := ParseMinutes(x.StartTime)
		if err != nil {
			return a, fmt.Errorf("normalize: break %s startTime: %w", id, err)
		}
		a.FixedStart = start
	}
	return a, nil
}

func (b *builder) carePlan(x app.CarePlan) domain.Activity {
	id := x.CarePlanID
	if id == "" {
		id = b.nextFallbackID("CP")
	}
	description := x.Description
	if description == "" {
		description = "Patient Care"
	}
	a := domain.Activity{
		ID:        id,
		Type:      domain.ActivityCarePlan,
		Duration:  intOrDefault(x.EstimatedDuration, 30),
		Priority:  intOrDefault(x.Priority, 8),
		Title:     fmt.Sprintf("Care Plan: %s", description),
		PatientID: x.PatientID,
	}
	if d, ok := ParseDeadline(x.Deadline); ok {
		a.HasDeadline = true
		a.Deadline = d
	}
	return a
}

func (b *builder) admissionAlert(x app.AdmissionAlert) domain.Activity {
	id := x.AlertID
	if id == "" {
		id = b.nextFallbackID("ADM")
	}
	summary := x.Summary
	if summary == "" {
		summary = "Patient Admission"
	}
	return domain.Activity{
		ID:        id,
		Type:      domain.ActivityAdmissionAlert,
		Duration:  intOrDefault(x.EstimatedTimeToAddress, 15),
		Priority:  intOrDefault(x.UrgencyScore, 9),
		Title:     fmt.Sprintf("Admission Alert: %s", summary),
		PatientID: x.PatientID,
	}
}

func (b *builder) edVisit(x app.EDVisit) domain.Activity {
	id := x.VisitID
	if id == "" {
		id = b.nextFallbackID("ED")
	}
	reason := x.Reason
	if reason == "" {
		reason = "Emergency Department Visit"
	}
	a := domain.Activity{
		ID:        id,
		Type:      domain.ActivityEDVisit,
		Duration:  intOrDefault(x.EstimatedFollowUpDuration, 20),
		Priority:  intOrDefault(x.Priority, 8),
		Title:     fmt.Sprintf("ED Visit Follow-up: %s", reason),
		PatientID: x.PatientID,
	}
	if d, ok := ParseDeadline(x.Deadline); ok {
		a.HasDeadline = true
		a.Deadline = d
	}
	return a
}

func (b *builder) predefinedAppointment(x app.PredefinedAppointment) (domain.Activity, error) {
	id := x.AppointmentID
	if id == "" {
		id = b.nextFallbackID("PA")
	}
	isFixed := true
	if x.IsFixed != nil {
		isFixed = *x.IsFixed
	}
	a := domain.Activity{
		ID:        id,
		Type:      domain.ActivityPredefinedAppointment,
		Duration:  x.Duration,
		Priority:  intOrDefault(x.Priority, 6),
		Title:     x.Title,
		Location:  x.Location,
		PatientID: x.PatientID,
		IsFixed:   isFixed,
	}
	if a.IsFixed {
		start, err := ParseMinutes(x.StartTime)
		if err != nil {
			return a, fmt.Errorf("normalize: predefined appointment %s startTime: %w", id, err)
		}
		a.FixedStart = start
	}
	return a, nil
}

func (b *builder) intervention(x app.Intervention) domain.Activity {
	id := x.InterventionID
	if id == "" {
		id = b.nextFallbackID("INT")
	}
	description := x.Description
	if description == "" {
		description = "Patient Intervention"
	}
	a := domain.Activity{
		ID:        id,
		Type:      domain.ActivityIntervention,
		Duration:  intOrDefault(x.EstimatedDuration, 25),
		Priority:  intOrDefault(x.Priority, 7),
		Title:     fmt.Sprintf("Intervention: %s", description),
		PatientID: x.PatientID,
	}
	if d, ok := ParseDeadline(x.Deadline); ok {
		a.HasDeadline = true
		a.Deadline = d
	}
	return a
}

func (b *builder) communication(x app.Communication) domain.Activity {
	id := x.CommunicationID
	if id == "" {
		id = b.nextFallbackID("COMM")
	}
	subject := x.Subject
	if subject == "" {
		subject = "Patient Communication"
	}
	a := domain.Activity{
		ID:        id,
		Type:      domain.ActivityCommunication,
		Duration:  intOrDefault(x.EstimatedDuration, 15),
		Priority:  intOrDefault(x.Priority, 6),
		Title:     fmt.Sprintf("Communication: %s", subject),
		PatientID: x.PatientID,
	}
	if d, ok := ParseDeadline(x.Deadline); ok {
		a.HasDeadline = true
		a.Deadline = d
	}
	return a
}

func (b *builder) vitalAlert(x app.VitalAlert) domain.Activity {
	id := x.AlertID
	if id == "" {
		id = b.nextFallbackID("VITAL")
	}
	summary := x.Summary
	if summary == "" {
		summary = "Patient Vitals Alert"
	}
	return domain.Activity{
		ID:        id,
		Type:      domain.ActivityVitalAlert,
		Duration:  intOrDefault(x.EstimatedTimeToAddress, 20),
		Priority:  intOrDefault(x.UrgencyScore, 9),
		Title:     fmt.Sprintf("Vital Alert: %s", summary),
		PatientID: x.PatientID,
	}
}

func intOrDefault(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}
