package scheduler

import "github.com/alexanderramin/planmyday/internal/domain"

// priorityAdjustment mutates a single activity's priority in place.
type priorityAdjustment func(a *domain.Activity)

// ApplyPolicyBoosts runs the one pre-model priority adjustment the
// active policy defines, if any. BALANCED, PATIENT_CONTEXT_FOCUSED, and
// SIMILAR_TASK_FIRST make no priority change here — their effect, if
// any, lives entirely in the objective composer.
func ApplyPolicyBoosts(activities []domain.Activity, policy domain.SchedulePolicy) {
	adjust := adjustmentFor(policy)
	if adjust == nil {
		return
	}
	for i := range activities {
		adjust(&activities[i])
	}
}

func adjustmentFor(policy domain.SchedulePolicy) priorityAdjustment {
	switch policy {
	case domain.PolicyCriticalPatientFocused:
		return boostCriticalPatientActivities
	case domain.PolicyHighPriorityFirst:
		return boostHighPriority
	default:
		return nil
	}
}

func boostCriticalPatientActivities(a *domain.Activity) {
	if a.PatientID == "" {
		return
	}
	switch a.Type {
	case domain.ActivityAlert, domain.ActivityVitalAlert, domain.ActivityAdmissionAlert:
		a.Priority += 2
	}
}

func boostHighPriority(a *domain.Activity) {
	if a.Priority >= 8 {
		a.Priority++
	}
}
