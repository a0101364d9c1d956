package normalize

import "github.com/alexanderramin/planmyday/internal/domain"

// ResolvePolicy maps the request's raw patientPreference string onto a
// known SchedulePolicy, falling back to BALANCED for an empty or
// unrecognized tag rather than rejecting the request.
func ResolvePolicy(tag string) domain.SchedulePolicy {
	switch domain.SchedulePolicy(tag) {
	case domain.PolicyHighPriorityFirst, domain.PolicyCriticalPatientFocused,
		domain.PolicyPatientContextFocused, domain.PolicySimilarTaskFirst:
		return domain.SchedulePolicy(tag)
	default:
		return domain.PolicyBalanced
	}
}
