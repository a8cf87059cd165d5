package customer

import "time"

// Recommended next actions returned by NextRecommendedAction
const (
	ActionFollowUpOpenCases  = "Follow up on open cases"
	ActionSatisfactionSurvey = "Conduct satisfaction survey"
	ActionProactiveOutreach  = "Proactive outreach"
	ActionMaintain           = "Maintain relationship"
)

// AssessRiskLevel derives the relationship risk from the computed statistics.
// Rules are evaluated in order; the first match wins. The satisfaction
// clauses only fire when case data exists, so a customer with no history
// stays LOW instead of tripping the "< 2.0" rule on the 0.0 default.
func AssessRiskLevel(stats Statistics) RiskLevel {
	hasCases := stats.TotalCases > 0
	if stats.OpenCases > 3 || (hasCases && stats.AverageSatisfactionScore < 2.0) {
		return RiskLevelHigh
	}
	if stats.OpenCases > 1 || (hasCases && stats.AverageSatisfactionScore < 3.0) {
		return RiskLevelMedium
	}
	return RiskLevelLow
}

// NextRecommendedAction suggests the agent's next step for the customer.
// Rules are evaluated in order; the first match wins.
func NextRecommendedAction(stats Statistics, lastInteractionAt *time.Time, now time.Time) string {
	if stats.OpenCases > 0 {
		return ActionFollowUpOpenCases
	}
	if stats.TotalCases > 0 && stats.AverageSatisfactionScore < 3.0 {
		return ActionSatisfactionSurvey
	}
	if lastInteractionAt != nil && lastInteractionAt.Before(now.Add(-30*24*time.Hour)) {
		return ActionProactiveOutreach
	}
	return ActionMaintain
}
