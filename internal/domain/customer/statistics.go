package customer

import "time"

// Statistics holds the derived counters for one customer's activity.
// All fields are zero when no underlying records exist.
type Statistics struct {
	TotalCases                   int     `json:"totalCases"`
	OpenCases                    int     `json:"openCases"`
	ResolvedCases                int     `json:"resolvedCases"`
	AverageSatisfactionScore     float64 `json:"averageSatisfactionScore"`
	TotalInteractions            int     `json:"totalInteractions"`
	InteractionsThisMonth        int     `json:"interactionsThisMonth"`
	AverageResolutionTimeMinutes float64 `json:"averageResolutionTimeMinutes"`
}

// CalculateStatistics computes the activity statistics for one customer from
// its full case and interaction collections. Deterministic for a fixed now.
//
// OpenCases counts only the OPEN status. The broad open-status set used for
// open-case listings is a different concept and deliberately not used here.
func CalculateStatistics(cases []CustomerCase, interactions []Interaction, now time.Time) Statistics {
	stats := Statistics{
		TotalCases:        len(cases),
		TotalInteractions: len(interactions),
	}

	var satisfactionSum float64
	var satisfactionCount int
	var resolutionSum float64
	var resolutionCount int

	for _, cc := range cases {
		switch cc.Status {
		case CaseStatusOpen:
			stats.OpenCases++
		case CaseStatusResolved:
			stats.ResolvedCases++
		}
		if cc.SatisfactionScore != nil {
			satisfactionSum += *cc.SatisfactionScore
			satisfactionCount++
		}
		if cc.ResolutionTimeMinutes != nil {
			resolutionSum += float64(*cc.ResolutionTimeMinutes)
			resolutionCount++
		}
	}

	if satisfactionCount > 0 {
		stats.AverageSatisfactionScore = satisfactionSum / float64(satisfactionCount)
	}
	if resolutionCount > 0 {
		stats.AverageResolutionTimeMinutes = resolutionSum / float64(resolutionCount)
	}

	monthStart := now.Add(-30 * 24 * time.Hour)
	for _, i := range interactions {
		if !i.CreatedAt.Before(monthStart) {
			stats.InteractionsThisMonth++
		}
	}

	return stats
}
