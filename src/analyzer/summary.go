package analyzer

import (
	"fmt"
	"strconv"
)

const (
	SummaryPeriodDefault = "career"
	SummaryYearAll       = "all"
)

// BuildSummary flattens a recap into the pre-formatted values a narrative generator consumes.
func BuildSummary(recap PlayerRecap, period, yearFilter string) map[string]string {
	if period == "" {
		period = SummaryPeriodDefault
	}
	if yearFilter == "" {
		yearFilter = SummaryYearAll
	}

	summary := map[string]string{
		"totalGames":       strconv.Itoa(recap.TotalGames),
		"winRate":          fmt.Sprintf("%.1f", recap.OverallWinRate),
		"kda":              fmt.Sprintf("%.2f", recap.OverallKDA),
		"topChampion":      "",
		"topChampionWR":    "0.0",
		"topChampionGames": "0",
		"uniqueChampions":  strconv.Itoa(recap.UniqueChampions),
		"bestStreak":       strconv.Itoa(recap.BestStreak),
		"worstStreak":      strconv.Itoa(recap.WorstStreak),
		"clutchFactor":     "0.0",
		"carryPotential":   "0.0",
		"period":           period,
		"yearFilter":       yearFilter,
	}

	if len(recap.TopChampions) > 0 {
		top := recap.TopChampions[0]
		summary["topChampion"] = top.ChampionName
		summary["topChampionWR"] = fmt.Sprintf("%.1f", top.WinRate)
		summary["topChampionGames"] = strconv.Itoa(top.Games)
	}

	if recap.AdvancedMetrics != nil {
		summary["clutchFactor"] = fmt.Sprintf("%.1f", recap.AdvancedMetrics.ClutchFactor)
		summary["carryPotential"] = fmt.Sprintf("%.1f", recap.AdvancedMetrics.CarryPotential)
	}

	return summary
}
