package analyzer

import "github.com/AdmiralBulldogTv/LeagueRecap/src/structures"

// GenerateRecap runs every statistic group and attaches the player's identity.
// Enrichment fields are left empty for the caller to fill.
func (a *Analyzer) GenerateRecap(player structures.PlayerIdentity) PlayerRecap {
	advanced := a.AdvancedMetrics()

	return PlayerRecap{
		Player:           player,
		OverallStats:     a.OverallStats(),
		TopChampions:     a.TopChampions(a.opts.TopChampions),
		UniqueChampions:  a.UniqueChampions(),
		RoleStats:        a.RoleStats(),
		Streaks:          a.Streaks(),
		AdvancedMetrics:  &advanced,
		MonthlyTimeline:  a.MonthlyTimeline(),
		HighlightMoments: a.HighlightMoments(),
		Playstyle:        a.Playstyle(),
		FunAchievements:  a.FunAchievements(),
	}
}
