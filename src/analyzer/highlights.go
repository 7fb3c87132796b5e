package analyzer

import (
	"fmt"
	"math"
)

func snapshot(e playerMatch) HighlightStats {
	return HighlightStats{
		KDA:          KDA(e.player.Kills, e.player.Deaths, e.player.Assists),
		Kills:        e.player.Kills,
		Deaths:       e.player.Deaths,
		Assists:      e.player.Assists,
		ChampionName: e.player.ChampionName,
		GameDuration: e.match.GameDuration,
		Win:          e.player.Win,
	}
}

func moment(t HighlightType, e playerMatch, title, description string, stats HighlightStats) HighlightMoment {
	return HighlightMoment{
		Type:        t,
		MatchID:     e.match.MatchID,
		Title:       title,
		Description: description,
		Stats:       stats,
		Date:        e.match.GameCreation,
	}
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// HighlightMoments picks at most one best game, comeback, worst loss and longest game,
// then appends one entry per game won with highlightKillThreshold or more kills.
// Ties keep the first game in input order.
func (a *Analyzer) HighlightMoments() []HighlightMoment {
	var (
		best, comeback, worst, longest *playerMatch

		bestKDA     = math.Inf(-1)
		worstKDA    = math.Inf(1)
		comebackGap = 0.0
		longestSecs = -1
	)

	for i := range a.entries {
		e := &a.entries[i]
		kda := KDA(e.player.Kills, e.player.Deaths, e.player.Assists)

		if e.player.Win {
			if kda > bestKDA {
				bestKDA = kda
				best = e
			}
			if gap := meanGold(e.match) - float64(e.player.GoldEarned); gap > comebackGap {
				comebackGap = gap
				comeback = e
			}
		} else if kda < worstKDA {
			worstKDA = kda
			worst = e
		}

		if e.match.GameDuration > longestSecs {
			longestSecs = e.match.GameDuration
			longest = e
		}
	}

	moments := []HighlightMoment{}

	if best != nil {
		stats := snapshot(*best)
		kp := killParticipation(best.match, best.player)
		stats.KillParticipation = &kp
		moments = append(moments, moment(HighlightBestGame, *best,
			"Best Game",
			fmt.Sprintf("%d/%d/%d on %s for a %.2f KDA", best.player.Kills, best.player.Deaths, best.player.Assists, best.player.ChampionName, stats.KDA),
			stats,
		))
	}

	if comeback != nil {
		stats := snapshot(*comeback)
		gold := comeback.player.GoldEarned
		stats.GoldEarned = &gold
		moments = append(moments, moment(HighlightBiggestComeback, *comeback,
			"Biggest Comeback",
			fmt.Sprintf("Won on %s with %d gold, %.0f below the lobby average", comeback.player.ChampionName, gold, comebackGap),
			stats,
		))
	}

	if worst != nil {
		stats := snapshot(*worst)
		moments = append(moments, moment(HighlightWorstLoss, *worst,
			"Rough Game",
			fmt.Sprintf("%d/%d/%d on %s. It happens to everyone", worst.player.Kills, worst.player.Deaths, worst.player.Assists, worst.player.ChampionName),
			stats,
		))
	}

	if longest != nil {
		stats := snapshot(*longest)
		outcome := "lost"
		if longest.player.Win {
			outcome = "won"
		}
		moments = append(moments, moment(HighlightLongestGame, *longest,
			"Longest Game",
			fmt.Sprintf("A %s marathon on %s that you %s", formatDuration(longest.match.GameDuration), longest.player.ChampionName, outcome),
			stats,
		))
	}

	for _, e := range a.entries {
		if !e.player.Win || e.player.Kills < highlightKillThreshold {
			continue
		}
		stats := snapshot(e)
		kp := killParticipation(e.match, e.player)
		stats.KillParticipation = &kp
		moments = append(moments, moment(HighlightPentakill, e,
			"Pentakill Performance",
			fmt.Sprintf("%d kills on %s in a win", e.player.Kills, e.player.ChampionName),
			stats,
		))
	}

	return moments
}
