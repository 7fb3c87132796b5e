package analyzer

import "sort"

// ChampionStats groups games by champion name, exactly as the upstream spells it.
// The result is ordered by games played, most first; ties keep first-seen order.
func (a *Analyzer) ChampionStats() []ChampionStats {
	index := map[string]int{}
	stats := []ChampionStats{}

	for _, e := range a.entries {
		i, ok := index[e.player.ChampionName]
		if !ok {
			i = len(stats)
			index[e.player.ChampionName] = i
			stats = append(stats, ChampionStats{
				ChampionName: e.player.ChampionName,
				ChampionID:   e.player.ChampionID,
			})
		}

		s := &stats[i]
		s.Games++
		s.TotalKills += e.player.Kills
		s.TotalDeaths += e.player.Deaths
		s.TotalAssists += e.player.Assists
		if e.player.Win {
			s.Wins++
		} else {
			s.Losses++
		}
	}

	for i := range stats {
		s := &stats[i]
		s.WinRate = winRate(s.Wins, s.Games)
		s.AvgKills = average(s.TotalKills, s.Games)
		s.AvgDeaths = average(s.TotalDeaths, s.Games)
		s.AvgAssists = average(s.TotalAssists, s.Games)
		s.KDA = KDA(s.TotalKills, s.TotalDeaths, s.TotalAssists)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Games > stats[j].Games
	})

	return stats
}

// TopChampions truncates ChampionStats to limit entries after sorting. A limit of 0 or less keeps all.
func (a *Analyzer) TopChampions(limit int) []ChampionStats {
	stats := a.ChampionStats()
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func (a *Analyzer) UniqueChampions() int {
	seen := map[string]bool{}
	for _, e := range a.entries {
		seen[e.player.ChampionName] = true
	}
	return len(seen)
}

// RoleStats groups games by position. An empty position is its own RoleUnknown group.
func (a *Analyzer) RoleStats() []RoleStats {
	index := map[string]int{}
	stats := []RoleStats{}

	for _, e := range a.entries {
		role := e.player.TeamPosition
		if role == "" {
			role = RoleUnknown
		}

		i, ok := index[role]
		if !ok {
			i = len(stats)
			index[role] = i
			stats = append(stats, RoleStats{Role: role})
		}

		stats[i].Games++
		if e.player.Win {
			stats[i].Wins++
		}
	}

	for i := range stats {
		stats[i].WinRate = winRate(stats[i].Wins, stats[i].Games)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Games > stats[j].Games
	})

	return stats
}
