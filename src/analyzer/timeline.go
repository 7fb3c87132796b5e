package analyzer

import "sort"

// MonthlyTimeline buckets games by YYYY-MM in the configured location, oldest month first.
func (a *Analyzer) MonthlyTimeline() []MonthlyTimeline {
	type totals struct {
		games, wins, kills, deaths, assists int
	}

	buckets := map[string]*totals{}
	for _, e := range a.entries {
		key := a.monthKey(e.match)
		t, ok := buckets[key]
		if !ok {
			t = &totals{}
			buckets[key] = t
		}
		t.games++
		t.kills += e.player.Kills
		t.deaths += e.player.Deaths
		t.assists += e.player.Assists
		if e.player.Win {
			t.wins++
		}
	}

	timeline := make([]MonthlyTimeline, 0, len(buckets))
	for month, t := range buckets {
		timeline = append(timeline, MonthlyTimeline{
			Month:      month,
			Games:      t.games,
			Wins:       t.wins,
			Losses:     t.games - t.wins,
			WinRate:    winRate(t.wins, t.games),
			AvgKDA:     KDA(t.kills, t.deaths, t.assists),
			AvgKills:   average(t.kills, t.games),
			AvgDeaths:  average(t.deaths, t.games),
			AvgAssists: average(t.assists, t.games),
		})
	}

	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Month < timeline[j].Month
	})

	return timeline
}
