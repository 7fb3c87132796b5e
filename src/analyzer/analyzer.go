// Package analyzer folds one player's match history into recap statistics.
//
// An Analyzer is built for a single player and a single match list and never
// mutates either, so every entry point can be called any number of times and
// from any goroutine. Matches the player did not take part in are dropped at
// construction and never reach a statistic. Nothing in this package returns an
// error: empty or degenerate input yields zero values, empty slices or the
// PeakPerformanceMonthUnknown sentinel.
package analyzer

import (
	"sort"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

type playerMatch struct {
	match  *structures.MatchRecord
	player *structures.MatchParticipant
}

type Analyzer struct {
	puuid   string
	opts    Options
	entries []playerMatch
}

func New(matches []structures.MatchRecord, puuid string, opts ...Option) *Analyzer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	records := make([]structures.MatchRecord, len(matches))
	copy(records, matches)

	entries := make([]playerMatch, 0, len(records))
	for i := range records {
		if p := records[i].Participant(puuid); p != nil {
			entries = append(entries, playerMatch{match: &records[i], player: p})
		}
	}

	return &Analyzer{
		puuid:   puuid,
		opts:    o,
		entries: entries,
	}
}

// Games is the number of matches that contain the target player.
func (a *Analyzer) Games() int {
	return len(a.entries)
}

// chronological returns the entries ordered by creation time, oldest first.
func (a *Analyzer) chronological() []playerMatch {
	sorted := make([]playerMatch, len(a.entries))
	copy(sorted, a.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].match.GameCreation < sorted[j].match.GameCreation
	})
	return sorted
}

func (a *Analyzer) monthKey(m *structures.MatchRecord) string {
	return m.CreatedAt().In(a.opts.Location).Format(monthKeyLayout)
}

// KDA is (kills + assists) / deaths, or kills + assists when the player never died.
func KDA(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return float64(kills+assists) / float64(deaths)
}

func winRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

func average(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(total) / float64(games)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func meanGold(m *structures.MatchRecord) float64 {
	if len(m.Participants) == 0 {
		return 0
	}
	total := 0
	for _, p := range m.Participants {
		total += p.GoldEarned
	}
	return float64(total) / float64(len(m.Participants))
}

// killParticipation is the share of the player's team kills they took part in, in percent.
// Teams are told apart by outcome: everyone sharing the player's win flag is a teammate.
func killParticipation(m *structures.MatchRecord, p *structures.MatchParticipant) float64 {
	teamKills := 0
	for _, other := range m.Participants {
		if other.Win == p.Win {
			teamKills += other.Kills
		}
	}
	if teamKills == 0 {
		return 0
	}
	return float64(p.Kills+p.Assists) / float64(teamKills) * 100
}

func (a *Analyzer) OverallStats() OverallStats {
	var kills, deaths, assists, wins, losses int
	for _, e := range a.entries {
		kills += e.player.Kills
		deaths += e.player.Deaths
		assists += e.player.Assists
		if e.player.Win {
			wins++
		} else {
			losses++
		}
	}

	total := wins + losses
	return OverallStats{
		TotalGames:     total,
		Wins:           wins,
		Losses:         losses,
		OverallWinRate: winRate(wins, total),
		OverallKDA:     KDA(kills, deaths, assists),
		AverageKills:   average(kills, total),
		AverageDeaths:  average(deaths, total),
		AverageAssists: average(assists, total),
	}
}
