package analyzer

import (
	"fmt"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

const target = "target-puuid"

var baseTime = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

type game struct {
	champion string
	role     string
	kills    int
	deaths   int
	assists  int
	win      bool
	gold     int
	duration int
	at       time.Time
}

// buildMatch produces a ten player match where the target is participant zero. Teammates share
// the target's outcome and each carry two kills; the enemy team carries three kills each.
func buildMatch(id int, g game) structures.MatchRecord {
	if g.gold == 0 {
		g.gold = 10000
	}
	if g.duration == 0 {
		g.duration = 1800
	}
	if g.at.IsZero() {
		g.at = baseTime.Add(time.Duration(id) * time.Hour)
	}
	if g.champion == "" {
		g.champion = "Ahri"
	}

	participants := []structures.MatchParticipant{{
		PUUID:        target,
		SummonerName: "Target",
		ChampionName: g.champion,
		ChampionID:   103,
		TeamPosition: g.role,
		Kills:        g.kills,
		Deaths:       g.deaths,
		Assists:      g.assists,
		Win:          g.win,
		GoldEarned:   g.gold,
	}}
	for i := 1; i < 10; i++ {
		p := structures.MatchParticipant{
			PUUID:        fmt.Sprintf("other-%d", i),
			ChampionName: "Garen",
			GoldEarned:   10000,
		}
		if i < 5 {
			p.Win = g.win
			p.Kills = 2
		} else {
			p.Win = !g.win
			p.Kills = 3
		}
		participants = append(participants, p)
	}

	return structures.MatchRecord{
		MatchID:      fmt.Sprintf("NA1_%d", id),
		GameCreation: g.at.UnixMilli(),
		GameDuration: g.duration,
		GameMode:     "CLASSIC",
		QueueID:      420,
		Participants: participants,
	}
}

func buildMatches(games ...game) []structures.MatchRecord {
	matches := make([]structures.MatchRecord, len(games))
	for i, g := range games {
		matches[i] = buildMatch(i, g)
	}
	return matches
}

func outcomes(seq string) []game {
	games := make([]game, len(seq))
	for i, c := range seq {
		games[i] = game{kills: 3, deaths: 2, assists: 4, win: c == 'W'}
	}
	return games
}
