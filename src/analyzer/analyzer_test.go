package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

func TestKDA(t *testing.T) {
	assert.Equal(t, 7.0, KDA(3, 0, 4))
	assert.Equal(t, 3.5, KDA(3, 2, 4))
	assert.Equal(t, 0.0, KDA(0, 0, 0))
	assert.Equal(t, 0.0, KDA(0, 4, 0))
}

func TestOverallStatsTenGames(t *testing.T) {
	a := New(buildMatches(outcomes("WWLWLWWLWL")...), target)

	overall := a.OverallStats()
	assert.Equal(t, 10, overall.TotalGames)
	assert.Equal(t, 6, overall.Wins)
	assert.Equal(t, 4, overall.Losses)
	assert.Equal(t, overall.TotalGames, overall.Wins+overall.Losses)
	assert.InDelta(t, 60.0, overall.OverallWinRate, 1e-9)
	assert.InDelta(t, 3.5, overall.OverallKDA, 1e-9)
	assert.InDelta(t, 3.0, overall.AverageKills, 1e-9)
	assert.InDelta(t, 2.0, overall.AverageDeaths, 1e-9)
	assert.InDelta(t, 4.0, overall.AverageAssists, 1e-9)

	streaks := a.Streaks()
	assert.Equal(t, Streaks{CurrentStreak: -1, BestStreak: 2, WorstStreak: 1}, streaks)
}

func TestEmptyHistory(t *testing.T) {
	for name, matches := range map[string][]structures.MatchRecord{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			a := New(matches, target)

			assert.Equal(t, OverallStats{}, a.OverallStats())
			assert.Empty(t, a.ChampionStats())
			assert.Empty(t, a.RoleStats())
			assert.Equal(t, Streaks{}, a.Streaks())
			assert.Equal(t, 0.0, a.ClutchFactor())
			assert.Equal(t, 0.0, a.CarryPotential())
			assert.Equal(t, 0.0, a.ConsistencyScore())
			assert.Equal(t, PeakPerformanceMonthUnknown, a.PeakPerformanceMonth())
			assert.Equal(t, Improvement{}, a.EarlyVsLateImprovement())
			assert.Empty(t, a.MonthlyTimeline())
			assert.Empty(t, a.HighlightMoments())
			assert.Empty(t, a.FunAchievements())
			assert.Nil(t, a.Playstyle())
			assert.Equal(t, 0, a.UniqueChampions())
		})
	}
}

func TestMissingParticipantIsExcluded(t *testing.T) {
	matches := buildMatches(outcomes("WLW")...)
	stranger := buildMatch(99, game{kills: 20, deaths: 0, win: false, duration: 4000})
	stranger.Participants = stranger.Participants[1:]
	matches = append(matches, stranger)

	a := New(matches, target)

	assert.Equal(t, 3, a.Games())
	assert.Equal(t, 3, a.OverallStats().TotalGames)
	assert.Equal(t, Streaks{CurrentStreak: 1, BestStreak: 1, WorstStreak: 1}, a.Streaks())

	games := 0
	for _, c := range a.ChampionStats() {
		games += c.Games
	}
	assert.Equal(t, 3, games)

	for _, h := range a.HighlightMoments() {
		assert.NotEqual(t, stranger.MatchID, h.MatchID)
	}
}

func TestIdempotent(t *testing.T) {
	matches := buildMatches(
		game{champion: "Ahri", role: "MIDDLE", kills: 10, deaths: 1, assists: 5, win: true},
		game{champion: "Lux", role: "UTILITY", kills: 1, deaths: 6, assists: 12, win: false, gold: 7000},
		game{champion: "Ahri", role: "MIDDLE", kills: 6, deaths: 0, assists: 9, win: true, gold: 6000},
	)
	before := make([]structures.MatchRecord, len(matches))
	copy(before, matches)

	a := New(matches, target)
	player := structures.PlayerIdentity{PUUID: target, GameName: "Target", TagLine: "NA1"}

	first := a.GenerateRecap(player)
	second := a.GenerateRecap(player)
	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))

	assert.Equal(t, before, matches)
}

func TestGenerateRecap(t *testing.T) {
	matches := buildMatches(outcomes("WWLWWWLL")...)
	player := structures.PlayerIdentity{PUUID: target, GameName: "Target", TagLine: "NA1"}

	recap := New(matches, target).GenerateRecap(player)

	assert.Equal(t, player, recap.Player)
	assert.Equal(t, 8, recap.TotalGames)
	assert.Equal(t, 3, recap.BestStreak)
	assert.Equal(t, 2, recap.WorstStreak)
	assert.Equal(t, -2, recap.CurrentStreak)
	require.NotNil(t, recap.AdvancedMetrics)
	require.NotNil(t, recap.Playstyle)
	assert.Len(t, recap.TopChampions, 1)
	assert.Equal(t, 1, recap.UniqueChampions)
	assert.Nil(t, recap.AIInsights)
	assert.Nil(t, recap.LiveGame)
}

func TestTopChampionsFromOptions(t *testing.T) {
	matches := buildMatches(
		game{champion: "A"}, game{champion: "B"}, game{champion: "C"},
	)

	recap := New(matches, target, WithTopChampions(2)).GenerateRecap(structures.PlayerIdentity{})
	assert.Len(t, recap.TopChampions, 2)

	recap = New(matches, target, WithTopChampions(0)).GenerateRecap(structures.PlayerIdentity{})
	assert.Len(t, recap.TopChampions, 3)
}

func TestFilterByYear(t *testing.T) {
	matches := buildMatches(
		game{at: time.Date(2023, time.December, 31, 23, 30, 0, 0, time.UTC)},
		game{at: time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC)},
		game{at: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)},
	)

	assert.Len(t, FilterByYear(matches, "", nil), 3)
	assert.Len(t, FilterByYear(matches, "all", nil), 3)
	assert.Len(t, FilterByYear(matches, "2024", nil), 2)
	assert.Len(t, FilterByYear(matches, "2023", time.UTC), 1)
	assert.Empty(t, FilterByYear(matches, "last-year", nil))

	// one hour ahead moves the new-year's-eve game into 2024
	plusOne := time.FixedZone("UTC+1", 60*60)
	assert.Len(t, FilterByYear(matches, "2024", plusOne), 3)
}

func TestBuildSummary(t *testing.T) {
	matches := buildMatches(
		game{champion: "Ahri", kills: 5, deaths: 2, assists: 5, win: true},
		game{champion: "Ahri", kills: 1, deaths: 4, assists: 3, win: false},
		game{champion: "Lux", kills: 2, deaths: 2, assists: 10, win: true},
	)
	recap := New(matches, target).GenerateRecap(structures.PlayerIdentity{})

	summary := BuildSummary(recap, "", "2024")

	assert.Equal(t, "3", summary["totalGames"])
	assert.Equal(t, "66.7", summary["winRate"])
	assert.Equal(t, "3.25", summary["kda"])
	assert.Equal(t, "Ahri", summary["topChampion"])
	assert.Equal(t, "50.0", summary["topChampionWR"])
	assert.Equal(t, "2", summary["topChampionGames"])
	assert.Equal(t, "2", summary["uniqueChampions"])
	assert.Equal(t, SummaryPeriodDefault, summary["period"])
	assert.Equal(t, "2024", summary["yearFilter"])
	assert.Contains(t, summary, "clutchFactor")
	assert.Contains(t, summary, "carryPotential")
	assert.Contains(t, summary, "bestStreak")
	assert.Contains(t, summary, "worstStreak")

	empty := BuildSummary(New(nil, target).GenerateRecap(structures.PlayerIdentity{}), "last 20 games", "")
	assert.Equal(t, "0", empty["totalGames"])
	assert.Equal(t, "", empty["topChampion"])
	assert.Equal(t, "last 20 games", empty["period"])
	assert.Equal(t, SummaryYearAll, empty["yearFilter"])
}
