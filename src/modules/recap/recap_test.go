package recap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/analyzer"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/configure"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/riot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const target = "puuid-target"

var created = time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

func buildMatch(id string, at time.Time, win bool, kills, deaths, assists int) structures.MatchRecord {
	participants := []structures.MatchParticipant{{
		PUUID:        target,
		ChampionName: "Ahri",
		ChampionID:   103,
		TeamPosition: "MIDDLE",
		Kills:        kills,
		Deaths:       deaths,
		Assists:      assists,
		Win:          win,
		GoldEarned:   11000,
	}}
	for i := 1; i < 10; i++ {
		participants = append(participants, structures.MatchParticipant{
			PUUID:        fmt.Sprintf("other-%d", i),
			ChampionName: "Garen",
			Kills:        2,
			Deaths:       2,
			Win:          win == (i < 5),
			GoldEarned:   10000,
		})
	}

	return structures.MatchRecord{
		MatchID:      id,
		GameCreation: at.UnixMilli(),
		GameDuration: 1800,
		GameMode:     "CLASSIC",
		QueueID:      420,
		Participants: participants,
	}
}

type fakeRiot struct {
	account    structures.PlayerIdentity
	accountErr error
	ids        []string
	idsErr     error
	matches    map[string]structures.MatchRecord
	summoner   structures.Summoner
	ranked     []structures.RankedInfo
	rankedErr  error
	masteries  []structures.ChampionMastery
	live       *structures.LiveGameInfo
	liveErr    error
	panics     bool

	mtx            sync.Mutex
	requestedCount int
	idsRegion      string
	platforms      map[string]string
}

func newFakeRiot() *fakeRiot {
	return &fakeRiot{
		account: structures.PlayerIdentity{
			PUUID:    target,
			GameName: "Faker",
			TagLine:  "KR1",
			Region:   riot.RegionAmericas,
		},
		ids: []string{"EUW1_3", "EUW1_2", "EUW1_1"},
		matches: map[string]structures.MatchRecord{
			"EUW1_1": buildMatch("EUW1_1", created, true, 8, 2, 6),
			"EUW1_2": buildMatch("EUW1_2", created.Add(time.Hour), false, 2, 6, 3),
		},
		summoner: structures.Summoner{PUUID: target, ProfileIconID: 29, SummonerLevel: 312},
		ranked: []structures.RankedInfo{{
			QueueType: "RANKED_SOLO_5x5",
			Tier:      "GOLD",
			Rank:      "II",
			Wins:      30,
			Losses:    20,
			WinRate:   60,
		}},
		masteries: []structures.ChampionMastery{{ChampionID: 103, ChampionLevel: 7, ChampionPoints: 250000}},
		platforms: map[string]string{},
	}
}

func (f *fakeRiot) platform(call, platform string) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.platforms[call] = platform
}

func (f *fakeRiot) Account(ctx context.Context, gameName, tagLine string) (structures.PlayerIdentity, error) {
	if f.panics {
		panic("upstream exploded")
	}
	if f.accountErr != nil {
		return structures.PlayerIdentity{}, f.accountErr
	}
	return f.account, nil
}

func (f *fakeRiot) Summoner(ctx context.Context, platform, puuid string) (structures.Summoner, error) {
	f.platform("summoner", platform)
	return f.summoner, nil
}

func (f *fakeRiot) MatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	f.mtx.Lock()
	f.requestedCount = count
	f.idsRegion = region
	f.mtx.Unlock()

	if f.idsErr != nil {
		return nil, f.idsErr
	}
	if count < len(f.ids) {
		return f.ids[:count], nil
	}
	return f.ids, nil
}

func (f *fakeRiot) Match(ctx context.Context, matchID string) (structures.MatchRecord, error) {
	m, ok := f.matches[matchID]
	if !ok {
		return structures.MatchRecord{}, &riot.APIError{StatusCode: 404, URL: matchID}
	}
	return m, nil
}

func (f *fakeRiot) Matches(ctx context.Context, matchIDs []string) []structures.MatchRecord {
	out := []structures.MatchRecord{}
	for _, id := range matchIDs {
		if m, ok := f.matches[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeRiot) Ranked(ctx context.Context, platform, puuid string) ([]structures.RankedInfo, error) {
	f.platform("ranked", platform)
	return f.ranked, f.rankedErr
}

func (f *fakeRiot) Masteries(ctx context.Context, platform, puuid string, count int) ([]structures.ChampionMastery, error) {
	f.platform("masteries", platform)
	return f.masteries, nil
}

func (f *fakeRiot) LiveGame(ctx context.Context, platform, puuid string) (*structures.LiveGameInfo, error) {
	f.platform("live", platform)
	return f.live, f.liveErr
}

type fakeNarrative struct {
	out structures.Narrative
	err error

	mtx     sync.Mutex
	summary map[string]string
}

func (f *fakeNarrative) Generate(ctx context.Context, summary map[string]string) (structures.Narrative, error) {
	f.mtx.Lock()
	f.summary = summary
	f.mtx.Unlock()
	return f.out, f.err
}

func newModule(r instance.Riot, n instance.Narrative, mutate ...func(*configure.Config)) *Module {
	cfg := configure.Defaults()
	for _, fn := range mutate {
		fn(&cfg)
	}

	gCtx := global.New(context.Background(), &cfg)
	gCtx.Inst().Riot = r
	gCtx.Inst().Narrative = n

	m := New()
	m.init(gCtx)
	return m
}

func do(m *Module, method, uri string, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	m.handler()(ctx)
	return ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v), string(ctx.Response.Body()))
}

func TestRecapMissingParameters(t *testing.T) {
	m := newModule(newFakeRiot(), nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	res := errorResponse{}
	decode(t, ctx, &res)
	assert.Equal(t, "Missing gameName or tagLine parameters", res.Error)
}

func TestRecapIdentityFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", riot.ErrNotFound, fasthttp.StatusNotFound},
		{"forbidden", &riot.APIError{StatusCode: 403, URL: "account"}, fasthttp.StatusForbidden},
		{"upstream down", &riot.APIError{StatusCode: 503, URL: "account"}, fasthttp.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRiot()
			r.accountErr = tt.err
			m := newModule(r, nil)

			ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			res := errorResponse{}
			decode(t, ctx, &res)
			assert.NotEmpty(t, res.Error)
			assert.NotEmpty(t, res.Details)
		})
	}
}

func TestRecapNoMatches(t *testing.T) {
	r := newFakeRiot()
	r.ids = []string{}
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestRecapNoSurvivingMatches(t *testing.T) {
	r := newFakeRiot()
	r.ids = []string{"EUW1_404"}
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestRecap(t *testing.T) {
	r := newFakeRiot()
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	recap := analyzer.PlayerRecap{}
	decode(t, ctx, &recap)

	assert.Equal(t, 2, recap.TotalGames)
	assert.Equal(t, 1, recap.Wins)
	assert.Equal(t, 1, recap.Losses)
	assert.Equal(t, 50.0, recap.OverallWinRate)
	assert.Equal(t, -1, recap.CurrentStreak)

	assert.Equal(t, "euw1", recap.Player.Platform)
	assert.Equal(t, "EUW", recap.Player.PlatformDisplay)
	require.NotNil(t, recap.Player.ProfileIconID)
	assert.Equal(t, 29, *recap.Player.ProfileIconID)
	require.NotNil(t, recap.Player.SummonerLevel)
	assert.Equal(t, 312, *recap.Player.SummonerLevel)

	assert.Equal(t, r.ranked, recap.RankedInfo)
	assert.Equal(t, r.masteries, recap.ChampionMasteries)
	assert.Nil(t, recap.LiveGame)
	assert.Nil(t, recap.AIInsights)
	require.NotNil(t, recap.AdvancedMetrics)

	assert.Equal(t, configure.Defaults().Riot.DefaultCount, r.requestedCount)
	assert.Equal(t, riot.RegionAmericas, r.idsRegion)
	for _, call := range []string{"summoner", "ranked", "masteries", "live"} {
		assert.Equal(t, "euw1", r.platforms[call], call)
	}
}

func TestRecapCount(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 20},
		{"&count=abc", 20},
		{"&count=0", 20},
		{"&count=50", 50},
		{"&count=500", 100},
	}

	for _, tt := range tests {
		r := newFakeRiot()
		m := newModule(r, nil)

		ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1"+tt.query, "")
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), tt.query)
		assert.Equal(t, tt.expected, r.requestedCount, tt.query)
	}
}

func TestRecapYear(t *testing.T) {
	m := newModule(newFakeRiot(), nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&year=2024", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&year=all", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&year=2023", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&year=last", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestRecapEnrichmentFailures(t *testing.T) {
	r := newFakeRiot()
	r.rankedErr = &riot.APIError{StatusCode: 500, URL: "ranked"}
	r.liveErr = errors.New("timeout")
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	recap := analyzer.PlayerRecap{}
	decode(t, ctx, &recap)
	assert.Empty(t, recap.RankedInfo)
	assert.Nil(t, recap.LiveGame)
	assert.Equal(t, r.masteries, recap.ChampionMasteries)
}

func TestRecapInsights(t *testing.T) {
	n := &fakeNarrative{out: structures.Narrative{
		Text:  "GRIND|||Two games in.",
		Cards: []structures.InsightCard{{Title: "GRIND", Content: "Two games in."}},
	}}
	m := newModule(newFakeRiot(), n)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&insights=true", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	recap := analyzer.PlayerRecap{}
	decode(t, ctx, &recap)
	require.NotNil(t, recap.AIInsights)
	assert.Equal(t, "GRIND|||Two games in.", *recap.AIInsights)
	assert.Equal(t, n.out.Cards, recap.AIInsightCards)

	assert.Equal(t, "2", n.summary["totalGames"])
	assert.Equal(t, "50.0", n.summary["winRate"])
	assert.Equal(t, "Ahri", n.summary["topChampion"])
	assert.Equal(t, analyzer.SummaryYearAll, n.summary["yearFilter"])
}

func TestRecapInsightsFailure(t *testing.T) {
	n := &fakeNarrative{err: errors.New("throttled")}
	m := newModule(newFakeRiot(), n)

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1&insights=1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	recap := analyzer.PlayerRecap{}
	decode(t, ctx, &recap)
	assert.Nil(t, recap.AIInsights)
	assert.Empty(t, recap.AIInsightCards)
}

func TestPlayer(t *testing.T) {
	m := newModule(newFakeRiot(), nil)

	ctx := do(m, fasthttp.MethodGet, "/api/player?gameName=Faker&tagLine=KR1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	res := playerResponse{}
	decode(t, ctx, &res)
	assert.Equal(t, target, res.PUUID)
	assert.Equal(t, "Americas", res.RegionDisplay)
	assert.Equal(t, "euw1", res.Platform)

	ctx = do(m, fasthttp.MethodGet, "/api/player?gameName=Faker", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSearch(t *testing.T) {
	r := newFakeRiot()
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/search?query=Faker%23KR1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	res := searchResponse{}
	decode(t, ctx, &res)
	require.Len(t, res.Results, 1)
	assert.Equal(t, target, res.Results[0].PUUID)

	for _, q := range []string{"", "Faker", "Faker%23K"} {
		ctx = do(m, fasthttp.MethodGet, "/api/search?query="+q, "")
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), q)
		res = searchResponse{}
		decode(t, ctx, &res)
		assert.Empty(t, res.Results, q)
	}

	r.accountErr = riot.ErrNotFound
	ctx = do(m, fasthttp.MethodGet, "/api/search?query=Nobody%23NA1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	res = searchResponse{}
	decode(t, ctx, &res)
	assert.Empty(t, res.Results)

	r.accountErr = &riot.APIError{StatusCode: 403, URL: "account"}
	ctx = do(m, fasthttp.MethodGet, "/api/search?query=Faker%23KR1", "")
	assert.Equal(t, fasthttp.StatusForbidden, ctx.Response.StatusCode())
}

func TestMatches(t *testing.T) {
	r := newFakeRiot()
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/matches?puuid="+target+"&count=2&region=europe", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	res := matchesResponse{}
	decode(t, ctx, &res)
	assert.Equal(t, []string{"EUW1_3", "EUW1_2"}, res.MatchIDs)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, riot.RegionEurope, r.idsRegion)

	ctx = do(m, fasthttp.MethodGet, "/api/matches?puuid="+target+"&region=mars", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, riot.RegionAmericas, r.idsRegion)

	ctx = do(m, fasthttp.MethodGet, "/api/matches", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	r.idsErr = errors.New("boom")
	ctx = do(m, fasthttp.MethodGet, "/api/matches?puuid="+target, "")
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
}

func TestMatchDetails(t *testing.T) {
	m := newModule(newFakeRiot(), nil)

	ctx := do(m, fasthttp.MethodGet, "/api/match-details?matchId=EUW1_1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	match := structures.MatchRecord{}
	decode(t, ctx, &match)
	assert.Equal(t, "EUW1_1", match.MatchID)
	assert.Len(t, match.Participants, 10)

	ctx = do(m, fasthttp.MethodGet, "/api/match-details?matchId=EUW1_404", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(m, fasthttp.MethodGet, "/api/match-details", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestRanked(t *testing.T) {
	r := newFakeRiot()
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/ranked?puuid="+target+"&platform=EUW1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "euw1", r.platforms["ranked"])

	res := rankedResponse{}
	decode(t, ctx, &res)
	assert.Equal(t, r.ranked, res.RankedInfo)

	ctx = do(m, fasthttp.MethodGet, "/api/ranked?puuid="+target+"&region=asia", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "kr", r.platforms["ranked"])

	r.ranked = nil
	ctx = do(m, fasthttp.MethodGet, "/api/ranked?puuid="+target, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "na1", r.platforms["ranked"])
	assert.JSONEq(t, `{"rankedInfo":[]}`, string(ctx.Response.Body()))

	r.rankedErr = errors.New("boom")
	ctx = do(m, fasthttp.MethodGet, "/api/ranked?puuid="+target, "")
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
}

func TestLiveGame(t *testing.T) {
	r := newFakeRiot()
	m := newModule(r, nil)

	ctx := do(m, fasthttp.MethodGet, "/api/live-game?puuid="+target, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"liveGame":null}`, string(ctx.Response.Body()))

	r.live = &structures.LiveGameInfo{GameID: 7, GameMode: "ARAM", ChampionID: 103, TeamID: 100}
	ctx = do(m, fasthttp.MethodGet, "/api/live-game?puuid="+target+"&platform=kr", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	res := liveGameResponse{}
	decode(t, ctx, &res)
	assert.Equal(t, r.live, res.LiveGame)
	assert.Equal(t, "kr", r.platforms["live"])

	r.liveErr = errors.New("boom")
	ctx = do(m, fasthttp.MethodGet, "/api/live-game?puuid="+target, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"liveGame":null}`, string(ctx.Response.Body()))
}

func TestInsights(t *testing.T) {
	n := &fakeNarrative{out: structures.Narrative{
		Text:  "CARRY|||You did.",
		Cards: []structures.InsightCard{{Title: "CARRY", Content: "You did."}},
	}}
	m := newModule(newFakeRiot(), n)

	ctx := do(m, fasthttp.MethodPost, "/api/ai-insights", `{"totalGames": 20, "winRate": "55.0", "ranked": true, "topChampion": null}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"insights":"CARRY|||You did.","cards":[{"title":"CARRY","content":"You did."}]}`, string(ctx.Response.Body()))
	assert.Equal(t, map[string]string{"totalGames": "20", "winRate": "55.0", "ranked": "true"}, n.summary)

	ctx = do(m, fasthttp.MethodPost, "/api/ai-insights", `not json`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	n.err = errors.New("throttled")
	ctx = do(m, fasthttp.MethodPost, "/api/ai-insights", `{}`)
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())

	m = newModule(newFakeRiot(), nil)
	ctx = do(m, fasthttp.MethodPost, "/api/ai-insights", `{}`)
	assert.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())
}

func TestHealth(t *testing.T) {
	m := newModule(newFakeRiot(), nil, func(c *configure.Config) {
		c.Riot.APIKey = "RGAPI-test"
	})

	ctx := do(m, fasthttp.MethodGet, "/api/health", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok","hasRiotKey":true,"narrativeEnabled":false,"cacheEnabled":false}`, string(ctx.Response.Body()))
}

func TestMiddleware(t *testing.T) {
	r := newFakeRiot()
	r.panics = true
	m := newModule(r, nil, func(c *configure.Config) {
		c.Modules.Recap.CORSOrigin = "https://recap.example"
	})

	ctx := do(m, fasthttp.MethodGet, "/api/recap?gameName=Faker&tagLine=KR1", "")
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, "https://recap.example", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))

	ctx = do(m, fasthttp.MethodOptions, "/api/recap", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(m, fasthttp.MethodGet, "/api/nothing", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
