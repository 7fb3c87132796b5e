package recap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/analyzer"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/riot"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/utils"
	"github.com/fasthttp/router"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestTimeout = time.Minute

var ErrNoRiot = errors.New("recap: riot client is not configured")

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type playerResponse struct {
	structures.PlayerIdentity
	RegionDisplay string `json:"regionDisplay,omitempty"`
}

type searchResponse struct {
	Results []structures.PlayerIdentity `json:"results"`
}

type matchesResponse struct {
	PUUID    string   `json:"puuid"`
	MatchIDs []string `json:"matchIds"`
	Count    int      `json:"count"`
}

type rankedResponse struct {
	RankedInfo []structures.RankedInfo `json:"rankedInfo"`
}

type liveGameResponse struct {
	LiveGame *structures.LiveGameInfo `json:"liveGame"`
}

type healthResponse struct {
	Status           string `json:"status"`
	HasRiotKey       bool   `json:"hasRiotKey"`
	NarrativeEnabled bool   `json:"narrativeEnabled"`
	CacheEnabled     bool   `json:"cacheEnabled"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to encode response")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, details string) {
	writeJSON(ctx, status, errorResponse{Error: message, Details: details})
}

// writeServiceError reports err with its own status when it is an *Error, otherwise as a 500.
func writeServiceError(ctx *fasthttp.RequestCtx, err error, fallback string) {
	e := &Error{}
	if errors.As(err, &e) {
		details := ""
		if e.Err != nil {
			details = e.Err.Error()
		}
		writeError(ctx, e.Status, e.Message, details)
		return
	}
	writeError(ctx, fasthttp.StatusInternalServerError, fallback, err.Error())
}

func query(ctx *fasthttp.RequestCtx, key string) string {
	return strings.TrimSpace(utils.B2S(ctx.QueryArgs().Peek(key)))
}

func (m *Module) requestContext() (global.Context, func()) {
	return global.WithTimeout(m.gCtx, requestTimeout)
}

func (m *Module) routes() fasthttp.RequestHandler {
	handler := router.New()

	handler.GET("/api/health", m.health)
	handler.GET("/api/player", m.player)
	handler.GET("/api/search", m.search)
	handler.GET("/api/matches", m.matches)
	handler.GET("/api/match-details", m.matchDetails)
	handler.GET("/api/ranked", m.ranked)
	handler.GET("/api/live-game", m.liveGame)
	handler.GET("/api/recap", m.recap)
	handler.POST("/api/ai-insights", m.insights)

	handler.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, fasthttp.StatusNotFound, "Not found", "")
	}

	return handler.Handler
}

func (m *Module) health(ctx *fasthttp.RequestCtx) {
	cfg := m.gCtx.Config()
	writeJSON(ctx, fasthttp.StatusOK, healthResponse{
		Status:           "ok",
		HasRiotKey:       cfg.Riot.APIKey != "",
		NarrativeEnabled: m.gCtx.Inst().Narrative != nil,
		CacheEnabled:     m.gCtx.Inst().Redis != nil,
	})
}

func (m *Module) player(ctx *fasthttp.RequestCtx) {
	gameName, tagLine := query(ctx, "gameName"), query(ctx, "tagLine")
	if gameName == "" || tagLine == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing gameName or tagLine", "")
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	player, err := m.svc.LookupPlayer(lCtx, gameName, tagLine)
	if err != nil {
		writeServiceError(ctx, err, "Failed to fetch player data")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, playerResponse{
		PlayerIdentity: player,
		RegionDisplay:  riot.RegionDisplayName(player.Region),
	})
}

// search resolves an exact "name#tag" query. Anything else yields no results.
func (m *Module) search(ctx *fasthttp.RequestCtx) {
	res := searchResponse{Results: []structures.PlayerIdentity{}}

	parts := strings.SplitN(query(ctx, "query"), "#", 2)
	if len(parts) != 2 {
		writeJSON(ctx, fasthttp.StatusOK, res)
		return
	}
	gameName, tagLine := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if gameName == "" || len(tagLine) < 2 {
		writeJSON(ctx, fasthttp.StatusOK, res)
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	player, err := m.svc.LookupPlayer(lCtx, gameName, tagLine)
	switch {
	case err == nil:
		res.Results = append(res.Results, player)
	case errors.Is(err, riot.ErrForbidden):
		writeServiceError(ctx, err, "Search failed")
		return
	case !errors.Is(err, riot.ErrNotFound):
		logrus.WithError(err).Warn("search failed")
	}

	writeJSON(ctx, fasthttp.StatusOK, res)
}

func (m *Module) matches(ctx *fasthttp.RequestCtx) {
	puuid := query(ctx, "puuid")
	if puuid == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing puuid parameter", "")
		return
	}
	count, _ := strconv.Atoi(query(ctx, "count"))

	lCtx, cancel := m.requestContext()
	defer cancel()

	ids, err := m.gCtx.Inst().Riot.MatchIDs(lCtx, m.svc.Region(query(ctx, "region")), puuid, m.svc.Count(count))
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to fetch match history", err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, matchesResponse{
		PUUID:    puuid,
		MatchIDs: ids,
		Count:    len(ids),
	})
}

func (m *Module) matchDetails(ctx *fasthttp.RequestCtx) {
	matchID := query(ctx, "matchId")
	if matchID == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing matchId parameter", "")
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	match, err := m.gCtx.Inst().Riot.Match(lCtx, matchID)
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, riot.ErrNotFound) {
			status = fasthttp.StatusNotFound
		}
		writeError(ctx, status, "Failed to fetch match details", err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, match)
}

func (m *Module) ranked(ctx *fasthttp.RequestCtx) {
	puuid := query(ctx, "puuid")
	if puuid == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "PUUID is required", "")
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	platform := m.svc.Platform(query(ctx, "platform"), query(ctx, "region"))
	ranked, err := m.gCtx.Inst().Riot.Ranked(lCtx, platform, puuid)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to fetch ranked info", err.Error())
		return
	}
	if ranked == nil {
		ranked = []structures.RankedInfo{}
	}

	writeJSON(ctx, fasthttp.StatusOK, rankedResponse{RankedInfo: ranked})
}

// liveGame never fails; any upstream problem reads as "not in game".
func (m *Module) liveGame(ctx *fasthttp.RequestCtx) {
	puuid := query(ctx, "puuid")
	if puuid == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "PUUID is required", "")
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	platform := m.svc.Platform(query(ctx, "platform"), query(ctx, "region"))
	live, err := m.gCtx.Inst().Riot.LiveGame(lCtx, platform, puuid)
	if err != nil {
		logrus.WithError(err).WithField("puuid", puuid).Debug("live game lookup failed")
		live = nil
	}

	writeJSON(ctx, fasthttp.StatusOK, liveGameResponse{LiveGame: live})
}

func (m *Module) recap(ctx *fasthttp.RequestCtx) {
	req := Request{
		GameName: query(ctx, "gameName"),
		TagLine:  query(ctx, "tagLine"),
		Year:     query(ctx, "year"),
	}
	if req.GameName == "" || req.TagLine == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing gameName or tagLine parameters", "")
		return
	}
	if req.Year != "" && req.Year != analyzer.SummaryYearAll {
		if _, err := strconv.Atoi(req.Year); err != nil || len(req.Year) != 4 {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid year parameter", fmt.Sprintf("expected a four digit year or %q", analyzer.SummaryYearAll))
			return
		}
	}
	req.Count, _ = strconv.Atoi(query(ctx, "count"))
	req.Insights, _ = strconv.ParseBool(query(ctx, "insights"))

	lCtx, cancel := m.requestContext()
	defer cancel()

	recap, err := m.svc.Recap(lCtx, req)
	if err != nil {
		writeServiceError(ctx, err, "Failed to generate recap")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, recap)
}

func (m *Module) insights(ctx *fasthttp.RequestCtx) {
	body := map[string]interface{}{}
	if err := json.Unmarshal(ctx.PostBody(), &body); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	lCtx, cancel := m.requestContext()
	defer cancel()

	out, err := m.svc.Insights(lCtx, flatten(body))
	if err != nil {
		writeServiceError(ctx, err, "Failed to generate insights")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, out)
}

// flatten stringifies a decoded JSON object one level deep, the shape the narrative generator takes.
func flatten(body map[string]interface{}) map[string]string {
	out := make(map[string]string, len(body))
	for k, v := range body {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			if s, err := json.MarshalToString(val); err == nil {
				out[k] = s
			}
		}
	}
	return out
}
