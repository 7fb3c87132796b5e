package recap

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/analyzer"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/configure"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/riot"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/utils"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var ErrNarrativeDisabled = errors.New("narrative generation is not configured")

// Error is a failure the API reports to the caller as-is.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Request struct {
	GameName string
	TagLine  string
	Count    int
	Year     string
	Insights bool
}

type Service struct {
	riot      instance.Riot
	narrative instance.Narrative
	metrics   instance.Prometheus

	defaultPlatform string
	defaultCount    int
	maxCount        int
	masteryCount    int
	loc             *time.Location
	opts            []analyzer.Option
}

func NewService(cfg *configure.Config, riotClient instance.Riot, narrative instance.Narrative, metrics instance.Prometheus) *Service {
	loc := cfg.Location()

	return &Service{
		riot:            riotClient,
		narrative:       narrative,
		metrics:         metrics,
		defaultPlatform: cfg.Riot.DefaultPlatform,
		defaultCount:    cfg.Riot.DefaultCount,
		maxCount:        cfg.Riot.MaxCount,
		masteryCount:    cfg.Riot.MasteryCount,
		loc:             loc,
		opts: []analyzer.Option{
			analyzer.WithLocation(loc),
			analyzer.WithTopChampions(cfg.Analytics.TopChampions),
			analyzer.WithClutchGoldRatio(cfg.Analytics.ClutchGoldRatio),
			analyzer.WithCarryKillParticipation(cfg.Analytics.CarryKillParticipation),
			analyzer.WithPeakMonthMinGames(cfg.Analytics.PeakMonthMinGames),
		},
	}
}

// Count turns the requested match count into one the upstream accepts.
func (s *Service) Count(requested int) int {
	if requested <= 0 {
		return s.defaultCount
	}
	return utils.ClampInt(requested, 1, s.maxCount)
}

func (s *Service) Platform(platform, region string) string {
	if riot.IsPlatform(platform) {
		return strings.ToLower(platform)
	}
	return riot.PlatformForRegion(region, s.defaultPlatform)
}

func (s *Service) Region(region string) string {
	for _, r := range riot.DefaultRegions {
		if r == region {
			return region
		}
	}
	return riot.RoutingForPlatform(s.defaultPlatform)
}

// identity resolves a Riot ID. Failing to do so is the only lookup error surfaced to callers.
func (s *Service) identity(ctx context.Context, gameName, tagLine string) (structures.PlayerIdentity, error) {
	player, err := s.riot.Account(ctx, gameName, tagLine)
	switch {
	case err == nil:
		return player, nil
	case errors.Is(err, riot.ErrNotFound):
		return player, &Error{Status: 404, Message: "Player not found. Please check your Game Name and Tag Line.", Err: err}
	case errors.Is(err, riot.ErrForbidden):
		return player, &Error{Status: 403, Message: "API key invalid or expired", Err: err}
	default:
		return player, &Error{Status: 500, Message: "Failed to fetch player data", Err: err}
	}
}

// enrichIdentity fills the platform and summoner profile. The platform is read from the most
// recent match id when there is one. Failures leave the fields empty.
func (s *Service) enrichIdentity(ctx context.Context, player *structures.PlayerIdentity, matchIDs []string) {
	platform := riot.PlatformForRegion(player.Region, s.defaultPlatform)
	if len(matchIDs) > 0 {
		platform = riot.PlatformFromMatchID(matchIDs[0], platform)
	}
	player.Platform = platform
	player.PlatformDisplay = riot.PlatformDisplayName(platform)

	summoner, err := s.riot.Summoner(ctx, platform, player.PUUID)
	if err != nil {
		logrus.WithError(err).WithField("puuid", player.PUUID).Debug("summoner lookup failed")
		return
	}
	icon, level := summoner.ProfileIconID, summoner.SummonerLevel
	player.ProfileIconID = &icon
	player.SummonerLevel = &level
}

func (s *Service) LookupPlayer(ctx context.Context, gameName, tagLine string) (structures.PlayerIdentity, error) {
	player, err := s.identity(ctx, gameName, tagLine)
	if err != nil {
		return player, err
	}

	ids, err := s.riot.MatchIDs(ctx, player.Region, player.PUUID, 1)
	if err != nil {
		logrus.WithError(err).WithField("puuid", player.PUUID).Debug("platform detection failed")
	}
	s.enrichIdentity(ctx, &player, ids)

	return player, nil
}

// Recap fetches the player's matches and runs the analyzer over them. Ranked standings,
// masteries, live game and narrative copy are best effort.
func (s *Service) Recap(ctx context.Context, req Request) (analyzer.PlayerRecap, error) {
	start := time.Now()
	games := 0
	outcome := outcomeError
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRecap(outcome, games, time.Since(start))
		}
	}()

	player, err := s.identity(ctx, req.GameName, req.TagLine)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			outcome = outcomeNotFound
		}
		return analyzer.PlayerRecap{}, err
	}

	ids, err := s.riot.MatchIDs(ctx, player.Region, player.PUUID, s.Count(req.Count))
	if err != nil {
		return analyzer.PlayerRecap{}, &Error{Status: 500, Message: "Failed to fetch match IDs", Err: err}
	}
	if len(ids) == 0 {
		outcome = outcomeNotFound
		return analyzer.PlayerRecap{}, &Error{Status: 404, Message: "No matches found for this player"}
	}

	s.enrichIdentity(ctx, &player, ids)

	matches := analyzer.FilterByYear(s.riot.Matches(ctx, ids), req.Year, s.loc)
	a := analyzer.New(matches, player.PUUID, s.opts...)
	games = a.Games()
	if games == 0 {
		outcome = outcomeNotFound
		return analyzer.PlayerRecap{}, &Error{Status: 404, Message: "No matches available for the selected period"}
	}

	recap := a.GenerateRecap(player)
	s.enrich(ctx, &recap)

	if req.Insights {
		s.attachNarrative(ctx, &recap, req.Year)
	}

	outcome = outcomeOK
	return recap, nil
}

func (s *Service) enrich(ctx context.Context, recap *analyzer.PlayerRecap) {
	platform := recap.Player.Platform
	puuid := recap.Player.PUUID

	g := multierror.Group{}
	g.Go(func() error {
		ranked, err := s.riot.Ranked(ctx, platform, puuid)
		if err != nil {
			return err
		}
		recap.RankedInfo = ranked
		return nil
	})
	g.Go(func() error {
		masteries, err := s.riot.Masteries(ctx, platform, puuid, s.masteryCount)
		if err != nil {
			return err
		}
		recap.ChampionMasteries = masteries
		return nil
	})
	g.Go(func() error {
		live, err := s.riot.LiveGame(ctx, platform, puuid)
		if err != nil {
			return err
		}
		recap.LiveGame = live
		return nil
	})

	if err := g.Wait().ErrorOrNil(); err != nil {
		logrus.WithError(err).WithField("puuid", puuid).Warn("recap enrichment incomplete")
	}
}

func (s *Service) attachNarrative(ctx context.Context, recap *analyzer.PlayerRecap, year string) {
	if s.narrative == nil {
		return
	}

	out, err := s.narrative.Generate(ctx, analyzer.BuildSummary(*recap, analyzer.SummaryPeriodDefault, year))
	if err != nil {
		logrus.WithError(err).WithField("puuid", recap.Player.PUUID).Warn("narrative generation failed")
		return
	}

	recap.AIInsights = &out.Text
	recap.AIInsightCards = out.Cards
}

func (s *Service) Insights(ctx context.Context, summary map[string]string) (structures.Narrative, error) {
	if s.narrative == nil {
		return structures.Narrative{}, &Error{Status: 503, Message: "Failed to generate insights", Err: ErrNarrativeDisabled}
	}

	out, err := s.narrative.Generate(ctx, summary)
	if err != nil {
		return structures.Narrative{}, &Error{Status: 500, Message: "Failed to generate insights", Err: err}
	}
	return out, nil
}
