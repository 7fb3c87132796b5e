package instance

import (
	"context"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

// Riot is the upstream match-data source. Region arguments are routing regions
// (americas, europe, asia, sea); platform arguments are platform hosts (na1, euw1, ...).
type Riot interface {
	Account(ctx context.Context, gameName, tagLine string) (structures.PlayerIdentity, error)
	Summoner(ctx context.Context, platform, puuid string) (structures.Summoner, error)
	MatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error)
	Match(ctx context.Context, matchID string) (structures.MatchRecord, error)
	Matches(ctx context.Context, matchIDs []string) []structures.MatchRecord
	Ranked(ctx context.Context, platform, puuid string) ([]structures.RankedInfo, error)
	Masteries(ctx context.Context, platform, puuid string, count int) ([]structures.ChampionMastery, error)
	LiveGame(ctx context.Context, platform, puuid string) (*structures.LiveGameInfo, error)
}
