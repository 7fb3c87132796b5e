package riot

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/sirupsen/logrus"
)

// Account resolves a Riot ID by trying each routing region in order. A not-found moves on to
// the next region and a rejected key stops the search. Other failures are logged and skipped;
// the last of them is returned when no region answered not-found.
func (c *Client) Account(ctx context.Context, gameName, tagLine string) (structures.PlayerIdentity, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))

	var (
		lastErr  error
		notFound bool
	)
	for _, region := range c.regions {
		resp := accountResponse{}
		err := c.get(ctx, "account", region, path, &resp)
		if err == nil {
			return structures.PlayerIdentity{
				PUUID:    resp.PUUID,
				GameName: resp.GameName,
				TagLine:  resp.TagLine,
				Region:   region,
			}, nil
		}

		switch {
		case errors.Is(err, ErrForbidden):
			return structures.PlayerIdentity{}, err
		case errors.Is(err, ErrNotFound):
			notFound = true
			logrus.WithField("region", region).Debugf("account %s#%s not found", gameName, tagLine)
		case ctx.Err() != nil:
			return structures.PlayerIdentity{}, ctx.Err()
		default:
			lastErr = err
			logrus.WithError(err).WithField("region", region).Warn("account lookup failed")
		}
	}

	if !notFound && lastErr != nil {
		return structures.PlayerIdentity{}, lastErr
	}
	return structures.PlayerIdentity{}, ErrNotFound
}

func (c *Client) Summoner(ctx context.Context, platform, puuid string) (structures.Summoner, error) {
	resp := summonerResponse{}
	err := c.get(ctx, "summoner", c.platformOr(platform), "/lol/summoner/v4/summoners/by-puuid/"+url.PathEscape(puuid), &resp)
	if err != nil {
		return structures.Summoner{}, err
	}

	return structures.Summoner{
		PUUID:         resp.PUUID,
		ProfileIconID: resp.ProfileIconID,
		SummonerLevel: resp.SummonerLevel,
	}, nil
}

// Ranked returns the player's league entries. An unranked player yields an empty slice.
func (c *Client) Ranked(ctx context.Context, platform, puuid string) ([]structures.RankedInfo, error) {
	resp := []leagueEntryResponse{}
	err := c.get(ctx, "league", c.platformOr(platform), "/lol/league/v4/entries/by-puuid/"+url.PathEscape(puuid), &resp)
	if errors.Is(err, ErrNotFound) {
		return []structures.RankedInfo{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]structures.RankedInfo, len(resp))
	for i, e := range resp {
		entries[i] = e.toRankedInfo()
	}
	return entries, nil
}

func (c *Client) Masteries(ctx context.Context, platform, puuid string, count int) ([]structures.ChampionMastery, error) {
	if count <= 0 {
		count = 5
	}

	resp := []masteryResponse{}
	path := fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d", url.PathEscape(puuid), count)
	err := c.get(ctx, "mastery", c.platformOr(platform), path, &resp)
	if errors.Is(err, ErrNotFound) {
		return []structures.ChampionMastery{}, nil
	}
	if err != nil {
		return nil, err
	}

	masteries := make([]structures.ChampionMastery, len(resp))
	for i, m := range resp {
		masteries[i] = m.toMastery()
	}
	return masteries, nil
}

// LiveGame returns the game the player is in right now, or nil when they are not in one.
func (c *Client) LiveGame(ctx context.Context, platform, puuid string) (*structures.LiveGameInfo, error) {
	resp := activeGameResponse{}
	err := c.get(ctx, "spectator", c.platformOr(platform), "/lol/spectator/v5/active-games/by-summoner/"+url.PathEscape(puuid), &resp)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for _, p := range resp.Participants {
		if p.PUUID == puuid {
			return &structures.LiveGameInfo{
				GameID:        resp.GameID,
				GameMode:      resp.GameMode,
				GameStartTime: resp.GameStartTime,
				ChampionID:    p.ChampionID,
				TeamID:        p.TeamID,
			}, nil
		}
	}

	return nil, nil
}

func (c *Client) platformOr(platform string) string {
	if platform == "" || !IsPlatform(platform) {
		return c.platform
	}
	return platform
}
