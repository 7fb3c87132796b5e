package riot

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MatchIDs lists up to count of the player's most recent match ids, paging by 100.
func (c *Client) MatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	if region == "" {
		region = RoutingForPlatform(c.platform)
	}

	ids := []string{}
	for start := 0; start < count; start += matchIDPageSize {
		size := count - start
		if size > matchIDPageSize {
			size = matchIDPageSize
		}

		page := []string{}
		path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d", url.PathEscape(puuid), start, size)
		if err := c.get(ctx, "match_ids", region, path, &page); err != nil {
			return nil, err
		}

		ids = append(ids, page...)
		if len(page) < size {
			break
		}
	}

	return ids, nil
}

// Match fetches one match, routed by the platform prefix of its id.
func (c *Client) Match(ctx context.Context, matchID string) (structures.MatchRecord, error) {
	if c.cache != nil {
		record, ok := c.cache.get(ctx, matchID)
		if c.metrics != nil {
			c.metrics.MatchCache(ok)
		}
		if ok {
			return record, nil
		}
	}

	region := RoutingForPlatform(PlatformFromMatchID(matchID, c.platform))

	resp := matchResponse{}
	if err := c.get(ctx, "match", region, "/lol/match/v5/matches/"+url.PathEscape(matchID), &resp); err != nil {
		return structures.MatchRecord{}, err
	}

	record := resp.toRecord()
	if c.cache != nil {
		c.cache.set(ctx, record)
	}

	return record, nil
}

// Matches fetches every id concurrently. Matches that fail are dropped and the survivors
// keep the order of matchIDs.
func (c *Client) Matches(ctx context.Context, matchIDs []string) []structures.MatchRecord {
	results := make([]*structures.MatchRecord, len(matchIDs))

	g := errgroup.Group{}
	g.SetLimit(c.concurrency)

	for i, id := range matchIDs {
		i, id := i, id
		g.Go(func() error {
			record, err := c.Match(ctx, id)
			if err != nil {
				log := logrus.WithError(err).WithField("match_id", id)
				if IsPermanent(err) {
					log.Debug("skipping match")
				} else {
					log.Warn("dropping match")
				}
				return nil
			}
			results[i] = &record
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]structures.MatchRecord, 0, len(matchIDs))
	for _, r := range results {
		if r != nil {
			matches = append(matches, *r)
		}
	}

	if dropped := len(matchIDs) - len(matches); dropped > 0 && c.metrics != nil {
		c.metrics.MatchesDropped(dropped)
	}

	return matches
}
