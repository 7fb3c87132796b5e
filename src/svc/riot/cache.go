package riot

import (
	"context"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/redis"
	"github.com/sirupsen/logrus"
)

const matchCachePrefix = "recap:match:"

// matchCache keeps normalized match details. Finished matches never change upstream,
// so a cached copy is only dropped by ttl or when it no longer decodes.
type matchCache struct {
	redis instance.Redis
	ttl   time.Duration
}

func matchCacheKey(matchID string) string {
	return matchCachePrefix + matchID
}

func (m *matchCache) get(ctx context.Context, matchID string) (structures.MatchRecord, bool) {
	raw, err := m.redis.Get(ctx, matchCacheKey(matchID))
	if err != nil {
		if !redis.IsNil(err) {
			logrus.WithError(err).WithField("match_id", matchID).Warn("match cache lookup failed")
		}
		return structures.MatchRecord{}, false
	}
	if raw == "" {
		return structures.MatchRecord{}, false
	}

	record := structures.MatchRecord{}
	if err := json.UnmarshalFromString(raw, &record); err != nil {
		logrus.WithError(err).WithField("match_id", matchID).Warn("dropping undecodable cached match")
		if _, err := m.redis.Del(ctx, matchCacheKey(matchID)); err != nil {
			logrus.WithError(err).Error("redis")
		}
		return structures.MatchRecord{}, false
	}

	return record, true
}

func (m *matchCache) set(ctx context.Context, record structures.MatchRecord) {
	raw, err := json.MarshalToString(record)
	if err != nil {
		logrus.WithError(err).Error("failed to encode match for cache")
		return
	}

	if err := m.redis.SetEX(ctx, matchCacheKey(record.MatchID), raw, m.ttl); err != nil {
		logrus.WithError(err).WithField("match_id", record.MatchID).Warn("failed to cache match")
	}
}
