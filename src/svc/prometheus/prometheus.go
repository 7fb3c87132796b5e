package prometheus

import (
	"strconv"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/configure"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"

	"github.com/prometheus/client_golang/prometheus"
)

type mon struct {
	riotRequests   *prometheus.CounterVec
	riotDuration   *prometheus.HistogramVec
	matchCache     *prometheus.CounterVec
	matchesDropped prometheus.Counter
	recaps         *prometheus.CounterVec
	recapGames     prometheus.Histogram
	recapDuration  prometheus.Histogram
	narrative      *prometheus.CounterVec
}

func (m *mon) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.riotRequests,
		m.riotDuration,
		m.matchCache,
		m.matchesDropped,
		m.recaps,
		m.recapGames,
		m.recapDuration,
		m.narrative,
	)
}

func (m *mon) ObserveRiotRequest(endpoint string, status int, took time.Duration) {
	m.riotRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.riotDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}

func (m *mon) MatchCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.matchCache.WithLabelValues(result).Inc()
}

func (m *mon) MatchesDropped(n int) {
	m.matchesDropped.Add(float64(n))
}

func (m *mon) ObserveRecap(outcome string, games int, took time.Duration) {
	m.recaps.WithLabelValues(outcome).Inc()
	if games > 0 {
		m.recapGames.Observe(float64(games))
	}
	m.recapDuration.Observe(took.Seconds())
}

func (m *mon) Narrative(outcome string) {
	m.narrative.WithLabelValues(outcome).Inc()
}

func LabelsFromKeyValue(kv []configure.KeyValue) prometheus.Labels {
	mp := prometheus.Labels{}

	for _, v := range kv {
		mp[v.Key] = v.Value
	}

	return mp
}

func New(opts SetupOptions) instance.Prometheus {
	return &mon{
		riotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "league_recap_riot_requests_total",
			Help:        "Requests made to the Riot API by endpoint and status code.",
			ConstLabels: opts.Labels,
		}, []string{"endpoint", "status"}),
		riotDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "league_recap_riot_request_duration_seconds",
			Help:        "Riot API request latency.",
			ConstLabels: opts.Labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),
		matchCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "league_recap_match_cache_total",
			Help:        "Match detail cache lookups by result.",
			ConstLabels: opts.Labels,
		}, []string{"result"}),
		matchesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "league_recap_matches_dropped_total",
			Help:        "Matches dropped after failing to fetch.",
			ConstLabels: opts.Labels,
		}),
		recaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "league_recap_recaps_total",
			Help:        "Recap requests by outcome.",
			ConstLabels: opts.Labels,
		}, []string{"outcome"}),
		recapGames: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "league_recap_recap_games",
			Help:        "Games analyzed per recap.",
			ConstLabels: opts.Labels,
			Buckets:     []float64{1, 5, 10, 20, 50, 100, 250, 500},
		}),
		recapDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "league_recap_recap_duration_seconds",
			Help:        "Time to build a recap end to end.",
			ConstLabels: opts.Labels,
			Buckets:     []float64{.25, .5, 1, 2.5, 5, 10, 20, 40},
		}),
		narrative: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "league_recap_narrative_total",
			Help:        "Narrative generations by outcome.",
			ConstLabels: opts.Labels,
		}, []string{"outcome"}),
	}
}

type SetupOptions struct {
	Labels prometheus.Labels
}
