package instance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Prometheus interface {
	Register(r prometheus.Registerer)

	ObserveRiotRequest(endpoint string, status int, took time.Duration)
	MatchCache(hit bool)
	MatchesDropped(n int)
	ObserveRecap(outcome string, games int, took time.Duration)
	Narrative(outcome string)
}
