package monitoring

import (
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const pingTimeout = 2 * time.Second

// New starts the metrics and health servers that are enabled in the config.
// The returned channel closes once both have shut down.
func New(gCtx global.Context, gatherer prometheus.Gatherer) <-chan struct{} {
	done := make(chan struct{})

	servers := []*fasthttp.Server{}
	if gCtx.Config().Monitoring.Enabled {
		srv := &fasthttp.Server{
			Handler: MetricsHandler(gatherer),
		}
		servers = append(servers, srv)
		go serve(srv, "metrics", gCtx.Config().Monitoring.Bind)
	}

	if gCtx.Config().Health.Enabled {
		srv := &fasthttp.Server{
			Handler: HealthHandler(gCtx),
		}
		servers = append(servers, srv)
		go serve(srv, "health", gCtx.Config().Health.Bind)
	}

	go func() {
		<-gCtx.Done()
		for _, srv := range servers {
			if err := srv.Shutdown(); err != nil {
				logrus.WithError(err).Error("failed to shutdown monitoring server")
			}
		}
		close(done)
	}()

	return done
}

func serve(srv *fasthttp.Server, name string, bind string) {
	logrus.WithField("bind", bind).Infof("%s server listening", name)
	if err := srv.ListenAndServe(bind); err != nil {
		logrus.WithError(err).Fatalf("failed to listen %s", name)
	}
}

func MetricsHandler(gatherer prometheus.Gatherer) fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// HealthHandler answers 200 unless a configured redis stops answering pings.
func HealthHandler(gCtx global.Context) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if r := gCtx.Inst().Redis; r != nil {
			lCtx, cancel := global.WithTimeout(gCtx, pingTimeout)
			defer cancel()
			if err := r.Ping(lCtx); err != nil {
				logrus.WithError(err).Error("health check: redis ping failed")
				ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
				ctx.SetBodyString("redis unavailable")
				return
			}
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	}
}
