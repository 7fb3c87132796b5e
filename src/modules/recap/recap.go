package recap

import (
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/utils"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

type Module struct {
	gCtx global.Context
	svc  *Service
	done chan struct{}
}

func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "Recap"
}

func (m *Module) Register(gCtx global.Context) (<-chan struct{}, error) {
	if gCtx.Inst().Riot == nil {
		return nil, ErrNoRiot
	}

	m.init(gCtx)

	srv := fasthttp.Server{
		Handler:      m.handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + 10*time.Second,
	}

	go func() {
		bind := gCtx.Config().Modules.Recap.Bind
		logrus.WithField("bind", bind).Info("recap api listening")
		if err := srv.ListenAndServe(bind); err != nil {
			logrus.Fatal("failed to listen http: ", err)
		}
	}()

	go func() {
		<-gCtx.Done()
		if err := srv.Shutdown(); err != nil {
			logrus.Error("failed to shutdown recap api: ", err)
		}
		close(m.done)
	}()

	return m.done, nil
}

func (m *Module) init(gCtx global.Context) {
	m.gCtx = gCtx
	m.done = make(chan struct{})
	m.svc = NewService(gCtx.Config(), gCtx.Inst().Riot, gCtx.Inst().Narrative, gCtx.Inst().Prometheus)
}

// handler wraps the routes with panic recovery, request logging and CORS.
func (m *Module) handler() fasthttp.RequestHandler {
	h := m.routes()
	origin := m.gCtx.Config().Modules.Recap.CORSOrigin

	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		defer func() {
			err := recover()
			if err != nil {
				writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error", "")
			}
			log := logrus.WithFields(logrus.Fields{
				"path":     string(ctx.Path()),
				"status":   ctx.Response.StatusCode(),
				"duration": time.Since(start),
			})
			if err != nil {
				log.WithField("panic", err).Error()
			} else {
				log.Info("")
			}
		}()

		if origin != "" {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
			if utils.B2S(ctx.Method()) == fasthttp.MethodOptions {
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
		}

		h(ctx)
	}
}
