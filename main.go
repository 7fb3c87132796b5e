package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/configure"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/modules"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/discord"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/monitoring"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/narrative"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/prometheus"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/redis"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/svc/riot"
	"github.com/bugsnag/panicwrap"
	"github.com/davecgh/go-spew/spew"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = time.Minute

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		logrus.Error(s)
	})
	if err != nil {
		logrus.Error("failed to setup panic handler: ", err)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		logrus.Info("League Recap")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		redacted := *config
		redacted.Riot.APIKey = ""
		redacted.Narrative.SecretAccessKey = ""
		redacted.Redis.Password = ""
		redacted.Discord.Token = ""
		logrus.Debug("config: ", spew.Sdump(redacted))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	c, cancel := context.WithCancel(context.Background())

	gCtx := global.New(c, config)

	registry := prom.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	gCtx.Inst().Prometheus = prometheus.New(prometheus.SetupOptions{
		Labels: prometheus.LabelsFromKeyValue(config.Monitoring.Labels),
	})
	gCtx.Inst().Prometheus.Register(registry)

	if config.Redis.Enabled {
		gCtx.Inst().Redis, err = redis.NewClient(gCtx, redis.SetupOptions{
			Username:   config.Redis.Username,
			Password:   config.Redis.Password,
			MasterName: config.Redis.MasterName,
			Addresses:  config.Redis.Addresses,
			Database:   config.Redis.Database,
			Sentinel:   config.Redis.Sentinel,
		})
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to redis")
		}
	}

	if config.Riot.APIKey == "" {
		logrus.Warn("riot.api_key is not set, upstream requests will be rejected")
	}

	riotOpts := []riot.Option{
		riot.WithTimeout(config.Riot.Timeout),
		riot.WithRetry(config.Riot.Retry.Attempts, config.Riot.Retry.Delay),
		riot.WithRateLimit(config.Riot.Rate.PerSecond, config.Riot.Rate.PerTwoMinutes),
		riot.WithConcurrency(config.Riot.FetchConcurrency),
		riot.WithRegions(config.Riot.RoutingRegions),
		riot.WithDefaultPlatform(config.Riot.DefaultPlatform),
		riot.WithMetrics(gCtx.Inst().Prometheus),
	}
	if gCtx.Inst().Redis != nil {
		riotOpts = append(riotOpts, riot.WithCache(gCtx.Inst().Redis, config.Redis.MatchTTL))
	}
	gCtx.Inst().Riot = riot.New(config.Riot.APIKey, riotOpts...)

	if config.Narrative.Enabled {
		generator, err := narrative.New(gCtx, narrative.SetupOptions{
			Region:          config.Narrative.Region,
			ModelID:         config.Narrative.ModelID,
			MaxTokens:       config.Narrative.MaxTokens,
			AccessKeyID:     config.Narrative.AccessKeyID,
			SecretAccessKey: config.Narrative.SecretAccessKey,
			Timeout:         config.Narrative.Timeout,
		}, gCtx.Inst().Prometheus)
		if err != nil {
			logrus.WithError(err).Error("failed to setup narrative generator, insights disabled")
		} else {
			gCtx.Inst().Narrative = generator
		}
	}

	if config.Discord.Logging.Enabled {
		d, err := discord.New(gCtx)
		if err != nil {
			logrus.WithError(err).Error("failed to open discord log sink")
		} else {
			gCtx.Inst().Discord = d
		}
	}

	monitoringDone := monitoring.New(gCtx, registry)
	modulesDone := modules.New(gCtx)

	logrus.Info("running")

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-sig:
			case <-time.After(shutdownTimeout):
			}
			logrus.Fatal("force shutdown")
		}()

		logrus.Info("shutting down")

		<-monitoringDone
		<-modulesDone
		if gCtx.Inst().Discord != nil {
			<-gCtx.Inst().Discord.Done()
		}

		close(done)
	}()

	<-done

	logrus.Info("shutdown")
	os.Exit(0)
}
