package modules

import (
	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/modules/recap"
	"github.com/sirupsen/logrus"
)

type Module interface {
	Name() string
	Register(gCtx global.Context) (<-chan struct{}, error)
}

func New(gCtx global.Context) <-chan struct{} {
	done := make(chan struct{})

	modules := []Module{}
	if gCtx.Config().Modules.Recap.Enabled {
		modules = append(modules, recap.New())
	}
	dones := []<-chan struct{}{}

	for _, module := range modules {
		d, err := module.Register(gCtx)
		if err != nil {
			logrus.WithError(err).Error("failed to load: ", module.Name())
			continue
		}
		logrus.Infof("module %s loaded", module.Name())
		dones = append(dones, d)
	}

	go func() {
		<-gCtx.Done()

		for _, d := range dones {
			<-d
		}

		close(done)
	}()

	return done
}
