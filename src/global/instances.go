package global

import "github.com/AdmiralBulldogTv/LeagueRecap/src/instance"

type Instances struct {
	Redis      instance.Redis
	Prometheus instance.Prometheus
	Riot       instance.Riot
	Narrative  instance.Narrative
	Discord    instance.Discord
}
