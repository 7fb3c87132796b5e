package instance

import (
	"context"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

type Narrative interface {
	Generate(ctx context.Context, summary map[string]string) (structures.Narrative, error)
}
