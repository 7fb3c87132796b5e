package analyzer

import (
	"strconv"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

// FilterByYear keeps the matches created in the given calendar year in loc.
// An empty year or "all" returns the input unchanged; an unparsable year matches nothing.
func FilterByYear(matches []structures.MatchRecord, year string, loc *time.Location) []structures.MatchRecord {
	if year == "" || year == SummaryYearAll {
		return matches
	}
	if loc == nil {
		loc = time.UTC
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return []structures.MatchRecord{}
	}

	filtered := make([]structures.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if m.CreatedAt().In(loc).Year() == y {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
