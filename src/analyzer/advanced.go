package analyzer

import (
	"math"
	"sort"
)

func (a *Analyzer) AdvancedMetrics() AdvancedMetrics {
	return AdvancedMetrics{
		ClutchFactor:           a.ClutchFactor(),
		CarryPotential:         a.CarryPotential(),
		ConsistencyScore:       a.ConsistencyScore(),
		PeakPerformanceMonth:   a.PeakPerformanceMonth(),
		EarlyVsLateImprovement: a.EarlyVsLateImprovement(),
	}
}

// ClutchFactor is the share of games won while holding less than ClutchGoldRatio of the
// match mean gold. Final gold is a proxy for being behind, not a gold timeline.
func (a *Analyzer) ClutchFactor() float64 {
	clutch := 0
	for _, e := range a.entries {
		if !e.player.Win {
			continue
		}
		if float64(e.player.GoldEarned) < meanGold(e.match)*a.opts.ClutchGoldRatio {
			clutch++
		}
	}
	return winRate(clutch, len(a.entries))
}

func (a *Analyzer) CarryPotential() float64 {
	carries := 0
	for _, e := range a.entries {
		if e.player.Win && killParticipation(e.match, e.player) >= a.opts.CarryKillParticipation {
			carries++
		}
	}
	return winRate(carries, len(a.entries))
}

// ConsistencyScore maps the coefficient of variation of per-game KDA onto 0..100.
func (a *Analyzer) ConsistencyScore() float64 {
	n := len(a.entries)
	if n == 0 {
		return 0
	}

	kdas := make([]float64, n)
	sum := 0.0
	for i, e := range a.entries {
		kdas[i] = KDA(e.player.Kills, e.player.Deaths, e.player.Assists)
		sum += kdas[i]
	}
	mean := sum / float64(n)

	cv := float64(consistencyUnknownMeanVariation)
	if mean != 0 {
		variance := 0.0
		for _, k := range kdas {
			variance += (k - mean) * (k - mean)
		}
		variance /= float64(n)
		cv = math.Sqrt(variance) / mean
	}

	return clamp(100-cv*consistencyVariationMultiplier, 0, 100)
}

// PeakPerformanceMonth is the YYYY-MM bucket with the best win rate among buckets with at
// least PeakMonthMinGames games. The earliest month wins ties.
func (a *Analyzer) PeakPerformanceMonth() string {
	type bucket struct {
		games int
		wins  int
	}

	buckets := map[string]*bucket{}
	for _, e := range a.entries {
		key := a.monthKey(e.match)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.games++
		if e.player.Win {
			b.wins++
		}
	}

	months := make([]string, 0, len(buckets))
	for k := range buckets {
		months = append(months, k)
	}
	sort.Strings(months)

	peak := PeakPerformanceMonthUnknown
	bestRate := -1.0
	for _, month := range months {
		b := buckets[month]
		if b.games < a.opts.PeakMonthMinGames {
			continue
		}
		if rate := winRate(b.wins, b.games); rate > bestRate {
			bestRate = rate
			peak = month
		}
	}

	return peak
}

// EarlyVsLateImprovement splits the games chronologically at n/2; the later half gets
// the extra game on odd counts.
func (a *Analyzer) EarlyVsLateImprovement() Improvement {
	sorted := a.chronological()
	mid := len(sorted) / 2

	countWins := func(entries []playerMatch) int {
		wins := 0
		for _, e := range entries {
			if e.player.Win {
				wins++
			}
		}
		return wins
	}

	early := winRate(countWins(sorted[:mid]), mid)
	late := winRate(countWins(sorted[mid:]), len(sorted)-mid)

	return Improvement{
		EarlyWinRate: early,
		LateWinRate:  late,
		Improvement:  late - early,
	}
}
