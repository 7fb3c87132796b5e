package analyzer

import "time"

const (
	DefaultClutchGoldRatio          = 0.9
	DefaultCarryKillParticipation   = 60.0
	DefaultPeakMonthMinGames        = 5
	DefaultTopChampions             = 5
	PeakPerformanceMonthUnknown     = "unknown"
	RoleUnknown                     = "UNKNOWN"
	monthKeyLayout                  = "2006-01"
	highlightKillThreshold          = 5
	consistencyVariationMultiplier  = 50
	consistencyUnknownMeanVariation = 1
)

type Options struct {
	// Location is used for month buckets and time-of-day achievements.
	Location *time.Location
	// ClutchGoldRatio is the fraction of the match mean gold below which a win counts as clutch.
	// Final gold earned stands in for "being behind"; no gold timeline is available.
	ClutchGoldRatio        float64
	CarryKillParticipation float64
	PeakMonthMinGames      int
	TopChampions           int
}

type Option func(*Options)

func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc != nil {
			o.Location = loc
		}
	}
}

func WithClutchGoldRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio > 0 {
			o.ClutchGoldRatio = ratio
		}
	}
}

func WithCarryKillParticipation(pct float64) Option {
	return func(o *Options) {
		if pct > 0 {
			o.CarryKillParticipation = pct
		}
	}
}

func WithPeakMonthMinGames(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.PeakMonthMinGames = n
		}
	}
}

// WithTopChampions sets how many champions GenerateRecap keeps; 0 keeps all of them.
func WithTopChampions(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.TopChampions = n
		}
	}
}

func defaultOptions() Options {
	return Options{
		Location:               time.UTC,
		ClutchGoldRatio:        DefaultClutchGoldRatio,
		CarryKillParticipation: DefaultCarryKillParticipation,
		PeakMonthMinGames:      DefaultPeakMonthMinGames,
		TopChampions:           DefaultTopChampions,
	}
}
