package analyzer

// Streaks walks the games oldest first. A streak is committed to best or worst when
// the outcome flips, and the run still open at the last game is folded in as well.
func (a *Analyzer) Streaks() Streaks {
	var (
		current int
		best    int
		worst   int
	)

	commit := func() {
		if current > best {
			best = current
		}
		if -current > worst {
			worst = -current
		}
	}

	for _, e := range a.chronological() {
		if e.player.Win {
			if current > 0 {
				current++
			} else {
				commit()
				current = 1
			}
		} else {
			if current < 0 {
				current--
			} else {
				commit()
				current = -1
			}
		}
	}
	commit()

	return Streaks{
		CurrentStreak: current,
		BestStreak:    best,
		WorstStreak:   worst,
	}
}
