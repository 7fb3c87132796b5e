package analyzer

import "fmt"

// rarityBands lists the lower bounds for legendary, epic and rare; anything below is common.
type rarityBands [3]float64

func (b rarityBands) rarity(v float64) Rarity {
	switch {
	case v >= b[0]:
		return RarityLegendary
	case v >= b[1]:
		return RarityEpic
	case v >= b[2]:
		return RarityRare
	}
	return RarityCommon
}

var (
	timeOfDayBands  = rarityBands{50, 30, 20}
	loyalistBands   = rarityBands{100, 50, 30}
	comebackBands   = rarityBands{20, 15, 10}
	untouchBands    = rarityBands{15, 10, 5}
	highKillBands   = rarityBands{10, 5, 3}
	goldHoarderBand = rarityBands{15000, 14000, 13000}
)

const (
	nightOwlMinGames      = 10
	earlyBirdMinGames     = 10
	loyalistMinGames      = 20
	comebackKingMinWins   = 5
	untouchableMinGames   = 3
	highKillThreshold     = 15
	highKillMinGames      = 1
	goldHoarderMinAverage = 12000
)

// FunAchievements runs every threshold check and returns the ones that qualified,
// always in the same order.
func (a *Analyzer) FunAchievements() []FunAchievement {
	var (
		nightOwl, earlyBird    int
		comebacks, untouchable int
		highKill, gold         int
	)

	for _, e := range a.entries {
		hour := e.match.CreatedAt().In(a.opts.Location).Hour()
		if hour >= 23 || hour < 6 {
			nightOwl++
		}
		if hour >= 6 && hour < 9 {
			earlyBird++
		}
		if e.player.Win && e.player.Deaths > e.player.Kills {
			comebacks++
		}
		if e.player.Deaths == 0 {
			untouchable++
		}
		if e.player.Win && e.player.Kills >= highKillThreshold {
			highKill++
		}
		gold += e.player.GoldEarned
	}

	achievements := []FunAchievement{}

	if nightOwl >= nightOwlMinGames {
		achievements = append(achievements, FunAchievement{
			ID:          "night_owl",
			Title:       "Night Owl",
			Emoji:       "🦉",
			Description: fmt.Sprintf("Played %d games between 11PM and 6AM", nightOwl),
			Value:       float64(nightOwl),
			Rarity:      timeOfDayBands.rarity(float64(nightOwl)),
		})
	}

	if top := a.TopChampions(1); len(top) == 1 && top[0].Games >= loyalistMinGames {
		achievements = append(achievements, FunAchievement{
			ID:          "champion_loyalist",
			Title:       "Champion Loyalist",
			Emoji:       "💍",
			Description: fmt.Sprintf("Played %s %d times", top[0].ChampionName, top[0].Games),
			Value:       float64(top[0].Games),
			Label:       top[0].ChampionName,
			Rarity:      loyalistBands.rarity(float64(top[0].Games)),
		})
	}

	if comebacks >= comebackKingMinWins {
		achievements = append(achievements, FunAchievement{
			ID:          "comeback_king",
			Title:       "Comeback King",
			Emoji:       "👑",
			Description: fmt.Sprintf("Won %d games with more deaths than kills", comebacks),
			Value:       float64(comebacks),
			Rarity:      comebackBands.rarity(float64(comebacks)),
		})
	}

	if untouchable >= untouchableMinGames {
		achievements = append(achievements, FunAchievement{
			ID:          "untouchable",
			Title:       "Untouchable",
			Emoji:       "🛡️",
			Description: fmt.Sprintf("Finished %d games without dying", untouchable),
			Value:       float64(untouchable),
			Rarity:      untouchBands.rarity(float64(untouchable)),
		})
	}

	if highKill >= highKillMinGames {
		achievements = append(achievements, FunAchievement{
			ID:          "killing_spree",
			Title:       "Killing Spree",
			Emoji:       "🔪",
			Description: fmt.Sprintf("Won %d games with %d or more kills", highKill, highKillThreshold),
			Value:       float64(highKill),
			Rarity:      highKillBands.rarity(float64(highKill)),
		})
	}

	if earlyBird >= earlyBirdMinGames {
		achievements = append(achievements, FunAchievement{
			ID:          "early_bird",
			Title:       "Early Bird",
			Emoji:       "🐦",
			Description: fmt.Sprintf("Played %d games between 6AM and 9AM", earlyBird),
			Value:       float64(earlyBird),
			Rarity:      timeOfDayBands.rarity(float64(earlyBird)),
		})
	}

	if avg := average(gold, len(a.entries)); avg >= goldHoarderMinAverage {
		achievements = append(achievements, FunAchievement{
			ID:          "gold_hoarder",
			Title:       "Gold Hoarder",
			Emoji:       "💰",
			Description: fmt.Sprintf("Averaged %.0f gold per game", avg),
			Value:       avg,
			Rarity:      goldHoarderBand.rarity(avg),
		})
	}

	return achievements
}
