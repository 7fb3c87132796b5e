package narrative

import (
	"fmt"
	"strings"
)

const promptTemplate = `Create a fun League of Legends "Wrapped" recap with EXACTLY 4 short cards. Keep it punchy and shareable.

PLAYER DATA (%s):
- %s games | %s%% WR | %s KDA
- Main: %s (%s%% WR in %s games)
- Champions: %s different
- Best streak: %sW | Worst: %sL
- Clutch: %s%% | Carry: %s%%

Create EXACTLY 4 cards. Format: TITLE|||CONTENT

Each card MUST be 1-2 SHORT sentences max. Use their actual stats.

CARD 1 - PLAYSTYLE|||[1-2 sentences about their playstyle with stats]
CARD 2 - HIGHLIGHTS|||[1-2 sentences about their best moments]
CARD 3 - REALITY CHECK|||[1-2 sentences with honest feedback]
CARD 4 - NEXT LEVEL|||[1-2 sentences with one specific tip]

RULES:
- EXACTLY 4 cards, no more, no less
- MAX 2 sentences per card
- Use actual numbers
- Be fun and witty
- NO emojis, NO markdown
- Separate with "|||"
- Keep it SHORT

Write EXACTLY 4 cards now:`

func value(summary map[string]string, key string, fallback string) string {
	if v := strings.TrimSpace(summary[key]); v != "" {
		return v
	}
	return fallback
}

// BuildPrompt renders the card prompt from a flat recap summary. Missing values render as placeholders.
func BuildPrompt(summary map[string]string) string {
	period := value(summary, "period", "career")
	if year := value(summary, "yearFilter", "all"); year != "all" {
		period = fmt.Sprintf("%s %s", period, year)
	}

	return fmt.Sprintf(promptTemplate,
		period,
		value(summary, "totalGames", "0"),
		value(summary, "winRate", "0"),
		value(summary, "kda", "0"),
		value(summary, "topChampion", "unknown"),
		value(summary, "topChampionWR", "0"),
		value(summary, "topChampionGames", "0"),
		value(summary, "uniqueChampions", "0"),
		value(summary, "bestStreak", "0"),
		value(summary, "worstStreak", "0"),
		value(summary, "clutchFactor", "0"),
		value(summary, "carryPotential", "0"),
	)
}
