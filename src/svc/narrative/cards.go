package narrative

import (
	"regexp"
	"strings"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
)

const CardDelimiter = "|||"

var cardPrefix = regexp.MustCompile(`(?i)^\s*(card\s*\d+\s*[-:.]\s*)`)

// ParseCards splits generated text on CardDelimiter and pairs the segments in order as
// title and content. A body that runs onto a new line before the next delimiter is cut at
// its last newline, the remainder being the next title, so one TITLE|||CONTENT per line
// parses the same as a single alternating run. Text with no delimiter yields nil.
func ParseCards(text string) []structures.InsightCard {
	var parts []string
	for _, p := range strings.Split(text, CardDelimiter) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil
	}

	var (
		cards   []structures.InsightCard
		title   string
		pending bool
	)
	for i, p := range parts {
		if !pending {
			title = cleanTitle(lastLine(p))
			pending = true
			continue
		}

		content, next := p, ""
		if i < len(parts)-1 {
			if n := strings.LastIndex(p, "\n"); n >= 0 {
				content, next = strings.TrimSpace(p[:n]), p[n+1:]
			}
		}

		if title != "" || content != "" {
			cards = append(cards, structures.InsightCard{
				Title:   title,
				Content: content,
			})
		}

		if next != "" {
			title = cleanTitle(next)
		} else {
			pending = false
		}
	}

	return cards
}

func lastLine(s string) string {
	if n := strings.LastIndex(s, "\n"); n >= 0 {
		return s[n+1:]
	}
	return s
}

func cleanTitle(s string) string {
	return strings.TrimSpace(cardPrefix.ReplaceAllString(strings.TrimSpace(s), ""))
}
