package analyzer

import (
	"fmt"
	"sort"
)

const (
	aggressionKillsScale = 10
	teamworkAssistsScale = 15
	mechanicalKDAScale   = 5
	strategicClutchScale = 2
)

type trait struct {
	name      string
	score     float64
	archetype Archetype
}

// playstyleRule is one row of the decision table; rules are tried in order.
type playstyleRule struct {
	archetype Archetype
	match     func(t Traits) bool
}

var playstyleRules = []playstyleRule{
	{ArchetypeAggressive, func(t Traits) bool { return t.Aggression > 70 && t.Mechanical > 60 }},
	{ArchetypeTeamPlayer, func(t Traits) bool { return t.Teamwork > 70 && t.Strategic > 50 }},
	{ArchetypeSoloCarry, func(t Traits) bool { return t.Mechanical > 70 && t.Aggression > 50 && t.Teamwork < 50 }},
	{ArchetypeDefensive, func(t Traits) bool { return t.Consistency > 70 && t.Aggression < 40 }},
	{ArchetypeStrategic, func(t Traits) bool { return t.Strategic > 60 }},
	{ArchetypeTeamPlayer, func(t Traits) bool { return t.Teamwork > 70 }},
}

var archetypeDescriptions = map[Archetype]string{
	ArchetypeAggressive: "You play to win fights. High kill pressure backed by clean mechanics makes you the one opponents have to track.",
	ArchetypeDefensive:  "Steady and hard to punish. You keep deaths low and deliver the same performance game after game.",
	ArchetypeTeamPlayer: "You make everyone around you better. Your assists and presence in team fights drive your wins.",
	ArchetypeSoloCarry:  "You take games into your own hands. Strong individual play lets you win even when the team does not follow.",
	ArchetypeStrategic:  "You win the long game. Even when behind on gold you find the angles that close games out.",
}

func (t Traits) ranked() []trait {
	traits := []trait{
		{"aggression", t.Aggression, ArchetypeAggressive},
		{"teamwork", t.Teamwork, ArchetypeTeamPlayer},
		{"consistency", t.Consistency, ArchetypeDefensive},
		{"mechanical", t.Mechanical, ArchetypeSoloCarry},
		{"strategic", t.Strategic, ArchetypeStrategic},
	}
	sort.SliceStable(traits, func(i, j int) bool {
		return traits[i].score > traits[j].score
	})
	return traits
}

// Classify maps trait scores to a primary and optional secondary archetype.
func Classify(t Traits) (Archetype, Archetype) {
	ranked := t.ranked()

	primary := ranked[0].archetype
	for _, rule := range playstyleRules {
		if rule.match(t) {
			primary = rule.archetype
			break
		}
	}

	var secondary Archetype
	if ranked[1].archetype != primary {
		secondary = ranked[1].archetype
	}

	return primary, secondary
}

// Playstyle derives trait scores from the overall and advanced statistics and classifies them.
// It returns nil when there are no games.
func (a *Analyzer) Playstyle() *PlaystyleAnalysis {
	if len(a.entries) == 0 {
		return nil
	}

	overall := a.OverallStats()
	clutch := a.ClutchFactor()
	consistency := a.ConsistencyScore()

	traits := Traits{
		Aggression:  clamp(overall.AverageKills*aggressionKillsScale, 0, 100),
		Teamwork:    clamp(overall.AverageAssists/teamworkAssistsScale*100, 0, 100),
		Consistency: clamp(consistency, 0, 100),
		Mechanical:  clamp(overall.OverallKDA/mechanicalKDAScale*100, 0, 100),
		Strategic:   clamp(clutch*strategicClutchScale, 0, 100),
	}

	primary, secondary := Classify(traits)

	return &PlaystyleAnalysis{
		Primary:     primary,
		Secondary:   secondary,
		Description: archetypeDescriptions[primary],
		Traits:      traits,
		Reasoning: fmt.Sprintf(
			"%.1f kills and %.1f assists per game at a %.2f KDA, consistency %.0f/100, clutch wins in %.1f%% of games",
			overall.AverageKills, overall.AverageAssists, overall.OverallKDA, consistency, clutch,
		),
	}
}
