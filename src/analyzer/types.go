package analyzer

import "github.com/AdmiralBulldogTv/LeagueRecap/src/structures"

type OverallStats struct {
	TotalGames     int     `json:"totalGames"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	OverallWinRate float64 `json:"overallWinRate"`
	OverallKDA     float64 `json:"overallKDA"`
	AverageKills   float64 `json:"averageKills"`
	AverageDeaths  float64 `json:"averageDeaths"`
	AverageAssists float64 `json:"averageAssists"`
}

type ChampionStats struct {
	ChampionName string  `json:"championName"`
	ChampionID   int     `json:"championId"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	TotalKills   int     `json:"totalKills"`
	TotalDeaths  int     `json:"totalDeaths"`
	TotalAssists int     `json:"totalAssists"`
	AvgKills     float64 `json:"avgKills"`
	AvgDeaths    float64 `json:"avgDeaths"`
	AvgAssists   float64 `json:"avgAssists"`
	KDA          float64 `json:"kda"`
}

type RoleStats struct {
	Role    string  `json:"role"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}

type Streaks struct {
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
	WorstStreak   int `json:"worstStreak"`
}

type Improvement struct {
	EarlyWinRate float64 `json:"earlyWinRate"`
	LateWinRate  float64 `json:"lateWinRate"`
	Improvement  float64 `json:"improvement"`
}

type AdvancedMetrics struct {
	ClutchFactor           float64     `json:"clutchFactor"`
	CarryPotential         float64     `json:"carryPotential"`
	ConsistencyScore       float64     `json:"consistencyScore"`
	PeakPerformanceMonth   string      `json:"peakPerformanceMonth"`
	EarlyVsLateImprovement Improvement `json:"earlyVsLateImprovement"`
}

type MonthlyTimeline struct {
	Month      string  `json:"month"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"winRate"`
	AvgKDA     float64 `json:"avgKDA"`
	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`
}

type HighlightType string

const (
	HighlightBestGame        HighlightType = "best_game"
	HighlightBiggestComeback HighlightType = "biggest_comeback"
	HighlightWorstLoss       HighlightType = "worst_loss"
	HighlightLongestGame     HighlightType = "longest_game"
	HighlightPentakill       HighlightType = "pentakill"
)

// HighlightStats is shared by every highlight type; GoldEarned and KillParticipation
// are only set where the highlight is about them.
type HighlightStats struct {
	KDA               float64  `json:"kda"`
	Kills             int      `json:"kills"`
	Deaths            int      `json:"deaths"`
	Assists           int      `json:"assists"`
	ChampionName      string   `json:"championName"`
	GameDuration      int      `json:"gameDuration"`
	Win               bool     `json:"win"`
	GoldEarned        *int     `json:"goldEarned,omitempty"`
	KillParticipation *float64 `json:"killParticipation,omitempty"`
}

type HighlightMoment struct {
	Type        HighlightType  `json:"type"`
	MatchID     string         `json:"matchId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Stats       HighlightStats `json:"stats"`
	Date        int64          `json:"date"`
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type FunAchievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Label       string  `json:"label,omitempty"`
	Rarity      Rarity  `json:"rarity"`
}

type Archetype string

const (
	ArchetypeAggressive Archetype = "aggressive"
	ArchetypeDefensive  Archetype = "defensive"
	ArchetypeTeamPlayer Archetype = "team_player"
	ArchetypeSoloCarry  Archetype = "solo_carry"
	ArchetypeStrategic  Archetype = "strategic"
)

type Traits struct {
	Aggression  float64 `json:"aggression"`
	Teamwork    float64 `json:"teamwork"`
	Consistency float64 `json:"consistency"`
	Mechanical  float64 `json:"mechanical"`
	Strategic   float64 `json:"strategic"`
}

type PlaystyleAnalysis struct {
	Primary     Archetype `json:"primary"`
	Secondary   Archetype `json:"secondary,omitempty"`
	Description string    `json:"description"`
	Traits      Traits    `json:"traits"`
	Reasoning   string    `json:"reasoning"`
}

// PlayerRecap is the merged result handed to the display layer and the narrative generator.
// The enrichment fields are filled in by the caller, never by the analyzer.
type PlayerRecap struct {
	Player structures.PlayerIdentity `json:"player"`
	OverallStats
	TopChampions    []ChampionStats `json:"topChampions"`
	UniqueChampions int             `json:"uniqueChampions"`
	RoleStats       []RoleStats     `json:"roleStats"`
	Streaks
	AdvancedMetrics  *AdvancedMetrics   `json:"advancedMetrics,omitempty"`
	MonthlyTimeline  []MonthlyTimeline  `json:"monthlyTimeline,omitempty"`
	HighlightMoments []HighlightMoment  `json:"highlightMoments,omitempty"`
	Playstyle        *PlaystyleAnalysis `json:"playstyle,omitempty"`
	FunAchievements  []FunAchievement   `json:"funAchievements,omitempty"`

	RankedInfo        []structures.RankedInfo      `json:"rankedInfo,omitempty"`
	ChampionMasteries []structures.ChampionMastery `json:"championMasteries,omitempty"`
	LiveGame          *structures.LiveGameInfo     `json:"liveGame"`
	AIInsights        *string                      `json:"aiInsights"`
	AIInsightCards    []structures.InsightCard     `json:"aiInsightCards,omitempty"`
}
