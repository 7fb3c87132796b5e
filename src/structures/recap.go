package structures

type RankedInfo struct {
	QueueType    string  `json:"queueType"`
	Tier         string  `json:"tier"`
	Rank         string  `json:"rank"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	Veteran      bool    `json:"veteran"`
	HotStreak    bool    `json:"hotStreak"`
}

type ChampionMastery struct {
	ChampionID                   int      `json:"championId"`
	ChampionName                 string   `json:"championName,omitempty"`
	ChampionLevel                int      `json:"championLevel"`
	ChampionPoints               int      `json:"championPoints"`
	LastPlayTime                 int64    `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int      `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int      `json:"championPointsUntilNextLevel"`
	TokensEarned                 int      `json:"tokensEarned"`
	MilestoneGrades              []string `json:"milestoneGrades,omitempty"`
}

type LiveGameInfo struct {
	GameID        int64  `json:"gameId"`
	GameMode      string `json:"gameMode"`
	GameStartTime int64  `json:"gameStartTime"`
	ChampionID    int    `json:"championId"`
	ChampionName  string `json:"championName,omitempty"`
	TeamID        int    `json:"teamId"`
}

type InsightCard struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Summoner struct {
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Narrative is generated recap copy. Cards is empty when the text could not be split.
type Narrative struct {
	Text  string        `json:"insights"`
	Cards []InsightCard `json:"cards"`
}
