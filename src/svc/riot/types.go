package riot

import "github.com/AdmiralBulldogTv/LeagueRecap/src/structures"

type accountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type summonerResponse struct {
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

type matchResponse struct {
	Metadata struct {
		MatchID      string   `json:"matchId"`
		Participants []string `json:"participants"`
	} `json:"metadata"`
	Info struct {
		GameCreation int64                 `json:"gameCreation"`
		GameDuration int                   `json:"gameDuration"`
		GameMode     string                `json:"gameMode"`
		QueueID      int                   `json:"queueId"`
		Participants []participantResponse `json:"participants"`
	} `json:"info"`
}

type participantResponse struct {
	PUUID              string `json:"puuid"`
	RiotIDGameName     string `json:"riotIdGameName"`
	SummonerName       string `json:"summonerName"`
	ChampionName       string `json:"championName"`
	ChampionID         int    `json:"championId"`
	TeamPosition       string `json:"teamPosition"`
	IndividualPosition string `json:"individualPosition"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	Win                bool   `json:"win"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	GoldEarned         int    `json:"goldEarned"`
	ChampLevel         int    `json:"champLevel"`
	Item0              int    `json:"item0"`
	Item1              int    `json:"item1"`
	Item2              int    `json:"item2"`
	Item3              int    `json:"item3"`
	Item4              int    `json:"item4"`
	Item5              int    `json:"item5"`
	Item6              int    `json:"item6"`
}

type leagueEntryResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Veteran      bool   `json:"veteran"`
	HotStreak    bool   `json:"hotStreak"`
}

type masteryResponse struct {
	ChampionID                   int      `json:"championId"`
	ChampionLevel                int      `json:"championLevel"`
	ChampionPoints               int      `json:"championPoints"`
	LastPlayTime                 int64    `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int      `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int      `json:"championPointsUntilNextLevel"`
	TokensEarned                 int      `json:"tokensEarned"`
	MilestoneGrades              []string `json:"milestoneGrades"`
}

type activeGameResponse struct {
	GameID        int64  `json:"gameId"`
	GameMode      string `json:"gameMode"`
	GameStartTime int64  `json:"gameStartTime"`
	Participants  []struct {
		PUUID      string `json:"puuid"`
		ChampionID int    `json:"championId"`
		TeamID     int    `json:"teamId"`
	} `json:"participants"`
}

func (m *matchResponse) toRecord() structures.MatchRecord {
	record := structures.MatchRecord{
		MatchID:      m.Metadata.MatchID,
		GameCreation: m.Info.GameCreation,
		GameDuration: m.Info.GameDuration,
		GameMode:     m.Info.GameMode,
		QueueID:      m.Info.QueueID,
		Participants: make([]structures.MatchParticipant, len(m.Info.Participants)),
	}

	for i, p := range m.Info.Participants {
		name := p.RiotIDGameName
		if name == "" {
			name = p.SummonerName
		}
		position := p.TeamPosition
		if position == "" {
			position = p.IndividualPosition
		}

		record.Participants[i] = structures.MatchParticipant{
			PUUID:              p.PUUID,
			SummonerName:       name,
			ChampionName:       p.ChampionName,
			ChampionID:         p.ChampionID,
			TeamPosition:       position,
			Kills:              p.Kills,
			Deaths:             p.Deaths,
			Assists:            p.Assists,
			Win:                p.Win,
			TotalMinionsKilled: p.TotalMinionsKilled,
			GoldEarned:         p.GoldEarned,
			ChampLevel:         p.ChampLevel,
			Items:              [6]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5},
			Trinket:            p.Item6,
		}
	}

	return record
}

func (e leagueEntryResponse) toRankedInfo() structures.RankedInfo {
	info := structures.RankedInfo{
		QueueType:    e.QueueType,
		Tier:         e.Tier,
		Rank:         e.Rank,
		LeaguePoints: e.LeaguePoints,
		Wins:         e.Wins,
		Losses:       e.Losses,
		Veteran:      e.Veteran,
		HotStreak:    e.HotStreak,
	}
	if total := e.Wins + e.Losses; total > 0 {
		info.WinRate = float64(e.Wins) / float64(total) * 100
	}
	return info
}

func (m masteryResponse) toMastery() structures.ChampionMastery {
	return structures.ChampionMastery{
		ChampionID:                   m.ChampionID,
		ChampionLevel:                m.ChampionLevel,
		ChampionPoints:               m.ChampionPoints,
		LastPlayTime:                 m.LastPlayTime,
		ChampionPointsSinceLastLevel: m.ChampionPointsSinceLastLevel,
		ChampionPointsUntilNextLevel: m.ChampionPointsUntilNextLevel,
		TokensEarned:                 m.TokensEarned,
		MilestoneGrades:              m.MilestoneGrades,
	}
}
