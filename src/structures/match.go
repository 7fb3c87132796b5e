package structures

import "time"

type MatchParticipant struct {
	PUUID              string `json:"puuid"`
	SummonerName       string `json:"summonerName"`
	ChampionName       string `json:"championName"`
	ChampionID         int    `json:"championId"`
	TeamPosition       string `json:"teamPosition"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	Win                bool   `json:"win"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	GoldEarned         int    `json:"goldEarned"`
	ChampLevel         int    `json:"champLevel"`
	Items              [6]int `json:"items"`
	Trinket            int    `json:"trinket"`
}

type MatchRecord struct {
	MatchID      string             `json:"matchId"`
	GameCreation int64              `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"`
	GameMode     string             `json:"gameMode"`
	QueueID      int                `json:"queueId"`
	Participants []MatchParticipant `json:"participants"`
}

// Participant returns the row belonging to puuid, or nil when the player did not play in the match.
func (m *MatchRecord) Participant(puuid string) *MatchParticipant {
	for i := range m.Participants {
		if m.Participants[i].PUUID == puuid {
			return &m.Participants[i]
		}
	}
	return nil
}

func (m *MatchRecord) CreatedAt() time.Time {
	return time.UnixMilli(m.GameCreation)
}

type PlayerIdentity struct {
	PUUID           string `json:"puuid"`
	GameName        string `json:"gameName"`
	TagLine         string `json:"tagLine"`
	ProfileIconID   *int   `json:"profileIconId,omitempty"`
	SummonerLevel   *int   `json:"summonerLevel,omitempty"`
	Region          string `json:"region,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformDisplay string `json:"platformDisplay,omitempty"`
}
