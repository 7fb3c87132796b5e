package instance

import "github.com/bwmarrin/discordgo"

type Discord interface {
	SendMessage(channelID string, content string) (*discordgo.Message, error)
	Done() <-chan struct{}
}
