package discord

import (
	"fmt"
	"io"
	"os"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/global"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

type discordInstance struct {
	discord *discordgo.Session
	gCtx    global.Context
	done    chan struct{}
}

// New opens a bot session used to mirror log lines into a channel.
func New(gCtx global.Context) (instance.Discord, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", gCtx.Config().Discord.Token))
	if err != nil {
		return nil, err
	}

	d := &discordInstance{
		discord: discord,
		gCtx:    gCtx,
		done:    make(chan struct{}),
	}

	discord.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuilds)

	if err := discord.Open(); err != nil {
		return nil, err
	}

	go func() {
		<-gCtx.Done()
		if err := discord.Close(); err != nil {
			logrus.Error("failed to shutdown discord session: ", err)
		}
		close(d.done)
	}()

	d.initLogger()

	return d, nil
}

func (d *discordInstance) SendMessage(channelID string, content string) (*discordgo.Message, error) {
	return d.discord.ChannelMessageSend(channelID, content)
}

func (d *discordInstance) Done() <-chan struct{} {
	return d.done
}

func (d *discordInstance) initLogger() {
	cfg := d.gCtx.Config().Discord.Logging
	if !cfg.Enabled {
		return
	}

	send := func(content string) {
		if _, err := d.SendMessage(cfg.ChannelID, content); err != nil {
			// not through logrus, the hook would block on its own pipe
			fmt.Fprintln(os.Stderr, "failed to send log message:", err)
		}
	}

	rErr, wErr := io.Pipe()
	go newLogStream(send).run(d.gCtx, rErr)
	logrus.AddHook(&writer.Hook{
		Writer: wErr,
		LogLevels: []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
			logrus.WarnLevel,
		},
	})
	if cfg.Debug {
		rStd, wStd := io.Pipe()
		go newLogStream(send).run(d.gCtx, rStd)
		logrus.AddHook(&writer.Hook{
			Writer: wStd,
			LogLevels: []logrus.Level{
				logrus.InfoLevel,
				logrus.DebugLevel,
				logrus.TraceLevel,
			},
		})
	}

	logrus.Info("discord logging init")
}
