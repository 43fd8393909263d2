package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	pollTimeout    = 30 * time.Second
	pollRetryDelay = 5 * time.Second
)

// Command is one chat command the bot serves.
type Command struct {
	Name        string
	Description string
	Run         func() error
}

// Bot serves on-demand monitor commands over long polling.
type Bot struct {
	log      *logrus.Logger
	client   *Client
	commands []Command
	byName   map[string]Command
}

func NewBot(log *logrus.Logger, client *Client, commands []Command) *Bot {
	byName := make(map[string]Command, len(commands))
	for _, command := range commands {
		byName[command.Name] = command
	}
	return &Bot{log: log, client: client, commands: commands, byName: byName}
}

// Run registers the command menu and polls for updates until the context
// is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	menu := make([]BotCommand, 0, len(b.commands))
	for _, command := range b.commands {
		menu = append(menu, BotCommand{Command: command.Name, Description: command.Description})
	}
	if err := b.client.SetMyCommands(menu); err != nil {
		b.log.Warnf("telegram setMyCommands error:%+v", err)
	}
	b.log.Info("🤖 telegram bot started, waiting for commands...")
	var offset int64
	for {
		updates, err := b.client.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.log.Warnf("telegram getUpdates error:%+v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollRetryDelay):
			}
			continue
		}
		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			b.handle(update)
		}
	}
}

func (b *Bot) handle(update Update) {
	if update.Message == nil {
		return
	}
	name := parseCommand(update.Message.Text)
	command, ok := b.byName[name]
	if !ok {
		return
	}
	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	b.log.Infof("received /%v from chat %v", name, chatID)
	b.reply(chatID, "⏳ Running now...")
	if err := command.Run(); err != nil {
		b.log.Errorf("command /%v error:%+v", name, err)
		b.reply(chatID, fmt.Sprintf("❌ Error: %v", err))
		return
	}
	b.reply(chatID, "✅ Run completed successfully.")
}

func (b *Bot) reply(chatID, text string) {
	if err := b.client.SendMessage(chatID, text); err != nil {
		b.log.Warnf("send telegram reply to %v error:%+v", chatID, err)
	}
}

// parseCommand extracts the bare command name from a message like
// "/status" or "/status@MyBot now". Empty when the message is not a
// command.
func parseCommand(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}
