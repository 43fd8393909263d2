package telegram

import (
	"github.com/sirupsen/logrus"

	"github.com/LOCKhart07/wallet-balance-tracker/config"
)

// Notifier fans messages out to all configured chats. A disabled or
// credential-less notifier drops messages with a diagnostic line only.
type Notifier struct {
	log     *logrus.Logger
	client  *Client
	enabled bool
	chatIDs []string
}

func NewNotifier(log *logrus.Logger, client *Client, cfg config.TelegramConfig) *Notifier {
	return &Notifier{
		log:     log,
		client:  client,
		enabled: cfg.Enabled,
		chatIDs: cfg.ChatIDs,
	}
}

// Notify sends the message to every chat. A failed recipient is logged
// and does not block delivery to the remaining chats.
func (n *Notifier) Notify(message string) {
	if !n.enabled || n.client == nil || !n.client.HasToken() || len(n.chatIDs) == 0 {
		n.log.Info("telegram notifications disabled or not configured, dropping message")
		return
	}
	for _, chatID := range n.chatIDs {
		if err := n.client.SendMessage(chatID, message); err != nil {
			n.log.Warnf("send telegram message to %v error:%+v", chatID, err)
		}
	}
}
