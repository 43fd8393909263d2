package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.telegram.org"

	// sendTimeout bounds one sendMessage call. clientTimeout has to stay
	// above the long-poll window handed to getUpdates.
	sendTimeout   = 10 * time.Second
	clientTimeout = 50 * time.Second
)

// Client is a minimal Telegram Bot API client.
type Client struct {
	rest  *resty.Client
	token string
}

func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultBaseURL)
}

// NewClientWithBaseURL exists for tests pointing at a local server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(clientTimeout)
	return &Client{rest: rest, token: token}
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// SendMessage posts one Markdown message to a chat.
func (c *Client) SendMessage(chatID, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	var out apiResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{
			ChatID:                chatID,
			Text:                  text,
			ParseMode:             "Markdown",
			DisableWebPagePreview: true,
		}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/bot%v/sendMessage", c.token))
	if err != nil {
		return errors.Wrap(err, "telegram sendMessage")
	}
	if resp.IsError() || !out.Ok {
		return errors.Errorf("telegram sendMessage status %v: %v", resp.StatusCode(), out.Description)
	}
	return nil
}

type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// GetUpdates long-polls for updates with ids >= offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	var out struct {
		Ok          bool     `json:"ok"`
		Description string   `json:"description"`
		Result      []Update `json:"result"`
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("offset", strconv.FormatInt(offset, 10)).
		SetQueryParam("timeout", strconv.Itoa(int(timeout/time.Second))).
		SetResult(&out).
		SetError(&out).
		Get(fmt.Sprintf("/bot%v/getUpdates", c.token))
	if err != nil {
		return nil, errors.Wrap(err, "telegram getUpdates")
	}
	if resp.IsError() || !out.Ok {
		return nil, errors.Errorf("telegram getUpdates status %v: %v", resp.StatusCode(), out.Description)
	}
	return out.Result, nil
}

type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands registers the command menu shown by Telegram clients.
func (c *Client) SetMyCommands(commands []BotCommand) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	var out apiResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"commands": commands}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/bot%v/setMyCommands", c.token))
	if err != nil {
		return errors.Wrap(err, "telegram setMyCommands")
	}
	if resp.IsError() || !out.Ok {
		return errors.Errorf("telegram setMyCommands status %v: %v", resp.StatusCode(), out.Description)
	}
	return nil
}
