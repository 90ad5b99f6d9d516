// Package telegram is a reference Channel handler backed by the Telegram Bot
// API. Inbound messages arrive through long polling; outbound envelopes are
// sent as text messages to the chat named by ChannelID.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/channel"
)

const (
	channelID   = "telegram"
	inboxBuffer = 100
)

// Config configures the channel. Connect settings override it.
type Config struct {
	Token string
	// AllowFrom lists sender ids accepted inbound. Empty accepts everyone.
	AllowFrom []string
	// APIServer replaces the Bot API endpoint.
	APIServer string
}

// Channel implements channel.Handler.
type Channel struct {
	cfg    Config
	logger *slog.Logger
	inbox  chan channel.Envelope

	mu        sync.Mutex
	bot       *telego.Bot
	allowFrom map[string]struct{}
	stop      context.CancelFunc
	polling   sync.WaitGroup
}

// New returns a disconnected Telegram channel.
func New(cfg Config, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		cfg:    cfg,
		logger: logger.With("component", "channel.telegram"),
		inbox:  make(chan channel.Envelope, inboxBuffer),
	}
}

func (c *Channel) ID() string { return channelID }

// Connect creates the bot and starts long polling. Recognized settings are
// "token", "allow_from" (comma separated) and "api_server". Connecting again
// replaces the previous session.
func (c *Channel) Connect(_ context.Context, settings map[string]string) error {
	cfg := c.cfg
	if v := strings.TrimSpace(settings["token"]); v != "" {
		cfg.Token = v
	}
	if v, ok := settings["allow_from"]; ok {
		cfg.AllowFrom = strings.Split(v, ",")
	}
	if v := strings.TrimSpace(settings["api_server"]); v != "" {
		cfg.APIServer = v
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return apperr.InvalidInput("telegram token is required")
	}

	opts := []telego.BotOption{telego.WithDiscardLogger()}
	if cfg.APIServer != "" {
		opts = append(opts, telego.WithAPIServer(cfg.APIServer))
	}
	bot, err := telego.NewBot(strings.TrimSpace(cfg.Token), opts...)
	if err != nil {
		return apperr.Wrap(apperr.CodeInvalidInput, fmt.Sprintf("initialize telegram bot: %v", err), err)
	}

	c.disconnect()

	pollCtx, cancel := context.WithCancel(context.Background())
	updates, err := bot.UpdatesViaLongPolling(pollCtx, nil)
	if err != nil {
		cancel()
		return apperr.Wrap(apperr.CodeUnavailable, fmt.Sprintf("start long polling: %v", err), err)
	}

	c.mu.Lock()
	c.bot = bot
	c.allowFrom = allowFromSet(cfg.AllowFrom)
	c.stop = cancel
	c.mu.Unlock()

	c.polling.Add(1)
	go func() {
		defer c.polling.Done()
		c.pump(pollCtx, updates)
	}()
	c.logger.Info("telegram channel connected")
	return nil
}

// Disconnect stops long polling. It is a no-op when not connected.
func (c *Channel) Disconnect(context.Context) error {
	c.disconnect()
	return nil
}

func (c *Channel) disconnect() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.bot = nil
	c.mu.Unlock()
	if stop != nil {
		stop()
		c.polling.Wait()
		c.logger.Info("telegram channel disconnected")
	}
}

// Send posts env.Text to the chat whose id is env.ChannelID and returns the
// new message id.
func (c *Channel) Send(ctx context.Context, env channel.Envelope) (string, error) {
	c.mu.Lock()
	bot := c.bot
	c.mu.Unlock()
	if bot == nil {
		return "", apperr.Execution("telegram channel is not connected")
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(env.ChannelID), 10, 64)
	if err != nil {
		return "", apperr.Errorf(apperr.CodeInvalidInput, "invalid chat id %q", env.ChannelID)
	}
	text := strings.TrimSpace(env.Text)
	if text == "" {
		return "", apperr.InvalidInput("message text is required")
	}

	params := tu.Message(tu.ID(chatID), text)
	if env.ReplyTo != "" {
		if replyID, err := strconv.Atoi(env.ReplyTo); err == nil {
			params = params.WithReplyParameters(&telego.ReplyParameters{MessageID: replyID})
		}
	}
	sent, err := bot.SendMessage(ctx, params)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeExecution, fmt.Sprintf("send telegram message: %v", err), err)
	}
	return strconv.Itoa(sent.MessageID), nil
}

// Receive forwards inbound messages until ctx ends. Concurrent receivers
// share one inbox.
func (c *Channel) Receive(ctx context.Context) (<-chan channel.Envelope, error) {
	out := make(chan channel.Envelope)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case env := <-c.inbox:
				select {
				case out <- env:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (c *Channel) pump(ctx context.Context, updates <-chan telego.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				if ctx.Err() == nil {
					c.logger.Warn("telegram updates channel closed")
				}
				return
			}
			env, ok := envelopeFromUpdate(update)
			if !ok {
				continue
			}
			if !c.senderAllowed(env.Sender.ID) {
				c.logger.Debug("ignoring message from unauthorized sender", "sender_id", env.Sender.ID)
				continue
			}
			select {
			case c.inbox <- env:
			default:
				c.logger.Warn("telegram inbox full, dropping message", "message_id", env.MessageID)
			}
		}
	}
}

func (c *Channel) senderAllowed(senderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.allowFrom) == 0 {
		return true
	}
	_, ok := c.allowFrom[strings.TrimSpace(senderID)]
	return ok
}

// envelopeFromUpdate converts a message update. Updates without a message
// or sender are skipped.
func envelopeFromUpdate(update telego.Update) (channel.Envelope, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return channel.Envelope{}, false
	}
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	env := channel.Envelope{
		MessageID: strconv.Itoa(msg.MessageID),
		ChannelID: strconv.FormatInt(msg.Chat.ID, 10),
		Sender: channel.Sender{
			ID:   strconv.FormatInt(msg.From.ID, 10),
			Name: displayName(msg.From),
			Role: "user",
			Bot:  msg.From.IsBot,
		},
		Text:      text,
		Timestamp: time.Unix(msg.Date, 0).UTC(),
		Metadata: map[string]string{
			"update_id": strconv.Itoa(update.UpdateID),
			"chat_type": msg.Chat.Type,
		},
	}
	if msg.ReplyToMessage != nil {
		env.ReplyTo = strconv.Itoa(msg.ReplyToMessage.MessageID)
	}
	if n := len(msg.Photo); n > 0 {
		largest := msg.Photo[n-1]
		env.Attachments = append(env.Attachments, channel.Attachment{
			Type: "image",
			URL:  "tg://file/" + largest.FileID,
			Size: int64(largest.FileSize),
		})
	}
	if doc := msg.Document; doc != nil {
		env.Attachments = append(env.Attachments, channel.Attachment{
			Type:     "file",
			URL:      "tg://file/" + doc.FileID,
			Filename: doc.FileName,
			MimeType: doc.MimeType,
			Size:     int64(doc.FileSize),
		})
	}
	if raw, err := json.Marshal(msg); err == nil {
		env.PlatformData = raw
	}
	return env, env.Text != "" || len(env.Attachments) > 0
}

func displayName(u *telego.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		name = u.Username
	}
	return name
}

func allowFromSet(allowFrom []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(allowFrom))
	for _, value := range allowFrom {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	return allowed
}

var _ channel.Handler = (*Channel)(nil)
