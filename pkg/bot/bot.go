// Package bot routes inbound Telegram events (commands, menu taps,
// selection callbacks, free-text scripts) to the preference store and the
// synthesis providers, and replies with the resulting audio.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mymmrac/telego"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/config"
	"github.com/rahulz09/scriptvoice/pkg/logger"
	"github.com/rahulz09/scriptvoice/pkg/prefs"
	"github.com/rahulz09/scriptvoice/pkg/tts"
)

// maxScriptLength is Telegram's message limit and the upper bound for one
// synthesis request.
const maxScriptLength = 4096

// api is the slice of the Telegram bot API the dispatcher uses. It exists
// so handlers can be exercised against a recording fake.
type api interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	EditMessageText(ctx context.Context, params *telego.EditMessageTextParams) (*telego.Message, error)
	DeleteMessage(ctx context.Context, params *telego.DeleteMessageParams) error
	SendAudio(ctx context.Context, params *telego.SendAudioParams) (*telego.Message, error)
	SendChatAction(ctx context.Context, params *telego.SendChatActionParams) error
	AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error
}

type Bot struct {
	bot       *telego.Bot
	api       api
	cfg       *config.Config
	catalog   *catalog.Catalog
	store     *prefs.Store
	synths    map[catalog.Provider]tts.Synthesizer
	allowFrom []string
}

func New(cfg *config.Config, cat *catalog.Catalog, store *prefs.Store, synths map[catalog.Provider]tts.Synthesizer) (*Bot, error) {
	var opts []telego.BotOption

	if cfg.Telegram.Proxy != "" {
		proxyURL, parseErr := url.Parse(cfg.Telegram.Proxy)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.Telegram.Proxy, parseErr)
		}
		opts = append(opts, telego.WithHTTPClient(&http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyURL(proxyURL),
			},
		}))
	}

	tgBot, err := telego.NewBot(cfg.Telegram.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Bot{
		bot:       tgBot,
		api:       tgBot,
		cfg:       cfg,
		catalog:   cat,
		store:     store,
		synths:    synths,
		allowFrom: cfg.Telegram.AllowFrom,
	}, nil
}

// Start begins long polling and dispatches updates until ctx is done.
// Each update is handled on its own goroutine; per-user state is guarded
// by the preference store.
func (b *Bot) Start(ctx context.Context) error {
	logger.InfoC("bot", "Starting Telegram bot (polling mode)...")

	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 30,
	})
	if err != nil {
		return fmt.Errorf("failed to start long polling: %w", err)
	}

	logger.InfoCF("bot", "Telegram bot connected", map[string]any{
		"username": b.bot.Username(),
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				logger.InfoC("bot", "Updates channel closed")
				return nil
			}
			switch {
			case update.Message != nil:
				go b.handleMessage(ctx, *update.Message)
			case update.CallbackQuery != nil:
				go b.handleCallback(ctx, *update.CallbackQuery)
			}
		}
	}
}

// isAllowed checks the optional allowlist; an empty list means open.
func (b *Bot) isAllowed(user *telego.User) bool {
	if len(b.allowFrom) == 0 {
		return true
	}
	id := strconv.FormatInt(user.ID, 10)
	for _, allowed := range b.allowFrom {
		if allowed == id || (user.Username != "" && allowed == user.Username) {
			return true
		}
	}
	return false
}
