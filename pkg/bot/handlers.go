package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/logger"
)

func (b *Bot) handleMessage(ctx context.Context, msg telego.Message) {
	user := msg.From
	if user == nil || msg.Text == "" {
		return
	}
	if !b.isAllowed(user) {
		logger.DebugCF("bot", "Message rejected by allowlist", map[string]any{
			"user_id":  user.ID,
			"username": user.Username,
		})
		return
	}

	text := msg.Text
	switch {
	case commandName(text) == "/start":
		b.handleStart(ctx, msg)
	case commandName(text) == "/help" || text == labelHelp:
		b.sendMarkdown(ctx, msg.Chat.ID, helpText, nil)
	case commandName(text) == "/settings" || text == labelSettings:
		b.showSettings(ctx, msg)
	case commandName(text) == "/voice" || text == labelVoiceSelect:
		b.showVoiceMenu(ctx, msg)
	case commandName(text) == "/model" || text == labelModelSelect:
		b.showModelMenu(ctx, msg)
	case commandName(text) != "":
		logger.DebugCF("bot", "Ignoring unknown command", map[string]any{
			"command": commandName(text),
		})
	default:
		b.synthesize(ctx, msg)
	}
}

// commandName extracts "/cmd" from "/cmd@BotName args", or "" for
// non-command text.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	name := strings.Fields(text)[0]
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}
	return name
}

func (b *Bot) handleStart(ctx context.Context, msg telego.Message) {
	b.store.GetOrCreate(msg.From.ID)
	b.sendMarkdown(ctx, msg.Chat.ID, welcomeText(msg.From.FirstName), mainKeyboard())
}

func (b *Bot) showSettings(ctx context.Context, msg telego.Message) {
	p := b.store.GetOrCreate(msg.From.ID)
	voiceName := b.catalog.VoiceName(p.Provider, p.Voice())
	b.sendMarkdown(ctx, msg.Chat.ID, settingsText(p.Provider.DisplayName(), voiceName), nil)
}

func (b *Bot) showModelMenu(ctx context.Context, msg telego.Message) {
	p := b.store.GetOrCreate(msg.From.ID)
	text := "🔊 *Select TTS Model:*\n\nChoose your preferred Text-to-Speech model:"
	b.sendMarkdown(ctx, msg.Chat.ID, text, modelKeyboard(p.Provider))
}

func (b *Bot) showVoiceMenu(ctx context.Context, msg telego.Message) {
	p := b.store.GetOrCreate(msg.From.ID)
	text := fmt.Sprintf("🎤 *Select Voice for %s:*\n\nChoose your preferred voice:", p.Provider.DisplayName())
	b.sendMarkdown(ctx, msg.Chat.ID, text, voiceKeyboard(b.catalog, p))
}

func (b *Bot) handleCallback(ctx context.Context, query telego.CallbackQuery) {
	if !b.isAllowed(&query.From) {
		b.answerCallback(ctx, query.ID, "")
		return
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, callbackModelPrefix):
		p := catalog.Provider(strings.TrimPrefix(data, callbackModelPrefix))
		if !p.Known() {
			b.ignoreCallback(ctx, query)
			return
		}
		b.store.SetProvider(query.From.ID, p)
		b.confirmSelection(ctx, query, modelSelectedText(p.DisplayName()))

	case strings.HasPrefix(data, callbackGoogleVoice):
		b.selectVoice(ctx, query, catalog.ProviderGoogle, strings.TrimPrefix(data, callbackGoogleVoice))

	case strings.HasPrefix(data, callbackElevenLabsVoice):
		b.selectVoice(ctx, query, catalog.ProviderElevenLabs, strings.TrimPrefix(data, callbackElevenLabsVoice))

	default:
		b.ignoreCallback(ctx, query)
	}
}

func (b *Bot) selectVoice(ctx context.Context, query telego.CallbackQuery, p catalog.Provider, voiceID string) {
	// Voice selections only ever originate from catalog-driven menus;
	// anything else is a stale or forged payload.
	if !b.catalog.HasVoice(p, voiceID) {
		b.ignoreCallback(ctx, query)
		return
	}
	b.store.SetVoice(query.From.ID, p, voiceID)
	b.confirmSelection(ctx, query, voiceSelectedText(b.catalog.VoiceName(p, voiceID)))
}

// ignoreCallback is the deliberate no-op branch for unrecognized
// payloads: answered to clear the client spinner, state untouched.
func (b *Bot) ignoreCallback(ctx context.Context, query telego.CallbackQuery) {
	logger.DebugCF("bot", "Ignoring unrecognized callback", map[string]any{
		"user_id": query.From.ID,
		"data":    query.Data,
	})
	b.answerCallback(ctx, query.ID, "")
}

func (b *Bot) answerCallback(ctx context.Context, queryID, text string) {
	err := b.api.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
		Text:            text,
	})
	if err != nil {
		logger.WarnCF("bot", "Failed to answer callback query", map[string]any{
			"error": err.Error(),
		})
	}
}

// confirmSelection answers the callback and edits the message the tapped
// button is attached to, so the right menu is replaced even when several
// are open. With no message reference the confirmation rides on the
// callback answer as a toast; with a stale one the edit fails and a fresh
// message is sent instead.
func (b *Bot) confirmSelection(ctx context.Context, query telego.CallbackQuery, text string) {
	msg := query.Message
	if msg == nil {
		b.answerCallback(ctx, query.ID, text)
		return
	}
	b.answerCallback(ctx, query.ID, "")

	chatID := msg.GetChat().ID
	_, err := b.api.EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:    telego.ChatID{ID: chatID},
		MessageID: msg.GetMessageID(),
		Text:      text,
		ParseMode: telego.ModeMarkdown,
	})
	if err == nil {
		return
	}
	logger.WarnCF("bot", "Failed to edit selection menu", map[string]any{
		"error": err.Error(),
	})
	b.sendMarkdown(ctx, chatID, text, nil)
}

func (b *Bot) sendMarkdown(ctx context.Context, chatID int64, text string, markup telego.ReplyMarkup) (*telego.Message, error) {
	params := &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeMarkdown,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	sent, err := b.api.SendMessage(ctx, params)
	if err != nil {
		logger.ErrorCF("bot", "Failed to send message", map[string]any{
			"chat_id": chatID,
			"error":   err.Error(),
		})
	}
	return sent, err
}
