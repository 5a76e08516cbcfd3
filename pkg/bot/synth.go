package bot

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/rahulz09/scriptvoice/pkg/logger"
	"github.com/rahulz09/scriptvoice/pkg/prefs"
	"github.com/rahulz09/scriptvoice/pkg/tts"
)

const audioTitle = "Script Audio"

// synthesize runs the free-text flow: length check, transient ack,
// provider call, audio reply, cleanup. The temp artifact is removed on
// every exit path after a successful synthesis, including a failed
// reply-send.
func (b *Bot) synthesize(ctx context.Context, msg telego.Message) {
	chatID := msg.Chat.ID
	text := msg.Text

	count := utf8.RuneCountInString(text)
	if count > maxScriptLength {
		b.sendMarkdown(ctx, chatID, tooLongText(count), nil)
		return
	}

	p := b.store.GetOrCreate(msg.From.ID)
	synth, ok := b.synths[p.Provider]
	if !ok {
		logger.ErrorCF("bot", "No synthesizer for provider", map[string]any{
			"provider": string(p.Provider),
		})
		b.sendMarkdown(ctx, chatID, synthesisFailedText("no synthesizer configured for "+string(p.Provider)), nil)
		return
	}

	requestID := uuid.NewString()
	voiceID := p.Voice()
	logger.InfoCF("bot", "Synthesis request", map[string]any{
		"request_id": requestID,
		"user_id":    msg.From.ID,
		"provider":   string(p.Provider),
		"voice":      voiceID,
		"chars":      count,
	})

	ack, ackErr := b.sendMarkdown(ctx, chatID, processingText, nil)
	if ackErr != nil {
		ack = nil
	}

	if err := b.api.SendChatAction(ctx, &telego.SendChatActionParams{
		ChatID: telego.ChatID{ID: chatID},
		Action: telego.ChatActionUploadVoice,
	}); err != nil {
		logger.DebugCF("bot", "Failed to send chat action", map[string]any{
			"error": err.Error(),
		})
	}

	artifact, err := synth.Synthesize(ctx, text, voiceID)
	if err != nil {
		logger.ErrorCF("bot", "Synthesis failed", map[string]any{
			"request_id": requestID,
			"provider":   string(p.Provider),
			"error":      err.Error(),
		})
		b.reportFailure(ctx, chatID, ack, err)
		return
	}
	defer func() {
		if rmErr := artifact.Remove(); rmErr != nil {
			logger.WarnCF("bot", "Failed to remove audio artifact", map[string]any{
				"path":  artifact.Path,
				"error": rmErr.Error(),
			})
		}
	}()

	if err := b.replyAudio(ctx, chatID, artifact, p); err != nil {
		logger.ErrorCF("bot", "Failed to send audio reply", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		b.reportFailure(ctx, chatID, ack, err)
		return
	}

	if ack != nil {
		if err := b.api.DeleteMessage(ctx, &telego.DeleteMessageParams{
			ChatID:    telego.ChatID{ID: chatID},
			MessageID: ack.MessageID,
		}); err != nil {
			logger.DebugCF("bot", "Failed to delete processing message", map[string]any{
				"error": err.Error(),
			})
		}
	}

	logger.InfoCF("bot", "Audio reply sent", map[string]any{
		"request_id": requestID,
	})
}

func (b *Bot) replyAudio(ctx context.Context, chatID int64, artifact *tts.Artifact, p prefs.Preferences) error {
	f, err := os.Open(artifact.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	voiceName := b.catalog.VoiceName(p.Provider, p.Voice())
	_, err = b.api.SendAudio(ctx, &telego.SendAudioParams{
		ChatID:    telego.ChatID{ID: chatID},
		Audio:     tu.File(f),
		Title:     audioTitle,
		Performer: voiceName,
		Caption:   audioCaption(p.Provider.DisplayName(), voiceName),
		ParseMode: telego.ModeMarkdown,
	})
	return err
}

// reportFailure edits the transient ack in place with the provider's
// literal error text, or sends a fresh message when there is no ack.
func (b *Bot) reportFailure(ctx context.Context, chatID int64, ack *telego.Message, synthErr error) {
	text := synthesisFailedText(synthErr.Error())
	if ack != nil {
		_, err := b.api.EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:    telego.ChatID{ID: chatID},
			MessageID: ack.MessageID,
			Text:      text,
			ParseMode: telego.ModeMarkdown,
		})
		if err == nil {
			return
		}
		logger.WarnCF("bot", "Failed to edit processing message", map[string]any{
			"error": err.Error(),
		})
	}
	b.sendMarkdown(ctx, chatID, text, nil)
}
