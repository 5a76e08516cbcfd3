package bot

import (
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/prefs"
)

// Callback payload prefixes. The part after the underscore is the
// provider or voice identifier.
const (
	callbackModelPrefix     = "model_"
	callbackGoogleVoice     = "gvoice_"
	callbackElevenLabsVoice = "evoice_"
)

func mainKeyboard() *telego.ReplyKeyboardMarkup {
	return &telego.ReplyKeyboardMarkup{
		Keyboard: [][]telego.KeyboardButton{
			{{Text: labelVoiceSelect}, {Text: labelSettings}},
			{{Text: labelModelSelect}, {Text: labelHelp}},
		},
		ResizeKeyboard: true,
	}
}

// modelKeyboard lists both providers, the current selection pre-marked.
func modelKeyboard(current catalog.Provider) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(catalog.Providers()))
	for _, p := range catalog.Providers() {
		label := p.DisplayName()
		if p == current {
			label = "✅ " + label
		}
		rows = append(rows, tu.InlineKeyboardRow(telego.InlineKeyboardButton{
			Text:         label,
			CallbackData: callbackModelPrefix + string(p),
		}))
	}
	return tu.InlineKeyboard(rows...)
}

// voiceKeyboard lists the voices of the user's current provider, the
// current selection pre-marked. Selections are only ever made from this
// menu, so voice IDs reaching the store always exist in the catalog.
func voiceKeyboard(cat *catalog.Catalog, p prefs.Preferences) *telego.InlineKeyboardMarkup {
	prefix := callbackGoogleVoice
	if p.Provider == catalog.ProviderElevenLabs {
		prefix = callbackElevenLabsVoice
	}

	voices := cat.Voices(p.Provider)
	rows := make([][]telego.InlineKeyboardButton, 0, len(voices))
	for _, v := range voices {
		label := v.Name
		if v.ID == p.Voice() {
			label = "✅ " + label
		}
		rows = append(rows, tu.InlineKeyboardRow(telego.InlineKeyboardButton{
			Text:         label,
			CallbackData: prefix + v.ID,
		}))
	}
	return tu.InlineKeyboard(rows...)
}
