package bot

import "fmt"

// Reply-keyboard labels. Free text matching one of these routes to the
// corresponding menu instead of synthesis.
const (
	labelVoiceSelect = "🎤 Voice Select"
	labelSettings    = "⚙️ Settings"
	labelModelSelect = "🔊 Model Select"
	labelHelp        = "ℹ️ Help"
)

const helpText = "📖 *Help Guide*\n\n" +
	"*Available Commands:*\n" +
	"/start - Start the bot\n" +
	"/help - Show this help message\n" +
	"/settings - Show current settings\n" +
	"/voice - Select a voice\n" +
	"/model - Select a TTS model\n\n" +
	"*Models Available:*\n" +
	"• Google TTS - Fast & reliable\n" +
	"• ElevenLabs - High quality voices\n\n" +
	"*How to use:*\n" +
	"1. Select a model\n" +
	"2. Select a voice\n" +
	"3. Paste your script\n" +
	"4. Receive your audio!\n\n" +
	"_Scripts can be up to 4096 characters._"

const processingText = "🔄 *Processing...*\n\n" +
	"_Generating audio, please wait..._"

func welcomeText(firstName string) string {
	return fmt.Sprintf("🎙️ *Welcome %s!*\n\n", firstName) +
		"I turn your scripts into audio!\n\n" +
		"📝 *How to use:*\n" +
		"1. Paste your script\n" +
		"2. I reply with the audio file\n\n" +
		"🎛️ *Menu Options:*\n" +
		"• 🎤 Voice Select - Change the voice\n" +
		"• ⚙️ Settings - View current settings\n" +
		"• 🔊 Model Select - Choose the TTS model\n" +
		"• ℹ️ Help - Show help\n\n" +
		"_Just paste a script and get audio back!_"
}

func settingsText(modelName, voiceName string) string {
	return "⚙️ *Current Settings*\n\n" +
		fmt.Sprintf("🔊 *Model:* %s\n", modelName) +
		fmt.Sprintf("🎤 *Voice:* %s\n\n", voiceName) +
		"_Use the menu buttons to change settings_"
}

func tooLongText(count int) string {
	return "❌ Script is too long!\n" +
		fmt.Sprintf("Maximum %d characters allowed.\n\n", maxScriptLength) +
		fmt.Sprintf("_Your script: %d characters_", count)
}

func modelSelectedText(modelName string) string {
	return fmt.Sprintf("✅ *Model Selected:* %s\n\n", modelName) +
		"_Now pick a voice via 🎤 Voice Select_"
}

func voiceSelectedText(voiceName string) string {
	return fmt.Sprintf("✅ *Voice Selected:* %s\n\n", voiceName) +
		"_Now paste your script!_"
}

func audioCaption(modelName, voiceName string) string {
	return "🎙️ *Audio Generated!*\n\n" +
		fmt.Sprintf("🔊 Model: %s\n", modelName) +
		fmt.Sprintf("🎤 Voice: %s", voiceName)
}

func synthesisFailedText(errText string) string {
	return "❌ *Error occurred!*\n\n" +
		fmt.Sprintf("Failed to generate audio:\n`%s`\n\n", errText) +
		"_Please try again or resend your script._"
}
