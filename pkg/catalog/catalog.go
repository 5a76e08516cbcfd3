// Package catalog holds the static provider and voice tables the bot
// builds its selection menus from.
package catalog

type Provider string

const (
	ProviderGoogle     Provider = "google"
	ProviderElevenLabs Provider = "elevenlabs"
)

// Unknown is the display name returned for identifiers not in the catalog.
const Unknown = "Unknown"

var providerNames = map[Provider]string{
	ProviderGoogle:     "Google TTS",
	ProviderElevenLabs: "ElevenLabs",
}

// Providers returns all known providers in menu order.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderElevenLabs}
}

func (p Provider) Known() bool {
	_, ok := providerNames[p]
	return ok
}

func (p Provider) DisplayName() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return Unknown
}

// Voice is one selectable catalog entry.
type Voice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog maps providers to their ordered voice lists. Entries are
// immutable after startup; slices are kept (not maps) so menus render in
// a stable order.
type Catalog struct {
	voices map[Provider][]Voice
}

// New returns a catalog with the built-in voice tables.
func New() *Catalog {
	return &Catalog{
		voices: map[Provider][]Voice{
			ProviderGoogle:     defaultGoogleVoices(),
			ProviderElevenLabs: defaultElevenLabsVoices(),
		},
	}
}

// Override replaces the voice list for a provider. Empty lists are
// ignored so a partial config override keeps the built-ins.
func (c *Catalog) Override(p Provider, voices []Voice) {
	if !p.Known() || len(voices) == 0 {
		return
	}
	c.voices[p] = voices
}

// Voices returns the ordered voice list for a provider.
func (c *Catalog) Voices(p Provider) []Voice {
	return c.voices[p]
}

// VoiceName returns the display name for a voice ID, or Unknown.
func (c *Catalog) VoiceName(p Provider, id string) string {
	for _, v := range c.voices[p] {
		if v.ID == id {
			return v.Name
		}
	}
	return Unknown
}

// HasVoice reports whether a voice ID exists in the provider's list.
func (c *Catalog) HasVoice(p Provider, id string) bool {
	for _, v := range c.voices[p] {
		if v.ID == id {
			return true
		}
	}
	return false
}

func defaultGoogleVoices() []Voice {
	return []Voice{
		{ID: "hi-IN-Standard-A", Name: "Hindi Female (Standard A)"},
		{ID: "hi-IN-Standard-B", Name: "Hindi Male (Standard B)"},
		{ID: "hi-IN-Standard-C", Name: "Hindi Female (Standard C)"},
		{ID: "hi-IN-Standard-D", Name: "Hindi Male (Standard D)"},
		{ID: "hi-IN-Wavenet-A", Name: "Hindi Female (Wavenet A)"},
		{ID: "hi-IN-Wavenet-B", Name: "Hindi Male (Wavenet B)"},
		{ID: "hi-IN-Wavenet-C", Name: "Hindi Female (Wavenet C)"},
		{ID: "hi-IN-Wavenet-D", Name: "Hindi Male (Wavenet D)"},
		{ID: "en-US-Standard-A", Name: "English US Female (Standard A)"},
		{ID: "en-US-Standard-B", Name: "English US Male (Standard B)"},
		{ID: "en-US-Wavenet-A", Name: "English US Female (Wavenet A)"},
		{ID: "en-US-Wavenet-B", Name: "English US Male (Wavenet B)"},
		{ID: "en-IN-Standard-A", Name: "English India Female (Standard A)"},
		{ID: "en-IN-Standard-B", Name: "English India Male (Standard B)"},
		{ID: "en-IN-Wavenet-A", Name: "English India Female (Wavenet A)"},
		{ID: "en-IN-Wavenet-B", Name: "English India Male (Wavenet B)"},
	}
}

func defaultElevenLabsVoices() []Voice {
	return []Voice{
		{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel (Female)"},
		{ID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi (Female)"},
		{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella (Female)"},
		{ID: "ErXwobaYiN019PkySvjV", Name: "Antoni (Male)"},
		{ID: "MF3mGyEYCl7XYWbV9V6O", Name: "Elli (Female)"},
		{ID: "TxGEqnHWrfWFTfGW9XjX", Name: "Josh (Male)"},
		{ID: "VR6AewLTigWG4xSOukaG", Name: "Arnold (Male)"},
		{ID: "pNInz6obpgDQGcFmaJgB", Name: "Adam (Male)"},
		{ID: "yoZ06aMxZJJ28mfd3POQ", Name: "Sam (Male)"},
	}
}
