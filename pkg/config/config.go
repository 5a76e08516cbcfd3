package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
)

// FlexibleStringSlice is a []string that also accepts JSON numbers,
// so allow_from can contain both "123" and 123.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*f = ss
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make([]string, 0, len(raw))
	for _, v := range raw {
		switch val := v.(type) {
		case string:
			result = append(result, val)
		case float64:
			result = append(result, fmt.Sprintf("%.0f", val))
		default:
			result = append(result, fmt.Sprintf("%v", val))
		}
	}
	*f = result
	return nil
}

type TelegramConfig struct {
	Token     string              `json:"token" env:"SCRIPTVOICE_TELEGRAM_TOKEN"`
	Proxy     string              `json:"proxy" env:"SCRIPTVOICE_TELEGRAM_PROXY"`
	AllowFrom FlexibleStringSlice `json:"allow_from" env:"SCRIPTVOICE_TELEGRAM_ALLOW_FROM"`
}

type GoogleConfig struct {
	// CredentialsFile is optional; when empty the client falls back to
	// application default credentials.
	CredentialsFile string `json:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

type ElevenLabsConfig struct {
	APIKey  string `json:"api_key" env:"SCRIPTVOICE_ELEVENLABS_API_KEY"`
	BaseURL string `json:"base_url" env:"SCRIPTVOICE_ELEVENLABS_BASE_URL"`
	ModelID string `json:"model_id" env:"SCRIPTVOICE_ELEVENLABS_MODEL_ID"`
}

type AudioConfig struct {
	Format     string `json:"format" env:"SCRIPTVOICE_AUDIO_FORMAT"`
	SampleRate int    `json:"sample_rate" env:"SCRIPTVOICE_AUDIO_SAMPLE_RATE"`
}

type DefaultsConfig struct {
	Provider        string `json:"provider" env:"SCRIPTVOICE_DEFAULT_PROVIDER"`
	GoogleVoice     string `json:"google_voice" env:"SCRIPTVOICE_DEFAULT_GOOGLE_VOICE"`
	ElevenLabsVoice string `json:"elevenlabs_voice" env:"SCRIPTVOICE_DEFAULT_ELEVENLABS_VOICE"`
}

// VoicesConfig optionally replaces the built-in voice catalog per provider.
type VoicesConfig struct {
	Google     []catalog.Voice `json:"google,omitempty"`
	ElevenLabs []catalog.Voice `json:"elevenlabs,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" env:"SCRIPTVOICE_LOG_LEVEL"`
	File  string `json:"file" env:"SCRIPTVOICE_LOG_FILE"`
}

type Config struct {
	Telegram   TelegramConfig   `json:"telegram"`
	Google     GoogleConfig     `json:"google"`
	ElevenLabs ElevenLabsConfig `json:"elevenlabs"`
	Audio      AudioConfig      `json:"audio"`
	Defaults   DefaultsConfig   `json:"defaults"`
	Voices     VoicesConfig     `json:"voices"`
	Log        LogConfig        `json:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			AllowFrom: FlexibleStringSlice{},
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: "https://api.elevenlabs.io",
			ModelID: "eleven_multilingual_v2",
		},
		Audio: AudioConfig{
			Format:     "mp3",
			SampleRate: 24000,
		},
		Defaults: DefaultsConfig{
			Provider:        string(catalog.ProviderGoogle),
			GoogleVoice:     "hi-IN-Wavenet-A",
			ElevenLabsVoice: "21m00Tcm4TlvDq8ikWAM",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the JSON config at path (missing file means defaults)
// and applies environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports startup-fatal configuration problems.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is not set (SCRIPTVOICE_TELEGRAM_TOKEN)")
	}
	if c.ElevenLabs.APIKey == "" {
		return fmt.Errorf("elevenlabs api key is not set (SCRIPTVOICE_ELEVENLABS_API_KEY)")
	}
	if !catalog.Provider(c.Defaults.Provider).Known() {
		return fmt.Errorf("unknown default provider %q", c.Defaults.Provider)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// BuildCatalog returns the voice catalog with any config overrides applied.
func (c *Config) BuildCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.Override(catalog.ProviderGoogle, c.Voices.Google)
	cat.Override(catalog.ProviderElevenLabs, c.Voices.ElevenLabs)
	return cat
}
