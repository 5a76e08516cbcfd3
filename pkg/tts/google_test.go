package tts

import (
	"testing"

	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		voiceID string
		want    string
	}{
		{"hi-IN-Wavenet-A", "hi-IN"},
		{"hi-IN-Standard-D", "hi-IN"},
		{"en-US-Wavenet-B", "en-US"},
		{"en-IN-Standard-A", "en-IN"},
		{"en-GB", "en-GB"},
		{"nonsense", "hi-IN"},
		{"", "hi-IN"},
	}

	for _, tt := range tests {
		if got := LanguageCode(tt.voiceID); got != tt.want {
			t.Errorf("LanguageCode(%q) = %q, want %q", tt.voiceID, got, tt.want)
		}
	}
}

func TestAudioEncoding(t *testing.T) {
	tests := []struct {
		format string
		want   texttospeechpb.AudioEncoding
	}{
		{"mp3", texttospeechpb.AudioEncoding_MP3},
		{"MP3", texttospeechpb.AudioEncoding_MP3},
		{"ogg", texttospeechpb.AudioEncoding_OGG_OPUS},
		{"wav", texttospeechpb.AudioEncoding_LINEAR16},
		{"linear16", texttospeechpb.AudioEncoding_LINEAR16},
		{"", texttospeechpb.AudioEncoding_MP3},
	}

	for _, tt := range tests {
		if got := audioEncoding(tt.format); got != tt.want {
			t.Errorf("audioEncoding(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}
