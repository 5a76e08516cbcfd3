package tts

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/config"
	"github.com/rahulz09/scriptvoice/pkg/logger"
)

// GoogleSynthesizer calls Google Cloud Text-to-Speech. The whole
// synthesized payload arrives in a single response.
type GoogleSynthesizer struct {
	client     *texttospeech.Client
	format     string
	sampleRate int32
}

// NewGoogleSynthesizer creates the Google TTS client. With no credentials
// file configured the client uses application default credentials.
func NewGoogleSynthesizer(ctx context.Context, cfg *config.Config) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if cfg.Google.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Google.CredentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google tts client: %w", err)
	}

	return &GoogleSynthesizer{
		client:     client,
		format:     cfg.Audio.Format,
		sampleRate: int32(cfg.Audio.SampleRate),
	}, nil
}

func (s *GoogleSynthesizer) Provider() catalog.Provider {
	return catalog.ProviderGoogle
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, voiceID string) (*Artifact, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: LanguageCode(voiceID),
			Name:         voiceID,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   audioEncoding(s.format),
			SampleRateHertz: s.sampleRate,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, &SynthesisError{Provider: catalog.ProviderGoogle, Err: err}
	}
	if len(resp.AudioContent) == 0 {
		return nil, &SynthesisError{
			Provider: catalog.ProviderGoogle,
			Err:      fmt.Errorf("empty audio content received"),
		}
	}

	tmpFile, err := createArtifact(s.format)
	if err != nil {
		return nil, err
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write(resp.AudioContent); err != nil {
		_ = (&Artifact{Path: tmpFile.Name()}).Remove()
		return nil, fmt.Errorf("failed to write audio artifact: %w", err)
	}

	logger.DebugCF("tts", "Google synthesis complete", map[string]any{
		"voice":      voiceID,
		"size_bytes": len(resp.AudioContent),
	})

	return &Artifact{Path: tmpFile.Name(), Format: s.format}, nil
}

func (s *GoogleSynthesizer) Close() error {
	return s.client.Close()
}

// LanguageCode derives the locale from a Google voice name: the first two
// hyphen-delimited segments ("hi-IN-Wavenet-A" -> "hi-IN").
func LanguageCode(voiceID string) string {
	parts := strings.Split(voiceID, "-")
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return "hi-IN"
}

func audioEncoding(format string) texttospeechpb.AudioEncoding {
	switch strings.ToLower(format) {
	case "ogg", "ogg_opus":
		return texttospeechpb.AudioEncoding_OGG_OPUS
	case "wav", "linear16":
		return texttospeechpb.AudioEncoding_LINEAR16
	default:
		return texttospeechpb.AudioEncoding_MP3
	}
}
