package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/config"
	"github.com/rahulz09/scriptvoice/pkg/logger"
)

// ElevenLabsSynthesizer calls the ElevenLabs streaming endpoint. Audio
// arrives as a sequence of chunks which are written to the artifact in
// arrival order.
type ElevenLabsSynthesizer struct {
	apiKey     string
	baseURL    string
	modelID    string
	format     string
	httpClient *http.Client
}

type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

func NewElevenLabsSynthesizer(cfg *config.Config) *ElevenLabsSynthesizer {
	baseURL := cfg.ElevenLabs.BaseURL
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}
	modelID := cfg.ElevenLabs.ModelID
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}

	return &ElevenLabsSynthesizer{
		apiKey:  cfg.ElevenLabs.APIKey,
		baseURL: baseURL,
		modelID: modelID,
		format:  cfg.Audio.Format,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (s *ElevenLabsSynthesizer) Provider() catalog.Provider {
	return catalog.ProviderElevenLabs
}

// Synthesize posts the text to the voice's stream endpoint and copies the
// response body to a temp file as chunks arrive. The voice ID is passed
// through to the vendor untouched.
func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text, voiceID string) (*Artifact, error) {
	bodyBytes, err := json.Marshal(elevenLabsRequest{Text: text, ModelID: s.modelID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tts request: %w", err)
	}

	url := s.baseURL + "/v1/text-to-speech/" + voiceID + "/stream"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &SynthesisError{Provider: catalog.ProviderElevenLabs, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &SynthesisError{
			Provider: catalog.ProviderElevenLabs,
			Err:      fmt.Errorf("elevenlabs error (status %d): %s", resp.StatusCode, string(body)),
		}
	}

	tmpFile, err := createArtifact(s.format)
	if err != nil {
		return nil, err
	}
	defer tmpFile.Close()

	written, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		_ = (&Artifact{Path: tmpFile.Name()}).Remove()
		return nil, &SynthesisError{
			Provider: catalog.ProviderElevenLabs,
			Err:      fmt.Errorf("failed reading audio stream: %w", err),
		}
	}

	logger.DebugCF("tts", "ElevenLabs synthesis complete", map[string]any{
		"voice":      voiceID,
		"size_bytes": written,
	})

	return &Artifact{Path: tmpFile.Name(), Format: s.format}, nil
}
