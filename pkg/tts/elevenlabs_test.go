package tts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
	"github.com/rahulz09/scriptvoice/pkg/config"
)

func newElevenLabsForTest(baseURL string) *ElevenLabsSynthesizer {
	cfg := config.DefaultConfig()
	cfg.ElevenLabs.APIKey = "xi-secret"
	cfg.ElevenLabs.BaseURL = baseURL
	return NewElevenLabsSynthesizer(cfg)
}

func TestElevenLabsSynthesizeWritesChunkedStream(t *testing.T) {
	chunks := [][]byte{[]byte("chunk-one-"), []byte("chunk-two-"), []byte("chunk-three")}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/21m00Tcm4TlvDq8ikWAM/stream", r.URL.Path)
		assert.Equal(t, "xi-secret", r.Header.Get("xi-api-key"))

		var req elevenLabsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello world", req.Text)
		assert.Equal(t, "eleven_multilingual_v2", req.ModelID)

		flusher := w.(http.Flusher)
		for _, chunk := range chunks {
			w.Write(chunk)
			flusher.Flush()
		}
	}))
	defer server.Close()

	s := newElevenLabsForTest(server.URL)

	artifact, err := s.Synthesize(context.Background(), "hello world", "21m00Tcm4TlvDq8ikWAM")
	require.NoError(t, err)
	defer artifact.Remove()

	assert.Equal(t, "mp3", artifact.Format)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, "chunk-one-chunk-two-chunk-three", string(data))
}

func TestElevenLabsSynthesizeVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer server.Close()

	s := newElevenLabsForTest(server.URL)

	artifact, err := s.Synthesize(context.Background(), "hello", "voice-1")
	require.Error(t, err)
	assert.Nil(t, artifact)

	var synthErr *SynthesisError
	require.True(t, errors.As(err, &synthErr))
	assert.Equal(t, catalog.ProviderElevenLabs, synthErr.Provider)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestElevenLabsSynthesizeNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	s := newElevenLabsForTest(server.URL)

	_, err := s.Synthesize(context.Background(), "hello", "voice-1")
	require.Error(t, err)

	var synthErr *SynthesisError
	assert.True(t, errors.As(err, &synthErr))
}

func TestElevenLabsArtifactsAreUnique(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	s := newElevenLabsForTest(server.URL)

	first, err := s.Synthesize(context.Background(), "one", "voice-1")
	require.NoError(t, err)
	defer first.Remove()

	second, err := s.Synthesize(context.Background(), "two", "voice-1")
	require.NoError(t, err)
	defer second.Remove()

	assert.NotEqual(t, first.Path, second.Path)
}
