// Package tts converts text to audio through interchangeable cloud
// providers. Each synthesis produces a temp-file artifact; the caller is
// responsible for removing it.
package tts

import (
	"context"
	"fmt"
	"os"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
)

// Artifact is a synthesized audio file on disk.
type Artifact struct {
	Path   string
	Format string
}

// Remove deletes the underlying file. Safe to call more than once.
func (a *Artifact) Remove() error {
	if a == nil || a.Path == "" {
		return nil
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Synthesizer converts text to speech with a given voice and returns the
// resulting audio artifact. The caller must remove the artifact when done.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (*Artifact, error)
	Provider() catalog.Provider
}

// SynthesisError wraps a vendor or network failure with the provider it
// came from. The underlying message is surfaced to the user verbatim.
type SynthesisError struct {
	Provider catalog.Provider
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// createArtifact opens a uniquely named temp file for one synthesis call.
func createArtifact(format string) (*os.File, error) {
	f, err := os.CreateTemp("", "scriptvoice-*."+format)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	return f, nil
}
