package prefs

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rahulz09/scriptvoice/pkg/catalog"
)

func newTestStore() *Store {
	return NewStore(catalog.ProviderGoogle, map[catalog.Provider]string{
		catalog.ProviderGoogle:     "hi-IN-Wavenet-A",
		catalog.ProviderElevenLabs: "21m00Tcm4TlvDq8ikWAM",
	})
}

func TestGetOrCreateSeedsDefaults(t *testing.T) {
	s := newTestStore()

	p := s.GetOrCreate(42)
	if p.Provider != catalog.ProviderGoogle {
		t.Errorf("default provider = %s", p.Provider)
	}
	if p.Voice() != "hi-IN-Wavenet-A" {
		t.Errorf("default voice = %s", p.Voice())
	}
	if p.Voices[catalog.ProviderElevenLabs] != "21m00Tcm4TlvDq8ikWAM" {
		t.Errorf("default elevenlabs voice = %s", p.Voices[catalog.ProviderElevenLabs])
	}
	if s.Len() != 1 {
		t.Errorf("store size = %d", s.Len())
	}
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	s := newTestStore()

	s.GetOrCreate(1)
	s.SetProvider(1, catalog.ProviderElevenLabs)

	p := s.GetOrCreate(1)
	if p.Provider != catalog.ProviderElevenLabs {
		t.Errorf("second GetOrCreate reset provider to %s", p.Provider)
	}
	if s.Len() != 1 {
		t.Errorf("store size = %d", s.Len())
	}
}

func TestSetForUnseenUserSeedsFirst(t *testing.T) {
	s := newTestStore()

	// A selection callback can be the first event seen for a user.
	s.SetVoice(7, catalog.ProviderGoogle, "en-US-Wavenet-B")

	p := s.GetOrCreate(7)
	if p.Provider != catalog.ProviderGoogle {
		t.Errorf("provider = %s", p.Provider)
	}
	if p.Voice() != "en-US-Wavenet-B" {
		t.Errorf("voice = %s", p.Voice())
	}
}

func TestLastWriteWins(t *testing.T) {
	s := newTestStore()

	s.SetProvider(5, catalog.ProviderElevenLabs)
	s.SetVoice(5, catalog.ProviderElevenLabs, "pNInz6obpgDQGcFmaJgB")
	s.SetProvider(5, catalog.ProviderGoogle)
	s.SetVoice(5, catalog.ProviderGoogle, "hi-IN-Wavenet-B")
	s.SetVoice(5, catalog.ProviderGoogle, "en-IN-Wavenet-A")

	p := s.GetOrCreate(5)
	if p.Provider != catalog.ProviderGoogle {
		t.Errorf("provider = %s", p.Provider)
	}
	if p.Voice() != "en-IN-Wavenet-A" {
		t.Errorf("voice = %s", p.Voice())
	}
	// The other provider's selection is kept independently.
	if p.Voices[catalog.ProviderElevenLabs] != "pNInz6obpgDQGcFmaJgB" {
		t.Errorf("elevenlabs voice = %s", p.Voices[catalog.ProviderElevenLabs])
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore()

	p := s.GetOrCreate(9)
	p.Voices[catalog.ProviderGoogle] = "mutated"

	if got := s.GetOrCreate(9).Voice(); got != "hi-IN-Wavenet-A" {
		t.Errorf("store record mutated through snapshot: %s", got)
	}
}

func TestConcurrentUsersDoNotInterfere(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		userID := int64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			voice := fmt.Sprintf("voice-%d", userID)
			for j := 0; j < 20; j++ {
				s.SetProvider(userID, catalog.ProviderElevenLabs)
				s.SetVoice(userID, catalog.ProviderElevenLabs, voice)
				s.GetOrCreate(userID)
			}
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("store size = %d", s.Len())
	}
	for i := 0; i < 50; i++ {
		p := s.GetOrCreate(int64(i))
		if p.Provider != catalog.ProviderElevenLabs {
			t.Fatalf("user %d provider = %s", i, p.Provider)
		}
		if want := fmt.Sprintf("voice-%d", i); p.Voice() != want {
			t.Fatalf("user %d voice = %s, want %s", i, p.Voice(), want)
		}
	}
}
