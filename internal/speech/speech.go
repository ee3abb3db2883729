// Package speech reads generated notes aloud. Synthesis is delegated to the
// generative service; this package decodes the returned PCM and hands it to
// a platform Player. Failures here are logged and never shown to the user:
// the notes are still on screen, they just stay silent.
package speech

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nuwanhe/smartsl/internal/genai"
)

// Synthesizer converts text to audible speech.
type Synthesizer interface {
	// Speak synthesizes and plays text, blocking until playback finishes.
	// A response without an audio payload is a silent no-op. The returned
	// error is informational; it has already been logged and callers may
	// ignore it. Callers are responsible for not re-invoking Speak while
	// a previous call is still in flight.
	Speak(ctx context.Context, text string) error
}

type synthesizer struct {
	client genai.Client
	player Player
	log    zerolog.Logger
}

// NewSynthesizer creates a Synthesizer backed by a generative client and an
// audio player.
func NewSynthesizer(client genai.Client, player Player, log zerolog.Logger) Synthesizer {
	return &synthesizer{client: client, player: player, log: log}
}

func (s *synthesizer) Speak(ctx context.Context, text string) error {
	resp, err := s.client.GenerateSpeech(ctx, genai.SpeechRequest{
		Text: "Explain this briefly and clearly: " + text,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("speech synthesis failed")
		return fmt.Errorf("synthesizing speech: %w", err)
	}
	if len(resp.Audio) == 0 {
		return nil
	}

	samples := DecodePCM16(resp.Audio)
	if err := s.player.Play(ctx, samples); err != nil {
		s.log.Warn().Err(err).Msg("audio playback failed")
		return fmt.Errorf("playing speech: %w", err)
	}
	return nil
}
