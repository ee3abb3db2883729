package speech

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
)

// Player sends decoded samples to the platform audio output. Play blocks
// until playback completes or ctx is cancelled.
type Player interface {
	Play(ctx context.Context, samples []float32) error
}

// ExecPlayer plays audio by piping PCM to a system playback tool.
// It prefers ffplay (raw float32 input), falling back to aplay (signed
// 16-bit input). Lookup happens once per call so a tool installed after
// startup is still found.
type ExecPlayer struct{}

// NewExecPlayer creates a Player backed by system playback tools.
func NewExecPlayer() *ExecPlayer {
	return &ExecPlayer{}
}

func (p *ExecPlayer) Play(ctx context.Context, samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	if path, err := exec.LookPath("ffplay"); err == nil {
		cmd := exec.CommandContext(ctx, path,
			"-loglevel", "quiet", "-autoexit", "-nodisp",
			"-f", "f32le", "-ar", fmt.Sprint(SampleRate), "-ch_layout", "mono",
			"-i", "pipe:0")
		cmd.Stdin = bytes.NewReader(encodeFloat32LE(samples))
		return runPlayer(cmd, "ffplay")
	}

	if path, err := exec.LookPath("aplay"); err == nil {
		cmd := exec.CommandContext(ctx, path,
			"-q", "-f", "S16_LE", "-r", fmt.Sprint(SampleRate), "-c", "1")
		cmd.Stdin = bytes.NewReader(EncodePCM16(samples))
		return runPlayer(cmd, "aplay")
	}

	return fmt.Errorf("no audio playback tool found (tried ffplay, aplay)")
}

func runPlayer(cmd *exec.Cmd, name string) error {
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// encodeFloat32LE serializes samples as little-endian IEEE 754 floats,
// the raw format ffplay expects for f32le input.
func encodeFloat32LE(samples []float32) []byte {
	buf := make([]byte, 0, len(samples)*4)
	var scratch [4]byte
	for _, f := range samples {
		bits := math.Float32bits(f)
		scratch[0] = byte(bits)
		scratch[1] = byte(bits >> 8)
		scratch[2] = byte(bits >> 16)
		scratch[3] = byte(bits >> 24)
		buf = append(buf, scratch[:]...)
	}
	return buf
}
