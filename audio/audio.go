// Package audio provides sound loading and playback for slate
// applications, backed by Ebitengine's audio layer.
//
// The underlying audio context is process-wide and created exactly once by
// Init; every Mixer returned by Init shares it.
package audio

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/slate2d/slate"
)

// DefaultSampleRate is used when Init is given a non-positive rate.
const DefaultSampleRate = 44100

var (
	initOnce sync.Once
	mixer    *Mixer
)

// Init returns the process-wide mixer, creating the audio context on the
// first call. Later calls return the same mixer; their sampleRate argument
// is ignored (the backend supports a single context per process).
func Init(sampleRate int) *Mixer {
	initOnce.Do(func() {
		if sampleRate <= 0 {
			sampleRate = DefaultSampleRate
		}
		mixer = &Mixer{ctx: eaudio.NewContext(sampleRate)}
		slate.Logger().Info("audio: context created",
			slog.Int("sample_rate", sampleRate))
	})
	return mixer
}

// Mixer decodes sound files and creates playable sounds.
type Mixer struct {
	ctx *eaudio.Context
}

// SampleRate returns the context sample rate in Hz.
func (m *Mixer) SampleRate() int { return m.ctx.SampleRate() }

// Load decodes audio data in a format chosen by the file name extension
// (.wav or .ogg).
func (m *Mixer) Load(name string, data []byte) (*Sound, error) {
	switch format(name) {
	case "wav":
		return m.LoadWAV(data)
	case "ogg":
		return m.LoadOGG(data)
	}
	return nil, fmt.Errorf("audio: unsupported format %q", name)
}

// LoadFile reads and decodes an audio file.
func (m *Mixer) LoadFile(path string) (*Sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return m.Load(path, data)
}

// LoadWAV decodes WAV data into a playable sound.
func (m *Mixer) LoadWAV(data []byte) (*Sound, error) {
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	player, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: create player: %w", err)
	}
	return &Sound{player: player}, nil
}

// LoadOGG decodes Ogg Vorbis data into a playable sound.
func (m *Mixer) LoadOGG(data []byte) (*Sound, error) {
	stream, err := vorbis.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode ogg: %w", err)
	}
	player, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: create player: %w", err)
	}
	return &Sound{player: player}, nil
}

// format returns the lowercase extension without the dot.
func format(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Sound is one playable audio stream.
type Sound struct {
	player *eaudio.Player
}

// Play starts or resumes playback. Playing an already-playing sound
// restarts it from the beginning.
func (s *Sound) Play() {
	if s.player.IsPlaying() {
		_ = s.player.Rewind()
		return
	}
	_ = s.player.Rewind()
	s.player.Play()
}

// Pause stops playback, keeping the position.
func (s *Sound) Pause() { s.player.Pause() }

// Rewind seeks back to the start.
func (s *Sound) Rewind() error { return s.player.Rewind() }

// IsPlaying reports whether the sound is currently playing.
func (s *Sound) IsPlaying() bool { return s.player.IsPlaying() }

// SetVolume sets the volume in [0, 1]; out-of-range values are clamped.
func (s *Sound) SetVolume(v float64) {
	s.player.SetVolume(clampVolume(v))
}

// Volume returns the current volume.
func (s *Sound) Volume() float64 { return s.player.Volume() }

// Close releases the sound's player.
func (s *Sound) Close() error { return s.player.Close() }

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
