package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Sink plays float32 little-endian stereo PCM at SampleRate.
type Sink interface {
	Play(pcm []byte) error
}

// Global oto context, shared by every OtoSink
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			otoContextErr = fmt.Errorf("create oto context: %w", otoContextErr)
			return
		}
		<-ready
	})
	return otoContextErr
}

// OtoSink mixes cues through the oto output device. Finished players are
// reaped on the next Play.
type OtoSink struct {
	mu      sync.Mutex
	players []*oto.Player
}

func NewOtoSink() (*OtoSink, error) {
	if err := initOtoContext(); err != nil {
		return nil, err
	}
	return &OtoSink{}, nil
}

func (s *OtoSink) Play(pcm []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	s.players = live

	p := otoContext.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	s.players = append(s.players, p)
	return nil
}

// Close stops every player still sounding.
func (s *OtoSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		p.Close()
	}
	s.players = nil
}

// NopSink discards everything. Headless runs use it.
type NopSink struct{}

func (NopSink) Play([]byte) error { return nil }
