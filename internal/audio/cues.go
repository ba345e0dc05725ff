package audio

import (
	"log/slog"

	"tpshooter/internal/weapon"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Cue int

const (
	CueFire Cue = iota
	CueReload
	CueEmpty
	CueHit
	CueKill
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueReload:
		return "reload"
	case CueEmpty:
		return "empty"
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	}
	return "unknown"
}

var defaultTones = map[Cue]Tone{
	CueFire:   {Freq: 180, EndFreq: 60, Duration: 0.18, Decay: 0.04, Noise: 0.7, Gain: 0.9},
	CueReload: {Freq: 900, EndFreq: 700, Duration: 0.12, Decay: 0.03, Noise: 0.3, Gain: 0.5},
	CueEmpty:  {Freq: 1400, EndFreq: 1400, Duration: 0.05, Decay: 0.01, Noise: 0.1, Gain: 0.4},
	CueHit:    {Freq: 520, EndFreq: 480, Duration: 0.08, Decay: 0.03, Gain: 0.5},
	CueKill:   {Freq: 660, EndFreq: 990, Duration: 0.25, Decay: 0.12, Gain: 0.6},
}

// CuePlayer turns weapon notifications into short synthesized sounds,
// spatialized against Listener.
type CuePlayer struct {
	Sink        Sink
	Listener    Listener
	MaxDistance float32
	Logger      *slog.Logger

	samples map[Cue][]float32
}

func NewCuePlayer(sink Sink) *CuePlayer {
	p := &CuePlayer{
		Sink:        sink,
		MaxDistance: 60,
		Logger:      slog.Default(),
		samples:     make(map[Cue][]float32, len(defaultTones)),
	}
	for cue, tone := range defaultTones {
		p.samples[cue] = tone.Render(SampleRate)
	}
	return p
}

// Play sounds cue centered at full volume.
func (p *CuePlayer) Play(cue Cue) {
	p.emit(cue, 1, 0.5)
}

// PlayAt sounds cue from a world position.
func (p *CuePlayer) PlayAt(cue Cue, pos rl.Vector3) {
	volume, pan := Spatialize(p.Listener, pos, p.MaxDistance)
	if volume <= 0 {
		return
	}
	p.emit(cue, volume, pan)
}

func (p *CuePlayer) emit(cue Cue, volume, pan float32) {
	mono, ok := p.samples[cue]
	if !ok || p.Sink == nil {
		return
	}
	if err := p.Sink.Play(EncodeStereo(mono, volume, pan)); err != nil {
		p.Logger.Warn("cue playback failed", "cue", cue, "error", err)
	}
}

// Bind subscribes to w's notifications and returns a func that detaches
// them again. Shots that land are followed by a hit or kill cue at the
// impact point.
func (p *CuePlayer) Bind(w weapon.Weapon) (unbind func()) {
	ev := w.Notifications()
	offFired := ev.OnFired.AddListener(func(s weapon.Shot) {
		p.Play(CueFire)
		switch {
		case s.Killed:
			p.PlayAt(CueKill, s.Point)
		case s.Damaged:
			p.PlayAt(CueHit, s.Point)
		}
	})
	offReloaded := ev.OnReloaded.AddListener(func(int) { p.Play(CueReload) })
	offEmpty := ev.OnOutOfAmmo.AddListener(func() { p.Play(CueEmpty) })
	return func() {
		offFired()
		offReloaded()
		offEmpty()
	}
}
