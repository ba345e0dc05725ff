package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

const SampleRate = 44100

// Tone is a short synthesized cue: a sine sweep from Freq to EndFreq mixed
// with white noise, shaped by an exponential decay.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration float64 // seconds
	Decay    float64 // envelope time constant, seconds
	Noise    float64 // 0 pure tone, 1 pure noise
	Gain     float64
}

// Render returns mono samples in [-1, 1]. Noise is seeded so a tone always
// renders the same.
func (t Tone) Render(sampleRate int) []float32 {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(uint64(t.Freq), uint64(n)))
	out := make([]float32, n)
	phase := 0.0
	for i := range out {
		sec := float64(i) / float64(sampleRate)
		freq := t.Freq + (t.EndFreq-t.Freq)*sec/t.Duration
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := 1.0
		if t.Decay > 0 {
			env = math.Exp(-sec / t.Decay)
		}
		v := (1-t.Noise)*math.Sin(phase) + t.Noise*(rng.Float64()*2-1)
		out[i] = float32(clampUnit(v * env * t.Gain))
	}
	return out
}

// EncodeStereo interleaves mono samples into float32 little-endian stereo
// frames with the given volume and pan, the format the output context is
// opened with.
func EncodeStereo(mono []float32, volume, pan float32) []byte {
	left := volume * (1 - pan) * 2
	right := volume * pan * 2
	left, right = min(left, volume), min(right, volume)

	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(s*left))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(s*right))
	}
	return buf
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
