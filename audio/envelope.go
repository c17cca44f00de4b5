package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// envelope applies a linear attack and release to a finite note
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, attack, release, total time.Duration) *envelope {
	return &envelope{
		streamer:       s,
		attackSamples:  sr.N(attack),
		releaseSamples: sr.N(release),
		totalSamples:   sr.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rest := e.totalSamples - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; log2 of zero is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note renders one enveloped sine; a bad frequency yields silence of the same length
func note(sr beep.SampleRate, freq float64, cfg Config) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(cfg.NoteDuration))
	}
	return newEnvelope(sine, sr, cfg.Attack, cfg.Release, cfg.NoteDuration)
}
