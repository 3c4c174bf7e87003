package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const beepRate = beep.SampleRate(SampleRate)

// beepBackend mixes every effect into one speaker stream.
type beepBackend struct {
	mixer *beep.Mixer
}

func newBeepBackend() (*beepBackend, error) {
	if err := speaker.Init(beepRate, beepRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("beep speaker: %w", err)
	}
	b := &beepBackend{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *beepBackend) Play(mono []float64, gain float64) bool {
	speaker.Lock()
	defer speaker.Unlock()
	if b.mixer.Len() >= MaxVoices {
		return false
	}
	b.mixer.Add(withGain(newSampleStreamer(mono), gain))
	return true
}

func (b *beepBackend) Close() error {
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// withGain scales a streamer by a linear gain in [0,1].
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(max(gain, 1e-6)),
		Silent:   gain <= 0,
	}
}

// sampleStreamer replays a mono buffer on both channels.
type sampleStreamer struct {
	data []float64
	pos  int
}

func newSampleStreamer(mono []float64) *sampleStreamer {
	return &sampleStreamer{data: mono}
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.data) {
			return i, true
		}
		v := s.data[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sampleStreamer) Err() error { return nil }
