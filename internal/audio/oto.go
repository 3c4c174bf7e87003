package audio

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// otoBackend plays each effect on its own oto player, polled from a
// goroutine until it drains.
type otoBackend struct {
	ctx    *oto.Context
	ready  chan struct{}
	voices atomic.Int32
}

func newOtoBackend() (*otoBackend, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &otoBackend{ctx: ctx, ready: ready}, nil
}

func (b *otoBackend) Play(mono []float64, gain float64) bool {
	select {
	case <-b.ready:
	default:
		return false
	}
	if b.voices.Load() >= MaxVoices {
		return false
	}
	b.voices.Add(1)
	data := encodeF32(mono)
	go func() {
		defer b.voices.Add(-1)
		player := b.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return true
}

func (b *otoBackend) Close() error {
	return b.ctx.Suspend()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// encodeF32 lays mono samples out as interleaved stereo float32 LE.
func encodeF32(mono []float64) []byte {
	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		putStereoF32(buf, i, s)
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
