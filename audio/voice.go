package audio

import (
	"github.com/gopxl/beep"
)

// voice is one independently playable instance of a decoded buffer
// It is added to the sink exactly once and never drains: when idle it
// streams silence so the mixer keeps it alive for reuse
//
// All state is read by the mix goroutine under the sink lock; mutations
// from Play happen under the same lock
type voice struct {
	streamer beep.StreamSeeker
	gain     float64
	active   bool
	starts   uint64
}

func newVoice(buf *beep.Buffer) *voice {
	return &voice{
		streamer: buf.Streamer(0, buf.Len()),
	}
}

// playing reports whether the last start has not yet drained
func (v *voice) playing() bool {
	return v.active
}

// start rewinds and begins playback at the given gain
func (v *voice) start(gain float64) {
	// Buffer-backed streamer, position 0 is always in range
	_ = v.streamer.Seek(0)
	v.gain = gain
	v.active = true
	v.starts++
}

// stop cuts playback immediately
func (v *voice) stop() {
	v.active = false
}

// Stream implements beep.Streamer
func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if !v.active {
		clearSamples(samples)
		return len(samples), true
	}

	n, _ := v.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= v.gain
		samples[i][1] *= v.gain
	}
	clearSamples(samples[n:])

	if n < len(samples) {
		v.active = false
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (v *voice) Err() error {
	return nil
}

func clearSamples(samples [][2]float64) {
	for i := range samples {
		samples[i][0] = 0
		samples[i][1] = 0
	}
}
