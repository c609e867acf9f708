package constant

import "time"

// Audio Playback Settings

const (
	// AudioSampleRate is the speaker output rate in Hz
	AudioSampleRate = 48000

	// SpeakerBufferDuration sizes the speaker ring buffer
	// Larger survives scheduling hiccups, smaller cuts trigger latency
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultPoolSize is the number of voices per sound pool
	// One pool supports this many overlapping triggers before slot reuse
	DefaultPoolSize = 5

	// DefaultMasterVolume is the linear gain applied to every voice
	DefaultMasterVolume = 0.8
)
