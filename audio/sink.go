package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sink is the playback output voices attach to
// Lock/Unlock serialize voice state changes against the mix goroutine
type Sink interface {
	Lock()
	Unlock()
	Add(s beep.Streamer)
}

// SpeakerSink routes voices to the process-wide beep speaker
// The speaker must have been initialized before any Add
type SpeakerSink struct{}

func (SpeakerSink) Lock()               { speaker.Lock() }
func (SpeakerSink) Unlock()             { speaker.Unlock() }
func (SpeakerSink) Add(s beep.Streamer) { speaker.Play(s) }

// NullSink discards all playback, used for silent mode and tests
// No mix goroutine exists in silent mode, so Lock/Unlock are no-ops
type NullSink struct{}

func (NullSink) Lock()               {}
func (NullSink) Unlock()             {}
func (NullSink) Add(s beep.Streamer) {}
