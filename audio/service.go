package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/orb-garden/constant"
	"github.com/lixenwraith/orb-garden/service"
)

var _ service.Service = (*AudioService)(nil)

// AudioService owns the speaker backend behind a Service lifecycle
// Handles graceful degradation: a machine without an audio device keeps
// the scene fully interactive, just silent
type AudioService struct {
	config   *Config
	log      *logrus.Logger
	disabled atomic.Bool
	started  atomic.Bool
}

// NewService creates a new audio service
func NewService(log *logrus.Logger) *AudioService {
	return &AudioService{log: log}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - mute (true disables the speaker regardless of env config)
func (s *AudioService) Init(args ...any) error {
	s.config = LoadConfig()

	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			s.config.Enabled = false
		}
	}
	return nil
}

// Start implements Service
// Initializes the speaker; failure sets disabled (no error returned)
func (s *AudioService) Start() error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if !s.config.Enabled {
		s.disabled.Store(true)
		return nil
	}

	sr := beep.SampleRate(s.config.SampleRate)
	bufLen := sr.N(constant.SpeakerBufferDuration)
	if bufLen < 1 {
		bufLen = sr.N(100 * time.Millisecond)
	}

	if err := speaker.Init(sr, bufLen); err != nil {
		if s.log != nil {
			s.log.WithError(err).Warn("no audio backend, running silent")
		}
		s.disabled.Store(true)
		return nil
	}

	s.started.Store(true)
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.started.CompareAndSwap(true, false) {
		speaker.Clear()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Sink returns the playback sink pools should attach to
// Silent mode returns a NullSink so pool construction never branches
func (s *AudioService) Sink() Sink {
	if s.disabled.Load() {
		return NullSink{}
	}
	return SpeakerSink{}
}

// Volume returns the configured master volume
func (s *AudioService) Volume() float64 {
	if s.config == nil {
		return constant.DefaultMasterVolume
	}
	return s.config.MasterVolume
}

// PoolSize returns the configured voices-per-pool count
func (s *AudioService) PoolSize() int {
	if s.config == nil {
		return constant.DefaultPoolSize
	}
	return s.config.PoolSize
}
