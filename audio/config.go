package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/orb-garden/constant"
)

// Config holds audio subsystem settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // Linear gain 0.0-1.0
	PoolSize     int     // Voices per sound pool
	SampleRate   int
}

// DefaultConfig returns conservative defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: constant.DefaultMasterVolume,
		PoolSize:     constant.DefaultPoolSize,
		SampleRate:   constant.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ORB_GARDEN_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("ORB_GARDEN_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if size := os.Getenv("ORB_GARDEN_POOL_SIZE"); size != "" {
		if val, err := strconv.Atoi(size); err == nil && val > 0 {
			cfg.PoolSize = val
		}
	}

	if sampleRate := os.Getenv("ORB_GARDEN_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
