package config

import "sync"

const (
	DefaultFPSLimit = 0
	MinFPSLimit     = 30
	MaxFPSLimit     = 1000
)

// FrameSettings holds frame pacing configuration that may change while the
// engine runs.
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = uncapped
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: DefaultFPSLimit,
}

// GetFPSLimit returns the current frame rate cap, 0 when uncapped.
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Non-positive values remove the cap,
// anything else is clamped to [MinFPSLimit, MaxFPSLimit].
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	switch {
	case limit <= 0:
		limit = 0
	case limit < MinFPSLimit:
		limit = MinFPSLimit
	case limit > MaxFPSLimit:
		limit = MaxFPSLimit
	}
	globalFrameSettings.fpsLimit = limit
}
