package gestures

import "time"

// Default classification thresholds, used by trackers constructed without
// an explicit Config.
const (
	// DefaultBufferTime is the window within which movement is tolerated
	// before a session is forced into a drag.
	DefaultBufferTime = 150 * time.Millisecond
	// DefaultDoubleClickWindow is the maximum gap between two presses for
	// them to pair as a double click.
	DefaultDoubleClickWindow = 300 * time.Millisecond
	// DefaultMaxClickDrift is the maximum pixel distance between press and
	// release before motion counts as a drag.
	DefaultMaxClickDrift = 6.0
)

// Config holds the classification thresholds for a Tracker. A single
// Config may be shared by any number of trackers; sharing one is how a
// host applies process-wide settings.
//
// The drift threshold is kept together with its squared form so the hot
// move path never recomputes it; use SetMaxClickDrift to change it.
type Config struct {
	// BufferTime is the window within which movement is tolerated before
	// a session is forced into a drag.
	BufferTime time.Duration
	// DoubleClickWindow is the maximum gap between two presses for them
	// to pair as a double click.
	DoubleClickWindow time.Duration

	maxClickDrift   float64
	maxClickDriftSq float64
}

// NewConfig returns a Config populated with the package defaults.
func NewConfig() *Config {
	c := &Config{
		BufferTime:        DefaultBufferTime,
		DoubleClickWindow: DefaultDoubleClickWindow,
	}
	c.SetMaxClickDrift(DefaultMaxClickDrift)
	return c
}

// SetMaxClickDrift sets the drift threshold in pixels and refreshes the
// cached squared value.
func (c *Config) SetMaxClickDrift(px float64) {
	c.maxClickDrift = px
	c.maxClickDriftSq = px * px
}

// MaxClickDrift returns the drift threshold in pixels.
func (c *Config) MaxClickDrift() float64 {
	return c.maxClickDrift
}

// MaxClickDriftSquared returns the pre-squared drift threshold, for
// comparison against squared distances.
func (c *Config) MaxClickDriftSquared() float64 {
	return c.maxClickDriftSq
}

// defaultConfig is shared by every tracker constructed with a nil Config.
var defaultConfig = NewConfig()

// DefaultConfig returns the shared default configuration. Mutating it
// affects every tracker that was constructed without an explicit Config.
func DefaultConfig() *Config {
	return defaultConfig
}
