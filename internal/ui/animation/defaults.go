package animation

import "time"

// DefaultConfig returns the timings used for the completion blink.
func DefaultConfig() Config {
	return Config{
		BlinkOnDuration: Range{
			Min: 400 * time.Millisecond,
			Max: 500 * time.Millisecond,
		},
		BlinkOffDuration: Range{
			Min: 300 * time.Millisecond,
			Max: 400 * time.Millisecond,
		},
		BlinkFor: 6 * time.Second,
	}
}
