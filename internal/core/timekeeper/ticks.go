package timekeeper

import (
	"sync"
	"time"
)

// TickSource drives the countdown. Start begins calling onTick once per
// interval and returns a function that stops it. The stop function must be
// safe to call more than once and must not wait for an in-flight onTick.
type TickSource interface {
	Start(onTick func()) (stop func())
}

// IntervalSource is a TickSource backed by time.Ticker.
type IntervalSource struct {
	interval time.Duration
}

// NewIntervalSource creates a tick source firing every interval.
func NewIntervalSource(interval time.Duration) *IntervalSource {
	if interval <= 0 {
		interval = time.Second
	}
	return &IntervalSource{interval: interval}
}

// Start launches the ticking goroutine.
func (source *IntervalSource) Start(onTick func()) func() {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(source.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				onTick()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}

// ManualSource is a TickSource advanced explicitly with Fire.
type ManualSource struct {
	mu     sync.Mutex
	onTick func()
	token  int
	active int
	starts int
}

// NewManualSource creates an idle manual tick source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Start installs onTick as the current tick target.
func (source *ManualSource) Start(onTick func()) func() {
	source.mu.Lock()
	source.token++
	token := source.token
	source.onTick = onTick
	source.active++
	source.starts++
	source.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			source.mu.Lock()
			defer source.mu.Unlock()
			source.active--
			if source.token == token {
				source.onTick = nil
			}
		})
	}
}

// Fire delivers up to count ticks. It stops early once the source is
// stopped and returns the number of ticks delivered.
func (source *ManualSource) Fire(count int) int {
	fired := 0
	for fired < count {
		source.mu.Lock()
		onTick := source.onTick
		source.mu.Unlock()
		if onTick == nil {
			break
		}
		onTick()
		fired++
	}
	return fired
}

// Active returns how many started sources have not been stopped.
func (source *ManualSource) Active() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.active
}

// Starts returns how many times Start was called.
func (source *ManualSource) Starts() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.starts
}
