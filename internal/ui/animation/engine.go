package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	BlinkOnDuration  Range
	BlinkOffDuration Range
	BlinkFor         time.Duration
}

// BlinkSpec defines the two icons a blink alternates between and the icon
// shown once the blink ends.
type BlinkSpec struct {
	On    fyne.Resource
	Off   fyne.Resource
	Final fyne.Resource
}

// Engine swaps icons on a schedule.
type Engine struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
	done       chan struct{}
	rng        *rand.Rand
}

// New creates a new animation engine.
func New(config Config, updateIcon func(fyne.Resource)) *Engine {
	return &Engine{
		config:     config,
		updateIcon: updateIcon,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartBlink alternates between spec.On and spec.Off until BlinkFor elapses
// or the engine is stopped, then shows spec.Final.
func (engine *Engine) StartBlink(ctx context.Context, spec BlinkSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.updateIcon(spec.Final)

		deadline := time.Now().Add(engine.config.BlinkFor)
		for time.Now().Before(deadline) {
			engine.updateIcon(spec.On)
			if !sleepWithContext(runCtx, engine.config.BlinkOnDuration.Random(engine.rng)) {
				return
			}
			engine.updateIcon(spec.Off)
			if !sleepWithContext(runCtx, engine.config.BlinkOffDuration.Random(engine.rng)) {
				return
			}
		}
	})
}

// Stop terminates any active animation and waits for it to finish.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel, done := engine.cancel, engine.done
	engine.cancel, engine.done = nil, nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Active reports whether an animation is running.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.done == nil {
		return false
	}
	select {
	case <-engine.done:
		return false
	default:
		return true
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
