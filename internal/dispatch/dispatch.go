// Package dispatch carries out the persistence and notification effects
// emitted by the timekeeper.
package dispatch

import (
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logger"
)

// Store persists settings and the completed counter.
type Store interface {
	SaveSettings(settings model.Settings) error
	SaveCount(count int) error
}

// Notifier plays tones and shows notifications.
type Notifier interface {
	PlayTone()
	ShowNotification(title, body string)
}

// Dispatcher routes effects to the store and the notifier.
type Dispatcher struct {
	store    Store
	notifier Notifier
	log      *logger.Logger
	tones    sync.WaitGroup
}

// New creates a dispatcher.
func New(store Store, notifier Notifier, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Attach registers the dispatcher on keeper.
func (d *Dispatcher) Attach(keeper *timekeeper.TimeKeeper) {
	keeper.Handle(d.Handle)
}

// Handle executes a single effect. Tones play in the background; everything
// else runs before Handle returns.
func (d *Dispatcher) Handle(effect timekeeper.Effect) {
	switch effect.Type {
	case timekeeper.EffectPersistCount:
		if err := d.store.SaveCount(effect.State.Completed); err != nil {
			d.log.Error("persist count: %v", err)
		}
	case timekeeper.EffectPersistSettings:
		if err := d.store.SaveSettings(effect.Settings); err != nil {
			d.log.Error("persist settings: %v", err)
		}
		if err := d.store.SaveCount(effect.State.Completed); err != nil {
			d.log.Error("persist count: %v", err)
		}
	case timekeeper.EffectTone:
		d.tones.Add(1)
		go func() {
			defer d.tones.Done()
			d.notifier.PlayTone()
		}()
	case timekeeper.EffectNotify:
		d.notifier.ShowNotification(effect.NotifyTitle, effect.NotifyBody)
	case timekeeper.EffectComplete:
		d.log.Info("%s (completed: %d)", effect.State.Phase.CompleteLabel(), effect.State.Completed)
	default:
		d.log.Debug("effect %s: %s", effect.Type, effect.State.Display())
	}
}

// Wait blocks until every tone started so far finished playing.
func (d *Dispatcher) Wait() {
	d.tones.Wait()
}
