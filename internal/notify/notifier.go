// Package notify plays the completion tone and shows system notifications.
package notify

import (
	"sync"

	"fyne.io/fyne/v2"

	"pomodoro/internal/logger"
)

// Icon prefixes every notification title.
const Icon = "🍅"

// Permission is the user's decision about system notifications.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

// Poster delivers a system notification.
type Poster interface {
	Post(title, body string) error
}

// Sounder plays raw PCM.
type Sounder interface {
	Play(pcm []byte) error
}

// Option configures the notifier.
type Option func(*Notifier)

// WithPermissionPrompt sets how permission is requested from the platform.
// Without it, permission is granted whenever a poster is configured.
func WithPermissionPrompt(prompt func() Permission) Option {
	return func(n *Notifier) {
		n.prompt = prompt
	}
}

// WithTone replaces the completion tone.
func WithTone(spec ToneSpec) Option {
	return func(n *Notifier) {
		n.tone = Synthesize(spec)
	}
}

// Notifier is best-effort: every failure is logged and swallowed.
type Notifier struct {
	mu         sync.Mutex
	poster     Poster
	sounder    Sounder
	tone       []byte
	permission Permission
	prompt     func() Permission
	log        *logger.Logger
}

// New creates a notifier. Either collaborator may be nil, which turns the
// matching effect into a no-op.
func New(poster Poster, sounder Sounder, log *logger.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		poster:  poster,
		sounder: sounder,
		tone:    Synthesize(CompletionTone),
		log:     log,
		prompt: func() Permission {
			return PermissionGranted
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// RequestPermission asks once; later calls keep the first decision.
func (n *Notifier) RequestPermission() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.permission != PermissionDefault {
		return
	}
	if n.poster == nil {
		n.permission = PermissionDenied
		return
	}
	n.permission = n.prompt()
	n.log.Debug("notification permission: %d", n.permission)
}

// Permission returns the current decision.
func (n *Notifier) Permission() Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}

// PlayTone plays the completion tone and blocks until it finished.
func (n *Notifier) PlayTone() {
	if n.sounder == nil {
		return
	}
	if err := n.sounder.Play(n.tone); err != nil {
		n.log.Warn("play tone: %v", err)
	}
}

// ShowNotification posts a notification when permission was granted.
func (n *Notifier) ShowNotification(title, body string) {
	if n.Permission() != PermissionGranted {
		n.log.Debug("notification suppressed: %s", title)
		return
	}
	if err := n.poster.Post(Icon+" "+title, body); err != nil {
		n.log.Warn("show notification: %v", err)
	}
}

// AppPoster posts notifications through a fyne app.
type AppPoster struct {
	app fyne.App
}

// NewAppPoster creates a poster for app.
func NewAppPoster(app fyne.App) *AppPoster {
	return &AppPoster{app: app}
}

// Post sends the notification on the fyne thread.
func (poster *AppPoster) Post(title, body string) error {
	notification := fyne.NewNotification(title, body)
	fyne.Do(func() {
		poster.app.SendNotification(notification)
	})
	return nil
}

// LogPoster writes notifications to the log. It serves hosts without a
// notification center.
type LogPoster struct {
	log *logger.Logger
}

// NewLogPoster creates a poster writing to log.
func NewLogPoster(log *logger.Logger) *LogPoster {
	return &LogPoster{log: log}
}

// Post logs the notification at info level.
func (poster *LogPoster) Post(title, body string) error {
	poster.log.Info("%s: %s", title, body)
	return nil
}
