package notify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"pomodoro/internal/logger"
)

// ErrAudioUnavailable indicates the system audio device could not be opened.
var ErrAudioUnavailable = errors.New("audio device unavailable")

// Player plays PCM through oto. Only one oto context may exist per process,
// so create a single Player and share it.
type Player struct {
	ctx    *oto.Context
	log    *logger.Logger
	mu     sync.Mutex
	active *oto.Player
}

// NewPlayer opens the system audio device.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play blocks until pcm finished playing or Stop was called. A tone
// already playing is interrupted.
func (p *Player) Play(pcm []byte) error {
	if len(pcm) == 0 {
		return nil
	}
	p.Stop()

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	if p.active == player {
		p.active = nil
	}
	p.mu.Unlock()

	return player.Close()
}

// Stop interrupts the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("audio player: interrupted")
	}
}

// Bell writes the terminal bell character. It stands in for Player when no
// audio device is available in a terminal session.
type Bell struct {
	out io.Writer
}

// NewBell creates a bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Play rings the bell once; the PCM data is ignored.
func (bell *Bell) Play([]byte) error {
	_, err := io.WriteString(bell.out, "\a")
	return err
}
