// Package audio plays short synthesized cues for engine events.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-wave-defense/internal/event"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueKill
	CuePickup
	CueBaseHit
	CuePlayerHit
	CueWaveClear
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueKill:
		return "kill"
	case CuePickup:
		return "pickup"
	case CueBaseHit:
		return "base-hit"
	case CuePlayerHit:
		return "player-hit"
	case CueWaveClear:
		return "wave-clear"
	case CueGameOver:
		return "game-over"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// CueFor maps an engine event to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.ShotFired:
		return CueShot, true
	case event.EnemyKilled:
		return CueKill, true
	case event.PickupCollected:
		return CuePickup, true
	case event.BaseDamaged:
		return CueBaseHit, true
	case event.PlayerDamaged:
		return CuePlayerHit, true
	case event.WaveCleared:
		return CueWaveClear, true
	case event.GameOver:
		return CueGameOver, true
	}
	return 0, false
}

const (
	SampleRate = beep.SampleRate(44100)
	// Contact damage arrives every tick; the cue repeats at most this often.
	playerHitEveryTicks = 20
)

// CuePlayer turns engine events into sounds.
type CuePlayer struct {
	Volume float64

	rate          beep.SampleRate
	out           func(beep.Streamer)
	lastPlayerHit uint64
	hitPlayed     bool
	unsubscribe   func()
}

// Option configures a CuePlayer.
type Option func(*CuePlayer)

// WithOutput replaces the speaker, used by tests and headless hosts.
func WithOutput(out func(beep.Streamer)) Option {
	return func(p *CuePlayer) { p.out = out }
}

// WithVolume sets the linear master volume.
func WithVolume(v float64) Option {
	return func(p *CuePlayer) { p.Volume = v }
}

// NewCuePlayer subscribes a cue player to every event of d. Without WithOutput it
// opens the system speaker; if that fails the error is returned and nothing is
// subscribed.
func NewCuePlayer(d *event.Dispatcher, opts ...Option) (*CuePlayer, error) {
	p := &CuePlayer{Volume: 0.5, rate: SampleRate}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("failed to init speaker: %w", err)
		}
		speakerOpen = true
		p.out = func(s beep.Streamer) { speaker.Play(s) }
	}
	p.unsubscribe = d.SubscribeAll(p)
	return p, nil
}

func (p *CuePlayer) OnEvent(e event.Event) {
	cue, ok := CueFor(e.Type)
	if !ok {
		return
	}
	if cue == CuePlayerHit {
		if p.hitPlayed && e.Tick-p.lastPlayerHit < playerHitEveryTicks && e.Tick >= p.lastPlayerHit {
			return
		}
		p.lastPlayerHit, p.hitPlayed = e.Tick, true
	}
	if s := CueStreamer(cue, p.rate, p.Volume); s != nil {
		p.out(s)
	}
}

// Close stops listening. The speaker itself stays open for the process lifetime.
func (p *CuePlayer) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

var speakerOpen bool

// Shutdown releases the system speaker if a cue player opened it.
func Shutdown() {
	if speakerOpen {
		speaker.Close()
		speakerOpen = false
	}
}
