// Package guard implements the unload guard for a terminal session: while
// installed it traps interrupt and terminate signals, warns once, and only
// gives up the session on a second signal.
package guard

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mdcorpranks.dev/review-wizard/internal/review"
)

// LeaveWarning is shown when the user tries to leave mid-session
const LeaveWarning = "Sei sicuro di voler uscire? La valutazione non inviata andrà persa."

// Signal implements review.UnloadGuard with os/signal
type Signal struct {
	mu      sync.Mutex
	active  bool
	warned  bool
	signals chan os.Signal
	done    chan struct{}

	warn  func(string)
	leave context.CancelFunc
	// notify and stop are signal.Notify and signal.Stop, replaceable in tests
	notify func(chan<- os.Signal, ...os.Signal)
	stop   func(chan<- os.Signal)
}

var _ review.UnloadGuard = (*Signal)(nil)

// NewSignal creates a guard that calls warn on the first trapped signal and
// leave on the second
func NewSignal(warn func(string), leave context.CancelFunc) *Signal {
	return &Signal{
		warn:   warn,
		leave:  leave,
		notify: signal.Notify,
		stop:   signal.Stop,
	}
}

// Install starts trapping signals. The returned func releases the guard and is idempotent.
func (g *Signal) Install() func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active {
		return func() {}
	}

	g.active = true
	g.warned = false
	g.signals = make(chan os.Signal, 2)
	g.done = make(chan struct{})
	g.notify(g.signals, os.Interrupt, syscall.SIGTERM)

	go g.loop(g.signals, g.done)

	var once sync.Once
	return func() {
		once.Do(g.release)
	}
}

// Active reports whether the guard is installed
func (g *Signal) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Confirm records a leave attempt that did not arrive as a signal (a quit key
// in the TUI). It returns true when leaving is confirmed: the guard is not
// installed or the user was already warned.
func (g *Signal) Confirm() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.active || g.warned {
		return true
	}
	g.warned = true
	return false
}

func (g *Signal) loop(signals <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-signals:
			if g.Confirm() {
				if g.leave != nil {
					g.leave()
				}
				continue
			}
			if g.warn != nil {
				g.warn(LeaveWarning)
			}
		}
	}
}

func (g *Signal) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.active {
		return
	}
	g.stop(g.signals)
	close(g.done)
	g.active = false
	g.warned = false
}
