package guard

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSignals captures the channel registered by Install so tests can deliver signals
type fakeSignals struct {
	mu      sync.Mutex
	ch      chan<- os.Signal
	stopped bool
}

func (f *fakeSignals) notify(c chan<- os.Signal, _ ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = c
}

func (f *fakeSignals) stop(chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSignals) send() {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	ch <- os.Interrupt
}

func newTestGuard(warn func(string), leave context.CancelFunc) (*Signal, *fakeSignals) {
	fake := &fakeSignals{}
	g := NewSignal(warn, leave)
	g.notify = fake.notify
	g.stop = fake.stop
	return g, fake
}

func TestSignal_InstallRelease(t *testing.T) {
	g, fake := newTestGuard(nil, nil)
	require.False(t, g.Active())

	release := g.Install()
	require.True(t, g.Active())

	require.NotPanics(t, func() {
		release()
		release()
	})
	require.False(t, g.Active())
	require.True(t, fake.stopped)
}

func TestSignal_WarnThenLeave(t *testing.T) {
	warnings := make(chan string, 1)
	left := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, fake := newTestGuard(func(msg string) { warnings <- msg }, func() {
		cancel()
		close(left)
	})
	release := g.Install()
	defer release()

	fake.send()
	select {
	case msg := <-warnings:
		require.Equal(t, LeaveWarning, msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for warning")
	}
	require.NoError(t, ctx.Err())

	fake.send()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for leave")
	}
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestSignal_Confirm(t *testing.T) {
	g, _ := newTestGuard(nil, nil)
	require.True(t, g.Confirm(), "leaving is free when the guard is not installed")

	release := g.Install()
	require.False(t, g.Confirm(), "first attempt only warns")
	require.True(t, g.Confirm(), "second attempt leaves")

	release()
	release = g.Install()
	defer release()
	require.False(t, g.Confirm(), "a new install warns again")
}
