//go:build unix

package tui

import (
	"context"
	"io"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mdcorpranks.dev/review-wizard/internal/guard"
	"mdcorpranks.dev/review-wizard/internal/wizard"
	"mdcorpranks.dev/review-wizard/testhelpers"
)

func TestWizardProgram_SignalsGoThroughTheGuard(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warned := make(chan string, 4)
	leave := guard.NewSignal(func(msg string) { warned <- msg }, cancel)
	c := wizard.New(wizard.BackendDeps(testhelpers.NewFakeBackend(twoQuestions...), leave))
	defer c.Close()

	p := newWizardProgram(ctx, NewWizardModel(ctx, c, leave), nil, io.Discard)
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	require.Eventually(t, func() bool {
		return c.State() == wizard.StateActive && leave.Active()
	}, 2*time.Second, 10*time.Millisecond)

	// first signal: warning only, the session goes on
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
	select {
	case msg := <-warned:
		require.Equal(t, guard.LeaveWarning, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no leave warning after the first signal")
	}
	select {
	case err := <-done:
		t.Fatalf("program ended on the first signal: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
	require.Equal(t, wizard.StateActive, c.State())
	require.NoError(t, ctx.Err())

	// second signal: the session context is cancelled and the program ends
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("program still running after the second signal")
	}
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
