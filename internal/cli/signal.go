package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is returned by a command stopped by SIGINT or SIGTERM.
var ErrInterrupted = errors.New("interrupted")

// SignalContext is cancelled by SIGINT or SIGTERM and remembers which
// signal stopped it, so a command can still report its partial result.
type SignalContext struct {
	context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	sig    os.Signal
}

// NewSignalContext starts listening for signals until Stop is called or
// parent is done.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.interrupt(sig)
		case <-ctx.Done():
		}
	}()
	return sc
}

func (sc *SignalContext) interrupt(sig os.Signal) {
	sc.mu.Lock()
	sc.sig = sig
	sc.mu.Unlock()
	sc.cancel()
}

// Stop cancels the context and releases the signal handler.
func (sc *SignalContext) Stop() {
	sc.cancel()
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// Interrupted returns an error wrapping ErrInterrupted when a signal
// cancelled the context, and nil otherwise.
func (sc *SignalContext) Interrupted() error {
	sig := sc.Signal()
	if sig == nil {
		return nil
	}
	return fmt.Errorf("%w by %v", ErrInterrupted, sig)
}
