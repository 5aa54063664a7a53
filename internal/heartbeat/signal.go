package heartbeat

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalError is the cancellation cause recorded by NotifyContext.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("received %s", SignalName(e.Signal))
}

// SignalName returns the conventional name of a termination signal.
func SignalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return sig.String()
	}
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM whose
// context.Cause is a *SignalError naming the signal. Only the first signal
// is handled; a second one gets the default behaviour and ends the process.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return notifyContext(parent, signal.Notify, signal.Stop)
}

func notifyContext(
	parent context.Context,
	notify func(chan<- os.Signal, ...os.Signal),
	unsubscribe func(chan<- os.Signal),
) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigCh := make(chan os.Signal, 1)
	notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			cancel(&SignalError{Signal: sig})
			unsubscribe(sigCh)
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			unsubscribe(sigCh)
			close(done)
			cancel(context.Canceled)
		})
	}
}
