package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
)

// CheckWithin runs p.Check bounded by timeout (zero means no bound). A
// panicking probe yields a StatusError result instead of unwinding the
// caller.
func CheckWithin(ctx context.Context, p Probe, timeout time.Duration) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			logging.With("service", p.Name()).Warn("probe panicked", "panic", r)
			result = Result{Available: true, Status: StatusError, Message: fmt.Sprintf("probe panicked: %v", r)}
		}
	}()

	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	return p.Check(ctx)
}

// FetchLogsWithin runs f.RecentLogs bounded by timeout, turning a panic
// into unavailable logs.
func FetchLogsWithin(ctx context.Context, f LogFetcher, windowSeconds int, timeout time.Duration) (logs Logs) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("log fetch panicked", "panic", r)
			logs = Logs{Error: fmt.Sprintf("log fetch panicked: %v", r)}
		}
	}()

	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	return f.RecentLogs(ctx, windowSeconds)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
