// Package heartbeat runs the keep-alive report loop.
//
// A Scheduler prints one report per tick: a header line, one line per
// configured service probe, recent container logs beneath a running docker
// engine, and every tenth tick an extra heartbeat line. The first tick runs
// immediately; later ticks follow a ticker with the configured interval.
//
// Ticks run on the loop goroutine, so a slow tick delays the next one and
// two ticks never overlap. Cancelling the context passed to Run ends the
// loop after any tick in flight has finished; the shutdown summary is
// printed exactly once and Run returns nil.
//
//	ctx, stop := heartbeat.NotifyContext(context.Background())
//	defer stop()
//
//	sched := heartbeat.New(cfg, probe.NewRegistry(system.DefaultExecutor()), os.Stdout)
//	return sched.Run(ctx)
package heartbeat
