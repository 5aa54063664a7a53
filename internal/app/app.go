// Package app provides the application context for keep-alive.
// It allows dependency injection for testing.
package app

import (
	"os"

	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// App holds the application dependencies
type App struct {
	// FS is used for configuration files and the working-directory tree
	FS system.FileSystem

	// Executor runs the probe commands
	Executor system.CommandExecutor

	// WorkDir is the directory searched for keepalive.toml
	WorkDir string
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom file system
func WithFS(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithWorkDir sets the working directory
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.WorkDir = dir
	}
}

// New creates a new App with the given options.
// Dependencies not provided fall back to the real operating system.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}
	if app.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			app.WorkDir = wd
		} else {
			app.WorkDir = "."
		}
	}

	return app
}

// Registry returns the service probes bound to the app's executor
func (a *App) Registry() *probe.Registry {
	return probe.NewRegistry(a.Executor)
}

// Default is the default application instance
var Default = New()
