// Package app provides the application context for keep-alive.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    FS       system.FileSystem      // Config files and cwd tree
//	    Executor system.CommandExecutor // Probe commands
//	    WorkDir  string                 // Where keepalive.toml is looked up
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithFS(system.NewMockFS()),
//	    app.WithExecutor(system.NewMockExecutor()),
//	    app.WithWorkDir("/work"),
//	)
//
// # Available Options
//
//	WithFS(fsys)          // Custom file system
//	WithExecutor(exec)    // Custom command executor
//	WithWorkDir(dir)      // Custom working directory
package app
