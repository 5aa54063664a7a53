// Package testutil provides test utilities for command-level tests
package testutil

import (
	"strings"
	"testing"

	"github.com/firefly-engineering/actions-keep-alive/internal/app"
	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// WorkDir is the working directory of every test environment.
const WorkDir = "/work"

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	FS       *system.MockFS
	Executor *system.MockExecutor
	App      *app.App
}

// NewTestEnv creates a test environment with a mock file system and
// executor and installs it as app.Default until the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	fsys := system.NewMockFS()
	fsys.AddDir(WorkDir)
	exec := system.NewMockExecutor()

	testApp := app.New(
		app.WithFS(fsys),
		app.WithExecutor(exec),
		app.WithWorkDir(WorkDir),
	)

	originalDefault := app.Default
	app.Default = testApp
	t.Cleanup(func() {
		app.Default = originalDefault
	})

	return &TestEnv{
		T:        t,
		FS:       fsys,
		Executor: exec,
		App:      testApp,
	}
}

// WriteConfig writes keepalive.toml into the working directory
func (e *TestEnv) WriteConfig(content string) {
	e.T.Helper()
	e.FS.AddFile(WorkDir+"/"+config.DefaultFileName, []byte(content), 0644)
}

// AddFile adds a file below the working directory
func (e *TestEnv) AddFile(rel string, content string) {
	e.T.Helper()
	e.FS.AddFile(WorkDir+"/"+rel, []byte(content), 0644)
}

// InstallSSH puts the ssh client on PATH
func (e *TestEnv) InstallSSH() {
	e.Executor.AddBinary("ssh")
}

// InstallTailscale puts tailscale on PATH with the given status JSON
func (e *TestEnv) InstallTailscale(statusJSON []byte) {
	e.Executor.AddBinary("tailscale")
	e.Executor.AddResponse("tailscale status --json", statusJSON, nil)
}

// InstallNgrok puts ngrok on PATH, optionally with a running agent
func (e *TestEnv) InstallNgrok(running bool) {
	e.Executor.AddBinary("ngrok")
	if running {
		e.Executor.AddResponse("pgrep -f ngrok", []byte("4242\n"), nil)
	} else {
		e.Executor.AddResponse("pgrep -f ngrok", nil, nil)
	}
}

// InstallDocker puts docker on PATH with the given running containers and
// the compose log output returned for a window of windowSeconds.
func (e *TestEnv) InstallDocker(containerIDs []string, windowSeconds int, composeLogs []byte) {
	e.Executor.AddBinary("docker")

	var ps string
	if len(containerIDs) > 0 {
		ps = strings.Join(containerIDs, "\n") + "\n"
	}
	e.Executor.AddResponse("docker ps --format {{.ID}}", []byte(ps), nil)

	compose := "docker " + strings.Join(probe.ComposeLogsArgs(windowSeconds), " ")
	e.Executor.AddResponse(compose, composeLogs, nil)
}
