package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.Debug("running command", "cmd", CommandLine(name, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.Bytes(), fmt.Errorf("command failed: %s: %w", CommandLine(name, args...), err)
		}
		return stdout.Bytes(), fmt.Errorf("command failed: %s: %s: %w", CommandLine(name, args...), msg, err)
	}

	return stdout.Bytes(), nil
}

func (e *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CommandLine renders a command and its arguments as a shell-quoted string,
// suitable for logs and user-facing headings.
func CommandLine(name string, args ...string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}
