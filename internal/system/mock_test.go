package system

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"testing"
)

func TestMockFS_ReadFile(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/work/keepalive.toml", []byte("interval = 60"), 0644)

	data, err := mockFS.ReadFile("/work/keepalive.toml")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "interval = 60" {
		t.Errorf("ReadFile = %q, want %q", string(data), "interval = 60")
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Stat(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.txt", []byte("content"), 0644)
	mockFS.AddDir("/test/dir")

	info, err := mockFS.Stat("/test/file.txt")
	if err != nil {
		t.Fatalf("Stat file error: %v", err)
	}
	if info.IsDir() {
		t.Error("File should not be a directory")
	}
	if info.Name() != "file.txt" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.txt")
	}

	info, err = mockFS.Stat("/test/dir")
	if err != nil {
		t.Fatalf("Stat dir error: %v", err)
	}
	if !info.IsDir() {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_Exists(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if !mockFS.Exists("/file.txt") {
		t.Error("File should exist")
	}
	if !mockFS.Exists("/dir") {
		t.Error("Dir should exist")
	}
	if mockFS.Exists("/nonexistent") {
		t.Error("Nonexistent should not exist")
	}
}

func TestMockFS_ReadDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/repo/b.txt", []byte("x"), 0644)
	mockFS.AddFile("/repo/a.txt", []byte("y"), 0644)
	mockFS.AddDir("/repo/src")

	entries, err := mockFS.ReadDir("/repo")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}

	want := []string{"a.txt", "b.txt", "src"}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir returned %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name() != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name(), name)
		}
	}
	if !entries[2].IsDir() {
		t.Error("src should be a directory")
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.ReadFileErr = fs.ErrPermission
	mockFS.AddDir("/locked")
	mockFS.ReadDirErrs["/locked"] = fs.ErrPermission

	if _, err := mockFS.ReadFile("/anything"); err != fs.ErrPermission {
		t.Errorf("ReadFile error = %v, want ErrPermission", err)
	}
	if _, err := mockFS.ReadDir("/locked"); err != fs.ErrPermission {
		t.Errorf("ReadDir error = %v, want ErrPermission", err)
	}
}

func TestMockExecutor_Execute(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("echo", []byte("hello\n"), nil)

	output, err := exec.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "hello\n" {
		t.Errorf("Output = %q, want %q", string(output), "hello\n")
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "echo" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "echo")
	}
}

func TestMockExecutor_MatchPrecedence(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("docker", []byte("bare"), nil)
	exec.AddResponse("docker ps", []byte("first-arg"), nil)
	exec.AddResponse("docker ps --format {{.Names}}", []byte("full"), nil)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"ps", "--format", "{{.Names}}"}, "full"},
		{[]string{"ps", "--format", "{{.ID}}"}, "first-arg"},
		{[]string{"logs", "web"}, "bare"},
	}

	for _, tt := range tests {
		out, _ := exec.Execute(context.Background(), "docker", tt.args...)
		if string(out) != tt.want {
			t.Errorf("Execute(docker %v) = %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	exec := NewMockExecutor()
	exec.DefaultResponse = MockResponse{Output: []byte("default"), Err: nil}

	output, err := exec.Execute(context.Background(), "unknown", "command")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "default" {
		t.Errorf("Output = %q, want %q", string(output), "default")
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddBinary("docker")

	if _, err := mock.LookPath("docker"); err != nil {
		t.Errorf("LookPath(docker) error = %v, want nil", err)
	}

	_, err := mock.LookPath("ngrok")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("LookPath(ngrok) error = %v, want exec.ErrNotFound", err)
	}
}

func TestMockExecutor_Ran(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "pgrep", "-f", "ngrok")

	if !exec.Ran("pgrep -f ngrok") {
		t.Error("Ran(pgrep -f ngrok) = false, want true")
	}
	if exec.Ran("pgrep -f sshd") {
		t.Error("Ran(pgrep -f sshd) = true, want false")
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "cmd1")
	exec.Execute(context.Background(), "cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"docker", []string{"compose", "logs", "--since", "300s", "--no-color"}, "docker compose logs --since 300s --no-color"},
		{"tasklist", []string{"/FI", "IMAGENAME eq ngrok.exe"}, "tasklist /FI 'IMAGENAME eq ngrok.exe'"},
	}

	for _, tt := range tests {
		if got := CommandLine(tt.name, tt.args...); got != tt.want {
			t.Errorf("CommandLine(%q, %v) = %q, want %q", tt.name, tt.args, got, tt.want)
		}
	}
}
