package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateConfig points config lookup at an empty home and pins colours off.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	t.Setenv("NO_COLOR", "")
	t.Setenv("TASKLIST_COLOR", "never")
	t.Setenv("TASKLIST_LOG_LEVEL", "")
	t.Setenv("TASKLIST_LOG_FORMAT", "")
	return home
}

func run(t *testing.T, args []string, input string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = RunWithStreams(context.Background(), args, Streams{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	})
	return out.String(), errOut.String(), err
}

func TestRunAddPrintEnd(t *testing.T) {
	isolateConfig(t)

	input := "add\nC\n2023-02-28\n9:05\nBuy milk\n\nprint\nend\n"
	stdout, _, err := run(t, nil, input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(stdout, "| 1  | 2023-02-28 | 09:05 | C |") {
		t.Errorf("expected task row in output:\n%s", stdout)
	}
	if !strings.HasSuffix(stdout, "Tasklist exiting!\n") {
		t.Errorf("expected farewell, got:\n%s", stdout)
	}
}

func TestRunLogsToStderr(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TASKLIST_LOG_LEVEL", "debug")

	stdout, stderr, err := run(t, []string{"extra"}, "add\nL\n2030-01-01\n08:00\nLater\n\nend\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(stderr, "task added") {
		t.Errorf("expected lifecycle log on stderr, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "ignoring") {
		t.Errorf("expected warning about arguments, got:\n%s", stderr)
	}
	if strings.Contains(stdout, "task added") {
		t.Errorf("logs leaked to stdout:\n%s", stdout)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	home := isolateConfig(t)
	path := filepath.Join(home, ".tasklist.toml")
	if err := os.WriteFile(path, []byte("colour = \"never\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := run(t, nil, "end\n")
	if err == nil {
		t.Fatal("expected config error, got nil")
	}
	if !strings.Contains(err.Error(), "loading config") {
		t.Errorf("error %q does not mention config", err)
	}
}

func TestRunCancelled(t *testing.T) {
	isolateConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := RunWithStreams(ctx, nil, Streams{In: strings.NewReader("end\n"), Out: &out, Err: &out})
	if err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}
