package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func runCLI(t *testing.T, storeDir string, args ...string) string {
	t.Helper()
	a := newApp()
	a.now = func() time.Time { return time.Date(2024, time.March, 7, 9, 0, 0, 0, time.Local) }
	a.isTerminal = func() bool { return false }
	t.Cleanup(a.close)

	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--store", storeDir}, args...))
	if err := cmd.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("taskcal %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"TASKCAL_STORAGE", "TASKCAL_STORE_PATH", "TASKCAL_CELEBRATE", "TASKCAL_WATCH", "TASKCAL_LOG_FILE", "TASKCAL_UPCOMING_LIMIT"} {
		t.Setenv(name, "")
	}
}

func TestAddAndList(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if out := runCLI(t, dir, "add", "2024-03-05", "buy", "milk"); !strings.Contains(out, "added: buy milk (2024-03-05)") {
		t.Fatalf("unexpected add output: %q", out)
	}
	if out := runCLI(t, dir, "add", "2024-03-06"); out != "" {
		t.Fatalf("blank text should be a silent no-op, got %q", out)
	}
	runCLI(t, dir, "add", "2024-03-09", "call", "mom")

	out := runCLI(t, dir, "list")
	want := "[ ] buy milk (2024-03-05)\n[ ] call mom (2024-03-09)\n"
	if out != want {
		t.Fatalf("unexpected list:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "tasks.json")); err != nil {
		t.Fatalf("expected tasks.json in store dir: %v", err)
	}
}

func TestRootPrintsListWhenNotATerminal(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	runCLI(t, dir, "add", "2024-03-05", "buy", "milk")

	if out := runCLI(t, dir); out != "[ ] buy milk (2024-03-05)\n" {
		t.Fatalf("unexpected root output: %q", out)
	}
}

func TestUpcomingProgressAndCal(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if out := runCLI(t, dir, "upcoming"); strings.TrimSpace(out) != "No urgent tasks" {
		t.Fatalf("unexpected empty upcoming: %q", out)
	}
	if out := runCLI(t, dir, "progress"); strings.TrimSpace(out) != "0% (0/0)" {
		t.Fatalf("unexpected empty progress: %q", out)
	}

	runCLI(t, dir, "add", "2024-03-01", "past")
	runCLI(t, dir, "add", "2024-03-15", "dentist")
	runCLI(t, dir, "add", "2024-03-08", "standup")

	out := runCLI(t, dir, "upcoming")
	if out != "standup (2024-03-08)\ndentist (2024-03-15)\n" {
		t.Fatalf("unexpected upcoming:\n%s", out)
	}
	if out := runCLI(t, dir, "progress"); strings.TrimSpace(out) != "0% (0/3)" {
		t.Fatalf("unexpected progress: %q", out)
	}

	cal := runCLI(t, dir, "cal", "2024-03")
	for _, want := range []string{"March 2024", "Mo", "[ 7]", "15 *", " 1 *"} {
		if !strings.Contains(cal, want) {
			t.Fatalf("expected %q in calendar:\n%s", want, cal)
		}
	}
}

func TestSQLiteBackendFlag(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	runCLI(t, dir, "--storage", "sqlite", "add", "2024-03-05", "buy", "milk")
	out := runCLI(t, dir, "--storage", "sqlite", "list")
	if out != "[ ] buy milk (2024-03-05)\n" {
		t.Fatalf("unexpected sqlite list: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "taskcal.db")); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestConfigFileAndLogFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "taskcal.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	body := "upcoming_limit: 1\nlog_file: " + logPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	store := filepath.Join(dir, "store")
	runCLI(t, store, "--config", cfgPath, "add", "2024-03-08", "one")
	runCLI(t, store, "--config", cfgPath, "add", "2024-03-09", "two")
	if out := runCLI(t, store, "--config", cfgPath, "upcoming"); out != "one (2024-03-08)\n" {
		t.Fatalf("expected limit from config file, got %q", out)
	}
	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(raw), "task added") {
		t.Fatalf("expected structured log entries, got %q", raw)
	}
}

func TestUnwritableLogFileWarns(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	t.Setenv("TASKCAL_LOG_FILE", filepath.Join(dir, "no-such-dir", "taskcal.log"))

	out := runCLI(t, filepath.Join(dir, "store"), "progress")
	if !strings.Contains(out, "taskcal: logging disabled") {
		t.Fatalf("expected a logging warning, got %q", out)
	}
	if !strings.Contains(out, "0% (0/0)") {
		t.Fatalf("expected the command to still run, got %q", out)
	}
}
