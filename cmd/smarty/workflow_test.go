package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives a built binary through a full day. Build it
// first and point SMARTY_BIN at it:
//
//	go build -o bin/smarty ./cmd/smarty && SMARTY_BIN=$PWD/bin/smarty go test ./cmd/smarty
func TestEndToEndWorkflow(t *testing.T) {
	bin := os.Getenv("SMARTY_BIN")
	if bin == "" {
		t.Skip("SMARTY_BIN not set")
	}
	if _, err := os.Stat(bin); err != nil {
		t.Fatalf("binary not found at %s: %v", bin, err)
	}

	home := t.TempDir()
	dbPath := filepath.Join(home, "smarty", "smarty.db")
	env := isolatedEnv(home)
	run := func(args ...string) string {
		t.Helper()
		return runCmd(t, bin, env, append([]string{"--config", dbPath}, args...)...)
	}

	run("init", "--timezone", "UTC")

	const day = "2026-03-02"
	out := run("checkin", "morning", "--date", day,
		"--sleep-hours", "8", "--sleep-quality", "5", "--readiness", "9", "--soreness", "1", "--mood", "5")
	if !strings.Contains(out, "Morning check-in saved") {
		t.Errorf("unexpected morning output:\n%s", out)
	}

	out = run("checkin", "night", "--date", day,
		"--steps", "12000", "--water", "3", "--protein", "4", "--strain", "5")
	if !strings.Contains(out, "Night check-in saved") {
		t.Errorf("unexpected night output:\n%s", out)
	}

	out = run("checkin", "show", day)
	if !strings.Contains(out, "99 (green)") {
		t.Errorf("expected a green 99 in show output:\n%s", out)
	}

	out = run("badges")
	if !strings.Contains(out, "No badges yet") {
		t.Errorf("one day should not earn a badge:\n%s", out)
	}

	out = run("recommend", "--json", "--time", "30", "--equipment", "bodyweight")
	var res struct {
		Suggestion struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		}
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("recommend --json output is not JSON: %v\n%s", err, out)
	}
	if res.Suggestion.Item.ID == "" {
		t.Fatalf("expected a suggested item:\n%s", out)
	}

	run("activity", "done", res.Suggestion.Item.ID, "--date", day)
	out = run("activity", "list")
	if !strings.Contains(out, res.Suggestion.Item.ID) {
		t.Errorf("expected %s in activity list:\n%s", res.Suggestion.Item.ID, out)
	}

	out = run("backup", "create")
	if !strings.Contains(out, "Backup created") {
		t.Errorf("unexpected backup output:\n%s", out)
	}

	run("doctor")
}

func isolatedEnv(home string) []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "XDG_CONFIG_HOME=") || strings.HasPrefix(e, "SMARTY_") {
			continue
		}
		env = append(env, e)
	}
	return append(env,
		fmt.Sprintf("HOME=%s", home),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", home),
	)
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
