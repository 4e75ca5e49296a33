package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fillercount/internal/services"
)

func TestCountTextOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sample", "sample:3:8", "missing"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	rule := strings.Repeat("-", 40)
	want := "sample:\n" +
		"\tFiller count:\t9\n" +
		"\tCanon count:\t11\n" +
		"\tTotal count:\t20\n" +
		rule + "\n\n" +
		"sample (episodes 3-8):\n" +
		"\tFiller count:\t4\n" +
		"\tCanon count:\t2\n" +
		"\tTotal count:\t6\n" +
		rule + "\n\n" +
		"Could not find 'missing'!\n" +
		rule + "\n\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestCountNormalizesTitles(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"Sample:10"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Sample (episodes 10+):\n")
	requireContains(t, out, "\tFiller count:\t3\n")
	requireContains(t, out, "\tCanon count:\t8\n")
}

func TestCountArgumentErrorSkipsFetch(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sample:10:5", "sample:1:2:3"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Error processing 'sample:10:5': invalid argument")
	requireContains(t, out, "Error processing 'sample:1:2:3': invalid argument")
	if hits := env.hits.Load(); hits != 0 {
		t.Fatalf("expected no requests for rejected arguments, got %d", hits)
	}
}

func TestCountFailOnError(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--fail-on-error", "missing", "sample"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when a show fails")
	}
	requireContains(t, err.Error(), "1 of 2 shows failed")
	requireContains(t, out, "Could not find 'missing'!")
	requireContains(t, out, "\tTotal count:\t20\n")
}

func TestCountStrictFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sloppy"}, env.configPath)
	if err != nil {
		t.Fatalf("lenient count: %v", err)
	}
	requireContains(t, out, "\tFiller count:\t4\n")

	out, _, err = runCLI(t, []string{"--strict", "sloppy"}, env.configPath)
	if err != nil {
		t.Fatalf("strict count: %v", err)
	}
	requireContains(t, out, "Error processing 'sloppy': format error")
}

func TestCountJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--format", "json", "sample:3:8", "missing", "sample:9:1"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	var items []outcomeJSON
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(items))
	}

	first := items[0]
	if first.Status != "ok" || first.Title != "Sample Filler List" || first.Bound != "3:8" {
		t.Fatalf("unexpected first outcome: %+v", first)
	}
	if first.Filler == nil || first.Filler.Episodes != "3-5, 7" || first.Filler.Count != 4 {
		t.Fatalf("unexpected filler: %+v", first.Filler)
	}
	if first.Total == nil || *first.Total != 6 {
		t.Fatalf("unexpected total: %v", first.Total)
	}
	if items[1].Status != "not_found" || items[1].Filler != nil {
		t.Fatalf("unexpected second outcome: %+v", items[1])
	}
	if items[2].Status != "argument_error" || items[2].Error == "" {
		t.Fatalf("unexpected third outcome: %+v", items[2])
	}
	if first.CorrelationID == "" || items[1].CorrelationID != first.CorrelationID {
		t.Fatalf("expected one correlation id per run: %q %q", first.CorrelationID, items[1].CorrelationID)
	}
}

func TestCountTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"-f", "table", "sample", "sloppy", "missing"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	for _, want := range []string{"SHOW", "EPISODES", "sample", "all", "20", "malformed filler list", "not_found"} {
		requireContains(t, out, want)
	}
}

func TestCountRejectsInvalidFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"--format", "yaml", "sample"}, env.configPath); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for unknown format, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"--log-level", "loud", "sample"}, env.configPath); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for unknown log level, got %v", err)
	}
	if hits := env.hits.Load(); hits != 0 {
		t.Fatalf("expected no requests, got %d", hits)
	}
}

func TestCountRequiresNames(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, nil, env.configPath); err == nil {
		t.Fatal("expected error without show names")
	}
}

func TestCountRejectsInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[source]\ntimeout_seconds = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"sample"}, path)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	requireContains(t, err.Error(), "source.timeout_seconds")
}

func TestCountLogsToCommandStderr(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, []string{"--log-level", "warn", "sloppy"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, stderr, "event_type=episode_text_malformed")
	requireContains(t, stderr, "show=sloppy")
	if strings.Contains(out, "episode_text_malformed") {
		t.Fatalf("logs must not reach stdout: %q", out)
	}
}

func TestCountShowNamedLikeSubcommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--", "config"}, env.configPath)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "Could not find 'config'!")
	if hits := env.hits.Load(); hits != 1 {
		t.Fatalf("expected one page request, got %d", hits)
	}
}
