package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const samplePage = `<html><body>
<h1>Sample Filler List</h1>
<div class="manga_canon"><span class="Label">Manga Canon Episodes:</span><span class="Episodes"><a>1-4</a></span></div>
<div class="filler"><span class="Label">Filler Episodes:</span><span class="Episodes"><a>1-5</a>, <a>7</a>, <a>10-12</a></span></div>
<div class="canon"><span class="Label">Canon Episodes:</span><span class="Episodes"><a>6</a>, <a>8-9</a>, <a>13-20</a></span></div>
</body></html>`

const sloppyPage = `<html><body>
<h1>Sloppy Filler List</h1>
<div class="filler"><span class="Episodes">1-3 , 5</span></div>
<div class="canon"><span class="Episodes">4</span></div>
</body></html>`

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	hits       atomic.Int32
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	env := &cliTestEnv{}
	pages := map[string]string{
		"/shows/sample": samplePage,
		"/shows/sloppy": sloppyPage,
	}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hits.Add(1)
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
	t.Cleanup(env.server.Close)

	env.configPath = filepath.Join(t.TempDir(), "config.toml")
	writeTestConfig(t, env.configPath, env.server.URL+"/shows")
	return env
}

func writeTestConfig(t *testing.T, path, baseURL string) {
	t.Helper()
	content := fmt.Sprintf(
		"[source]\nbase_url = %q\ntimeout_seconds = 5\n\n[output]\ncolor = \"never\"\n\n[logging]\nlevel = \"error\"\n",
		baseURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
