package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/csheth/numeral/internal/tuitest"
)

func TestFormConvertsAgainstService(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	var (
		mu      sync.Mutex
		queries []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Query().Get("query"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"X"}`))
	}))
	t.Cleanup(srv.Close)

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--theme", "dark", "--endpoint", srv.URL + "/romannumeral"},
		Dir:     cmdDir,
		Width:   100,
		Height:  30,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			tuitest.Type(0, "10"),
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyEnter},
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if !rec.Contains("Roman numeral: X") {
		t.Fatalf("result never drawn\n%s", rec.Plain())
	}
	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 1 || queries[0] != "10" {
		t.Fatalf("unexpected service queries: %v", queries)
	}
}

func TestFormShowsInlineErrorWithoutCallingService(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--theme", "light", "--endpoint", srv.URL + "/romannumeral"},
		Dir:     cmdDir,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			tuitest.Type(0, "4000"),
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyEnter},
			{Delay: 500 * time.Millisecond},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if !rec.Contains("Value must not exceed 3999.") {
		t.Fatalf("inline error never drawn\n%s", rec.Plain())
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("service called %d times for invalid input", n)
	}
}

func TestConvertSubcommandAgainstLocalService(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") != "1994" {
			http.Error(w, "unexpected", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"input":"1994","output":"MCMXCIV"}`))
	}))
	t.Cleanup(srv.Close)

	cmd := exec.Command(binary, "convert", "1994", "--endpoint", srv.URL+"/romannumeral")
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("convert: %v\n%s", err, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "MCMXCIV" {
		t.Fatalf("convert output mismatch: got %q", got)
	}

	cmd = exec.Command(binary, "convert", "0", "--endpoint", srv.URL+"/romannumeral")
	stderr.Reset()
	cmd.Stderr = &stderr
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected non-zero exit for 0")
	}
	if !strings.Contains(stderr.String(), "Roman numerals do not support negative numbers or zero.") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "numeral-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
