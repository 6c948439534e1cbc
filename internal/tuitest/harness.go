// Package tuitest drives a terminal program inside a pseudo terminal and
// records what it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultCols    = 100
	defaultRows    = 30
	defaultTimeout = 5 * time.Second
)

// Step is one scripted interaction: wait Delay, then type Input.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Type is shorthand for a Step that types text after delay.
func Type(delay time.Duration, text string) Step {
	return Step{Delay: delay, Input: []byte(text)}
}

// Config describes the program to launch and the script to replay.
type Config struct {
	Command        []string
	Dir            string
	Env            []string
	Width          int
	Height         int
	Steps          []Step
	Timeout        time.Duration
	AllowInterrupt bool
}

// Recording is the raw terminal stream written by the program.
type Recording struct {
	Raw      []byte
	Duration time.Duration
}

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

// Plain returns the recorded output with escape sequences and carriage
// returns removed.
func (r *Recording) Plain() string {
	if r == nil {
		return ""
	}
	s := oscPattern.ReplaceAllString(string(r.Raw), "")
	s = csiPattern.ReplaceAllString(s, "")
	return strings.NewReplacer("\r", "", "\x0e", "", "\x0f", "").Replace(s)
}

// Contains reports whether text was drawn at any point of the session.
func (r *Recording) Contains(text string) bool {
	return strings.Contains(r.Plain(), text)
}

// Run starts cfg.Command in a PTY, replays cfg.Steps and waits for the
// program to exit.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cols, rows, timeout := cfg.Width, cfg.Height, cfg.Timeout
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	term, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = term.Close() }()

	var (
		mu  sync.Mutex
		out bytes.Buffer
	)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		responder := newResponder(term)
		buf := make([]byte, 4096)
		for {
			n, readErr := term.Read(buf)
			if n > 0 {
				responder.feed(buf[:n])
				mu.Lock()
				out.Write(buf[:n])
				mu.Unlock()
			}
			if readErr != nil {
				return
			}
		}
	}()

	start := time.Now()
	for _, step := range cfg.Steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := term.Write(step.Input); err != nil {
			return nil, fmt.Errorf("tuitest: write input: %w", err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case err := <-exited:
		if err != nil && !acceptableExit(err, cfg.AllowInterrupt) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	_ = term.Close()
	<-drained

	mu.Lock()
	defer mu.Unlock()
	return &Recording{Raw: append([]byte(nil), out.Bytes()...), Duration: time.Since(start)}, nil
}

func acceptableExit(err error, allowInterrupt bool) bool {
	return allowInterrupt && strings.Contains(err.Error(), "signal: interrupt")
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// Common key sequences.
var (
	KeyEnter = []byte{'\r'}
	KeyTab   = []byte{'\t'}
	KeyCtrlC = []byte{0x03}
	KeyCtrlT = []byte{0x14}
	KeyEsc   = []byte{0x1b}
)
