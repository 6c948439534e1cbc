package tuitest

import (
	"bytes"
	"io"
)

// Queries a TUI sends while probing the terminal, with the answers a dark
// xterm would give.
var terminalReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// responder answers terminal queries so programs that probe the terminal
// do not stall waiting for a reply.
type responder struct {
	w       io.Writer
	pending []byte
}

func newResponder(w io.Writer) *responder {
	return &responder{w: w}
}

func (r *responder) feed(chunk []byte) {
	r.pending = append(r.pending, chunk...)
	for r.answerOne() {
	}
	// Queries may straddle reads; keep a short tail.
	if len(r.pending) > 256 {
		r.pending = r.pending[len(r.pending)-64:]
	}
}

// answerOne replies to the earliest query in pending and drops everything up
// to its end.
func (r *responder) answerOne() bool {
	first, match := -1, -1
	for i, q := range terminalReplies {
		if idx := bytes.Index(r.pending, q.query); idx >= 0 && (first < 0 || idx < first) {
			first, match = idx, i
		}
	}
	if match < 0 {
		return false
	}
	q := terminalReplies[match]
	r.pending = r.pending[first+len(q.query):]
	_, _ = r.w.Write(q.reply)
	return true
}
