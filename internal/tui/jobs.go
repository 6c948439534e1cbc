package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/numeral/internal/convert"
)

var errNoClient = errors.New("no conversion client configured")

type conversionResultMsg struct {
	generation uint64
	output     string
	err        error
}

// conversionJob runs req on a bubbletea goroutine. A panicking client is
// reported as a failed conversion instead of tearing down the program.
func conversionJob(client convert.Client, req Request) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = conversionResultMsg{
					generation: req.Generation,
					err:        fmt.Errorf("conversion client panicked: %v", r),
				}
			}
		}()
		if client == nil {
			return conversionResultMsg{generation: req.Generation, err: errNoClient}
		}
		output, err := client.Convert(context.Background(), req.N)
		return conversionResultMsg{generation: req.Generation, output: output, err: err}
	}
}
