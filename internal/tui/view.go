package tui

import (
	"fmt"
	"strings"
)

func (m *model) View() string {
	st := stylesFor(m.state.Theme)
	return joinNonEmpty([]string{
		st.heroBox.Render(st.heading.Render(headingText)),
		m.fieldView(st),
		m.buttonView(st),
		m.resultView(st),
		m.footerView(st),
	})
}

func (m *model) fieldView(st styles) string {
	box := st.fieldBox
	if m.focus == focusInput {
		box = st.fieldFocused
	}
	parts := []string{st.label.Render(inputLabel), box.Render(m.input.View())}
	if m.state.ShowInlineError() {
		parts = append(parts, st.inlineError.Render(m.layout.wrap(m.state.Validation.Message())))
	}
	return strings.Join(parts, "\n")
}

func (m *model) buttonView(st styles) string {
	if m.focus == focusButton {
		return st.buttonFocused.Render(buttonLabel)
	}
	return st.button.Render(buttonLabel)
}

// resultView reflects the conversion outcome only; validation errors are
// rendered next to the field.
func (m *model) resultView(st styles) string {
	conv := m.state.Conversion
	switch conv.Status {
	case StatusPending:
		return fmt.Sprintf("%s %s %s", st.resultLabel.Render(resultLabel), m.spinner.View(), st.helper.Render(pendingText))
	case StatusSuccess:
		return fmt.Sprintf("%s %s", st.resultLabel.Render(resultLabel), st.resultText.Render(conv.Text))
	case StatusFailure:
		return joinNonEmpty([]string{
			st.resultLabel.Render(resultLabel),
			st.failure.Render(m.layout.wrap(conv.Message)),
		})
	default:
		return st.resultLabel.Render(resultLabel)
	}
}

func (m *model) footerView(st styles) string {
	keys := []struct{ key, desc string }{
		{"enter", "convert"},
		{"tab", "focus"},
		{"ctrl+t", fmt.Sprintf("%s (%s)", toggleLabel, m.state.Theme)},
		{"esc", "quit"},
	}
	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, fmt.Sprintf("%s %s", st.key.Render(k.key), st.helper.Render(k.desc)))
	}
	return strings.Join(items, "  ")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
