package tui

type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

const (
	headingText      = "Roman numeral convertor"
	inputLabel       = "Enter a number"
	inputPlaceholder = "1-3999"
	buttonLabel      = "Convert to roman numeral"
	resultLabel      = "Roman numeral:"
	pendingText      = "Converting…"
	toggleLabel      = "Toggle Color Scheme"
)

const (
	inputWidth     = 24
	minWrapWidth   = 40
	defaultWidth   = 80
)
