package tui

import "github.com/muesli/reflow/wordwrap"

const wrapPadding = 4

type pageLayout struct {
	windowWidth  int
	windowHeight int
	wrapWidth    int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(defaultWidth, 0)
	return l
}

func (l *pageLayout) Update(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	l.windowWidth = width
	l.windowHeight = height
	l.wrapWidth = width - wrapPadding
	if l.wrapWidth < minWrapWidth {
		l.wrapWidth = minWrapWidth
	}
}

// wrap breaks messages so they stay readable in narrow terminals.
func (l pageLayout) wrap(text string) string {
	return wordwrap.String(text, l.wrapWidth)
}
