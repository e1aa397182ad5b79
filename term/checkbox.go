package term

import (
	"github.com/gdamore/tcell/v2"
)

const checkboxLabel = "dark"

// Checkbox is the "[x] dark" control drawn in the top right corner
type Checkbox struct {
	checked  bool
	handlers []func()
	col, row int
}

// NewCheckbox creates an unchecked checkbox
func NewCheckbox() *Checkbox {
	return &Checkbox{}
}

func (b *Checkbox) Checked() bool           { return b.checked }
func (b *Checkbox) SetChecked(checked bool) { b.checked = checked }
func (b *Checkbox) OnChange(fn func())      { b.handlers = append(b.handlers, fn) }

// Activate flips the box as a user interaction would and notifies handlers
func (b *Checkbox) Activate() {
	b.checked = !b.checked
	for _, fn := range b.handlers {
		fn()
	}
}

func (b *Checkbox) text() string {
	if b.checked {
		return "[x] " + checkboxLabel
	}
	return "[ ] " + checkboxLabel
}

// Place anchors the checkbox to the top right of a cols wide screen
func (b *Checkbox) Place(cols int) {
	b.col = cols - len(b.text()) - 1
	if b.col < 0 {
		b.col = 0
	}
	b.row = 0
}

// Contains reports whether the cell lies on the checkbox
func (b *Checkbox) Contains(col, row int) bool {
	return row == b.row && col >= b.col && col < b.col+len(b.text())
}

// Draw writes the checkbox onto screen
func (b *Checkbox) Draw(screen tcell.Screen, style tcell.Style) {
	cols, _ := screen.Size()
	b.Place(cols)
	for i, r := range b.text() {
		screen.SetContent(b.col+i, b.row, r, nil, style)
	}
}
