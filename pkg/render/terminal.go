package render

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalSize returns the buffer dimensions that exactly fill a terminal
// of cols x rows cells. Each cell shows two vertically stacked pixels.
func TerminalSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// CellSetter is the part of a terminal screen Draw writes to. Both
// uv.Screen and *uv.Terminal satisfy it.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// Draw presents the color buffer on a terminal screen using upper
// half-block cells: the foreground carries the top pixel and the
// background the bottom one. The buffer must match the area exactly (see
// TerminalSize); otherwise nothing is drawn and ErrSizeMismatch is
// returned so the caller can drop the frame.
func (b *PaintBuffer) Draw(scr CellSetter, area uv.Rectangle) error {
	cols := area.Max.X - area.Min.X
	rows := area.Max.Y - area.Min.Y
	if w, h := TerminalSize(cols, rows); !b.SameSize(w, h) {
		return fmt.Errorf("%w: area %dx%d cells needs %dx%d pixels, frame is %dx%d",
			ErrSizeMismatch, cols, rows, w, h, b.Width, b.Height)
	}

	for row := range rows {
		top := row * 2 * b.Width
		bot := top + b.Width
		for col := range cols {
			scr.SetCell(area.Min.X+col, area.Min.Y+row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: ToRGBA(b.Color[top+col]),
					Bg: ToRGBA(b.Color[bot+col]),
				},
			})
		}
	}
	return nil
}
