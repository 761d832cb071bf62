// Package tui renders the volume overlay inside a Bubble Tea program. It
// is the thin terminal adapter behind the abstract display surface; the
// presentation logic itself lives in the hud package.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// partials are the eighth-block runes used for a segment's fractional fill.
var partials = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

const (
	fullCell  = '█'
	emptyCell = '░'
)

// RenderBar draws one row of fill segments across width columns. Each
// segment's fill fraction maps to whole block cells plus one eighth-block
// partial; the unlit remainder uses the track style. Spacing columns
// separate adjacent segments. Returns "" when nothing fits.
func RenderBar(levels []float64, width, spacing int, tint, track lipgloss.Style) string {
	count := len(levels)
	if count == 0 || width <= 0 {
		return ""
	}

	// Mirror of the geometric layout: margins swallow the spacing (or a
	// small default), segments share what remains.
	margin := spacing
	if margin <= 0 {
		margin = 1
	}
	cells := (width - 2*margin - count*spacing) / count
	if cells < 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", margin))
	for i, level := range levels {
		if i > 0 && spacing > 0 {
			b.WriteString(strings.Repeat(" ", spacing))
		}
		b.WriteString(renderSegment(level, cells, tint, track))
	}
	return b.String()
}

// renderSegment fills a single segment of the given cell width.
func renderSegment(level float64, cells int, tint, track lipgloss.Style) string {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	filled := level * float64(cells)
	full := int(filled)
	frac := filled - float64(full)

	var lit strings.Builder
	lit.WriteString(strings.Repeat(string(fullCell), full))
	rest := cells - full
	if rest > 0 {
		if idx := int(frac * 8); idx > 0 {
			lit.WriteRune(partials[idx])
			rest--
		}
	}

	out := tint.Render(lit.String())
	if rest > 0 {
		out += track.Render(strings.Repeat(string(emptyCell), rest))
	}
	return out
}
