package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45% from a 0..100
// percentage. The bar is green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	frac := clampFrac(pct / 100)
	bar := bar(frac, width)

	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), frac*100)
}

// RenderCompactBar renders a bare bar from a 0..1 fraction. Dimmed bars are
// used for inactive rows.
func RenderCompactBar(frac float64, width int, dim bool) string {
	frac = clampFrac(frac)
	style := StyleBlue
	if dim {
		style = StyleDim
	}
	return style.Render(bar(frac, width))
}

func bar(frac float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampFrac(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
