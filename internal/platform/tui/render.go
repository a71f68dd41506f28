package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skytype/internal/core"
)

// screenColors are the terminal colors behind each screen color. The
// light variants keep white text and faded glyphs readable on light
// backgrounds.
var screenColors = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.AdaptiveColor{Light: "0", Dark: "7"},
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.AdaptiveColor{Light: "136", Dark: "11"},
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.AdaptiveColor{Light: "0", Dark: "15"},
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.AdaptiveColor{Light: "248", Dark: "243"},
}

// Bright yellow marks the letter to type next and bright white the
// aircraft letters, so both are bold.
var boldColors = map[core.Color]bool{
	core.ColorBrightYellow: true,
	core.ColorBrightWhite:  true,
}

// Palette holds the cell styles for one output. Each SSH session gets its
// own, built from the client's terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds the styles against r. A nil r uses the local terminal.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style, len(screenColors)),
		plain:  r.NewStyle(),
	}
	for c, tc := range screenColors {
		p.styles[c] = r.NewStyle().Foreground(tc).Bold(boldColors[c])
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of one color share an escape sequence. Blank cells carry no
// foreground, so they are written bare whatever their color and trailing
// blanks are dropped: most of the sky costs no escapes at all.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		end := s.Width()
		for end > 0 && s.GetCell(end-1, y).Rune == ' ' {
			end--
		}

		x := 0
		for x < end {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' {
				sb.WriteRune(' ')
				x++
				continue
			}

			color := cell.Color
			run.Reset()
			for x < end {
				cell = s.GetCell(x, y)
				if cell.Rune != ' ' && cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
