package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
)

// Visual characters for rendering
const (
	VehicleChar     = '█'
	CollectibleChar = '●'
	HazardChar      = '▓'
	DividerChar     = '┆'
	EdgeChar        = '│'
)

// roadDashPeriod is the dash cycle length in simulation units.
const roadDashPeriod = 40.0

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawSnapshot renders a simulation snapshot into the screen buffer,
// scaling simulation units to screen cells.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if snap.ArenaW <= 0 || snap.ArenaH <= 0 || w <= 0 || h <= 0 {
		return
	}

	scaleX := func(x float64) int { return int(x / snap.ArenaW * float64(w)) }
	scaleY := func(y float64) int { return int(y / snap.ArenaH * float64(h)) }

	drawRoad(dst, snap, h, w)

	for _, o := range snap.Obstacles {
		x, y := scaleX(o.X), scaleY(o.Y)
		if o.Kind == game.KindCollectible {
			dst.SetColored(x, y, CollectibleChar, core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, HazardChar, core.ColorBrightRed)
		}
	}

	for _, v := range snap.Vehicles {
		x, y := scaleX(v.X), scaleY(v.Y)
		color := core.ColorCyan
		if v.Side == game.SideRight {
			color = core.ColorYellow
		}
		dst.SetColored(x-1, y, VehicleChar, color)
		dst.SetColored(x, y, VehicleChar, color)
		dst.SetColored(x+1, y, VehicleChar, color)
	}

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawRoad draws the arena edges and the scrolling dashed lane dividers.
func drawRoad(dst *core.Screen, snap game.Snapshot, h, w int) {
	dst.DrawVLine(0, 0, h, EdgeChar)
	dst.DrawVLine(w-1, 0, h, EdgeChar)

	// One divider per side plus the center line, all scrolling with the
	// road dash offset.
	columns := []int{w / 4, w / 2, 3 * w / 4}
	for y := 0; y < h; y++ {
		simY := float64(y) / float64(h) * snap.ArenaH
		phase := math.Mod(simY-snap.RoadDashOffset, roadDashPeriod)
		if phase < 0 {
			phase += roadDashPeriod
		}
		if phase < roadDashPeriod/2 {
			for _, x := range columns {
				dst.SetColored(x, y, DividerChar, core.ColorGray)
			}
		}
	}
}

// drawHUD draws the score line along the top edge.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.BestScore)
	dst.DrawText(2, 0, scoreText)

	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
