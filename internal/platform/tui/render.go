package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

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
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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

// hudRows is the number of rows above the playfield.
const hudRows = 1

// Minimum terminal size that still shows a playable field.
const (
	MinCols = 40
	MinRows = 16
)

// DrawSnapshot paints a session onto the screen: HUD on the first row and
// the scaled playfield below it. board is shown on the game-over overlay.
func DrawSnapshot(s *core.Screen, snap defender.Snapshot, board []storage.ResultEntry) {
	s.Clear()
	cols, rows := s.Width(), s.Height()-hudRows
	if s.Width() < MinCols || s.Height() < MinRows {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small (%dx%d)", MinCols, MinRows), core.ColorBrightRed)
		return
	}

	drawHUD(s, snap)

	field := func(r core.Rect) core.Rect {
		out := r.Scale(snap.FieldW, snap.FieldH, cols, rows)
		out.Y += hudRows
		return out
	}

	drawStars(s, snap, cols, rows)

	for _, e := range snap.Enemies {
		drawEnemy(s, e, field(core.NewRect(e.X, e.Y, e.Size, e.Size)))
	}
	for _, sh := range snap.Shots {
		r := field(core.NewRect(sh.X, sh.Y, sh.W, sh.H))
		s.DrawRect(r, '|', core.ColorShot)
	}
	if !snap.Ship.Blink {
		drawShip(s, snap.Ship, field(core.NewRect(snap.Ship.X, snap.Ship.Y, snap.Ship.W, snap.Ship.H)))
	}

	switch {
	case snap.State == defender.StateGameOver:
		drawGameOver(s, snap, board)
	case snap.State == defender.StatePaused:
		drawPaused(s)
	case snap.InTransition():
		drawBanner(s, snap)
	}
}

func drawHUD(s *core.Screen, snap defender.Snapshot) {
	left := fmt.Sprintf(" %s  Score: %d  Level: %d  Kills: %d/%d  %s",
		snap.PlayerName, snap.Score, snap.Level, snap.Defeated, snap.Required, snap.DifficultyLabel)
	s.DrawText(0, 0, left, core.ColorHUD)

	lives := strings.Repeat("♥", core.Max(snap.Ship.Health, 0)) +
		strings.Repeat("♡", core.Max(snap.Ship.MaxHealth-snap.Ship.Health, 0))
	x := s.Width() - len([]rune(lives)) - 1
	s.DrawText(x, 0, lives, core.ColorBrightRed)
}

// drawStars draws a sparse starfield that scrolls with the background offset.
func drawStars(s *core.Screen, snap defender.Snapshot, cols, rows int) {
	if snap.FieldH <= 0 {
		return
	}
	shift := snap.Background * rows / snap.FieldH
	for y := 0; y < rows; y++ {
		fy := ((y-shift)%rows + rows) % rows
		for x := 0; x < cols; x++ {
			if (x*7+fy*13)%53 == 0 {
				s.SetColored(x, y+hudRows, '.', core.ColorStars)
			}
		}
	}
}

func drawShip(s *core.Screen, ship defender.ShipView, r core.Rect) {
	color := core.ColorShip
	if ship.Invincible {
		color = core.ColorWhite
	}

	nose := '^'
	switch ship.Bank {
	case defender.BankLeft:
		nose = '<'
	case defender.BankRight:
		nose = '>'
	}

	s.DrawRect(r, '█', color)
	s.SetColored(r.CenterX(), r.Y, nose, color)
}

func drawEnemy(s *core.Screen, e defender.EnemyView, r core.Rect) {
	switch e.Type {
	case defender.EnemyFast:
		s.DrawRect(r, '▼', core.ColorFastEnemy)
	case defender.EnemyTank:
		s.DrawRect(r, '▓', core.ColorTankEnemy)
		if e.Health < e.MaxHealth && r.Y > hudRows {
			s.DrawBar(r.X, r.Y-1, r.W, e.Health, e.MaxHealth, core.ColorBrightGreen, core.ColorRed)
		}
	default:
		s.DrawRect(r, '▒', core.ColorBasicEnemy)
	}
}

func drawBanner(s *core.Screen, snap defender.Snapshot) {
	y := s.Height() / 2
	s.DrawTextCentered(y, fmt.Sprintf("  LEVEL %d!  ", snap.NextLevel()), core.ColorBanner)
	s.DrawTextCentered(y+1, "  Get ready...  ", core.ColorHUD)
}

func drawPaused(s *core.Screen) {
	y := s.Height() / 2
	s.DrawTextCentered(y, "  PAUSED  ", core.ColorBanner)
	s.DrawTextCentered(y+1, "  Press P to resume  ", core.ColorHUD)
}

// boardSize is the number of results listed on the game-over overlay.
const boardSize = 5

func drawGameOver(s *core.Screen, snap defender.Snapshot, board []storage.ResultEntry) {
	w := core.Clamp(44, 20, s.Width()-2)
	h := 8 + boardSize
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawBox(box, core.ColorBrightRed)

	y := box.Y + 1
	s.DrawTextCentered(y, "GAME OVER", core.ColorBrightRed)
	s.DrawTextCentered(y+1, fmt.Sprintf("Final score: %d  Level: %d", snap.Score, snap.Level), core.ColorHUD)
	s.DrawTextCentered(y+3, "High Scores", core.ColorBanner)

	for i := 0; i < boardSize; i++ {
		line := fmt.Sprintf("%d. ---", i+1)
		if i < len(board) {
			line = fmt.Sprintf("%d. %-16s %7d", i+1, truncate(board[i].PlayerName, 16), board[i].Score)
		}
		s.DrawTextCentered(y+4+i, line, core.ColorHUD)
	}
	s.DrawTextCentered(box.Bottom()-2, "Press R to return to menu", core.ColorGray)
}

// truncate shortens text to at most n runes.
func truncate(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n])
}
