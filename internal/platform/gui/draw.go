package gui

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {220, 220, 220, 255},
	core.ColorRed:          {220, 60, 60, 255},
	core.ColorGreen:        {60, 200, 90, 255},
	core.ColorYellow:       {230, 200, 60, 255},
	core.ColorBlue:         {70, 110, 230, 255},
	core.ColorMagenta:      {210, 80, 210, 255},
	core.ColorCyan:         {60, 200, 210, 255},
	core.ColorWhite:        {235, 235, 235, 255},
	core.ColorBrightRed:    {255, 90, 90, 255},
	core.ColorBrightGreen:  {120, 255, 140, 255},
	core.ColorBrightYellow: {255, 240, 90, 255},
	core.ColorBrightCyan:   {110, 240, 255, 255},
	core.ColorOrange:       {255, 150, 40, 255},
	core.ColorGray:         {140, 140, 150, 255},
}

// rgba maps a core color to its window color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

type star struct {
	x, y float32
	size float32
}

// newStarfield places a fixed set of stars; they scroll with the background.
func newStarfield(w, h int) []star {
	if w <= 0 || h <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(1)) //#nosec G404 -- decoration only
	stars := make([]star, 90)
	for i := range stars {
		stars[i] = star{
			x:    float32(rng.Intn(w)),
			y:    float32(rng.Intn(h)),
			size: float32(1 + rng.Intn(2)),
		}
	}
	return stars
}

// starY returns the on-screen row of a star for a background offset.
func starY(base float32, offset, fieldH int) float32 {
	if fieldH <= 0 {
		return base
	}
	y := (int(base) + offset) % fieldH
	if y < 0 {
		y += fieldH
	}
	return float32(y)
}

func drawStars(screen *ebiten.Image, stars []star, offset, fieldH int) {
	c := rgba(core.ColorStars)
	for _, s := range stars {
		vector.DrawFilledRect(screen, s.x, starY(s.y, offset, fieldH), s.size, s.size, c, false)
	}
}

func drawShip(screen *ebiten.Image, ship defender.ShipView) {
	c := rgba(core.ColorShip)
	if ship.Invincible {
		c = rgba(core.ColorWhite)
	}
	x, y := float32(ship.X), float32(ship.Y)
	w, h := float32(ship.W), float32(ship.H)

	// Banking shifts the nose toward the turn.
	noseX := x + w/2 - 4
	switch ship.Bank {
	case defender.BankLeft:
		noseX -= 8
	case defender.BankRight:
		noseX += 8
	}

	vector.DrawFilledRect(screen, x+w/2-8, y+h/4, 16, h*3/4, c, false)
	vector.DrawFilledRect(screen, noseX, y, 8, h/4+2, c, false)
	vector.DrawFilledRect(screen, x, y+h/2, w, h/5, c, false)
	vector.DrawFilledRect(screen, x+w/2-6, y+h-6, 12, 6, rgba(core.ColorOrange), false)
}

func drawEnemy(screen *ebiten.Image, e defender.EnemyView) {
	x, y, size := float32(e.X), float32(e.Y), float32(e.Size)
	switch e.Type {
	case defender.EnemyFast:
		vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/2, rgba(core.ColorFastEnemy), true)
	case defender.EnemyTank:
		vector.DrawFilledRect(screen, x, y, size, size, rgba(core.ColorTankEnemy), false)
		vector.StrokeRect(screen, x, y, size, size, 2, rgba(core.ColorRed), false)
		drawHealthBar(screen, x, y-6, size, e.Health, e.MaxHealth)
	default:
		vector.DrawFilledRect(screen, x, y, size, size, rgba(core.ColorBasicEnemy), false)
	}
}

func drawHealthBar(screen *ebiten.Image, x, y, w float32, value, max int) {
	if max <= 0 {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, 4, rgba(core.ColorRed), false)
	vector.DrawFilledRect(screen, x, y, w*float32(core.Clamp(value, 0, max))/float32(max), 4, rgba(core.ColorBrightGreen), false)
}

// hudLine formats the status line shown at the top of the window.
func hudLine(snap defender.Snapshot) string {
	lives := strings.Repeat("*", core.Max(snap.Ship.Health, 0))
	return fmt.Sprintf("%s  Score: %d  Level: %d  Kills: %d/%d  %s  Lives: %s",
		snap.PlayerName, snap.Score, snap.Level, snap.Defeated, snap.Required, snap.DifficultyLabel, lives)
}

func drawHUD(screen *ebiten.Image, snap defender.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.FieldW), glyphH+4, color.RGBA{0, 0, 0, 160}, false)
	debugText(screen, hudLine(snap), 6, 2)
}

// centeredX returns the x that centers text of n glyphs on the field.
func centeredX(fieldW int, text string) int {
	return (fieldW - len([]rune(text))*glyphW) / 2
}

func drawPanel(screen *ebiten.Image, snap defender.Snapshot, title, hint string) {
	w, h := float32(280), float32(70)
	x := (float32(snap.FieldW) - w) / 2
	y := (float32(snap.FieldH) - h) / 2
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 190}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, rgba(core.ColorBanner), false)
	debugText(screen, title, centeredX(snap.FieldW, title), int(y)+16)
	debugText(screen, hint, centeredX(snap.FieldW, hint), int(y)+38)
}

// bannerTitle announces the level that starts when the transition ends.
func bannerTitle(snap defender.Snapshot) string {
	return fmt.Sprintf("LEVEL %d!", snap.NextLevel())
}

// gameOverLines returns the text of the game-over panel.
func gameOverLines(snap defender.Snapshot, board []storage.ResultEntry) []string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d  Level: %d", snap.Score, snap.Level),
		"",
		"High Scores",
	}
	for i := 0; i < boardSize; i++ {
		if i < len(board) {
			lines = append(lines, fmt.Sprintf("%d. %-16s %7d", i+1, board[i].PlayerName, board[i].Score))
		} else {
			lines = append(lines, fmt.Sprintf("%d. ---", i+1))
		}
	}
	return append(lines, "", "Press R to play again, Esc to quit")
}

func drawGameOver(screen *ebiten.Image, snap defender.Snapshot, board []storage.ResultEntry) {
	lines := gameOverLines(snap, board)
	w := float32(360)
	h := float32(len(lines)*glyphH + 24)
	x := (float32(snap.FieldW) - w) / 2
	y := (float32(snap.FieldH) - h) / 2

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 210}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, rgba(core.ColorBrightRed), false)
	for i, line := range lines {
		debugText(screen, line, centeredX(snap.FieldW, line), int(y)+12+i*glyphH)
	}
}
