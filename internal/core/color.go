package core

// Color is a foreground color for a screen cell.
// Frontends map it to ANSI codes or RGBA values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Colors used for the entities of the field.
const (
	ColorShip       = ColorBrightCyan
	ColorShot       = ColorBrightYellow
	ColorBasicEnemy = ColorRed
	ColorFastEnemy  = ColorMagenta
	ColorTankEnemy  = ColorOrange
	ColorStars      = ColorGray
	ColorHUD        = ColorWhite
	ColorBanner     = ColorYellow
)
