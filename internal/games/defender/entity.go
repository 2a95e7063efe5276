package defender

import (
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Ship geometry and vitals.
const (
	ShipWidth           = 50
	ShipHeight          = 60
	ShipStartX          = 380
	ShipStartY          = 450
	MaxHealth           = 3
	InvincibilityWindow = 2000 * time.Millisecond
)

// Projectile geometry.
const (
	ShotWidth  = 5
	ShotHeight = 15
	ShotSpeed  = 10
)

// Enemy spawn placement.
const (
	EnemySpawnY      = -50
	EnemySpawnMargin = 50 // Spawn x is drawn from [0, fieldW-EnemySpawnMargin)
)

// ShipClass selects the speed and fire rate of the player ship.
type ShipClass int

const (
	ShipStandard    ShipClass = iota // Standard Fighter
	ShipInterceptor                  // Fast Interceptor
	ShipCruiser                      // Heavy Cruiser
)

type shipStats struct {
	name     string
	speed    int
	cooldown time.Duration
}

// The cruiser really does fire fastest.
var shipTable = [...]shipStats{
	ShipStandard:    {"Standard Fighter", 5, 300 * time.Millisecond},
	ShipInterceptor: {"Fast Interceptor", 7, 500 * time.Millisecond},
	ShipCruiser:     {"Heavy Cruiser", 3, 150 * time.Millisecond},
}

// ShipClasses lists the selectable classes in menu order.
func ShipClasses() []ShipClass {
	return []ShipClass{ShipStandard, ShipInterceptor, ShipCruiser}
}

// Valid reports whether c names a known class.
func (c ShipClass) Valid() bool {
	return c >= ShipStandard && c <= ShipCruiser
}

// Normalize maps unknown classes to ShipStandard.
func (c ShipClass) Normalize() ShipClass {
	if !c.Valid() {
		return ShipStandard
	}
	return c
}

func (c ShipClass) stats() shipStats {
	return shipTable[c.Normalize()]
}

// Speed returns pixels moved per tick per held direction.
func (c ShipClass) Speed() int {
	return c.stats().speed
}

// Cooldown returns the minimum time between two shots.
func (c ShipClass) Cooldown() time.Duration {
	return c.stats().cooldown
}

// String returns the display name of the class.
func (c ShipClass) String() string {
	return c.stats().name
}

// Direction is a bit set of held movement directions.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

// directionFor maps a movement action to its direction bit.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionMoveLeft:
		return DirLeft, true
	case core.ActionMoveRight:
		return DirRight, true
	case core.ActionMoveUp:
		return DirUp, true
	case core.ActionMoveDown:
		return DirDown, true
	}
	return 0, false
}

// Bank is the sprite frame implied by the held directions.
type Bank int

const (
	BankLevel Bank = iota
	BankRight
	BankLeft
)

// Player is the ship controlled by the user.
type Player struct {
	X, Y   int
	Health int
	Class  ShipClass

	held            Direction
	maxX, maxY      int
	lastShot        time.Duration
	hasShot         bool
	invincible      bool
	invincibleUntil time.Duration
}

// NewPlayer places a fresh ship at the start position of a fieldW x fieldH field.
func NewPlayer(class ShipClass, fieldW, fieldH int) *Player {
	p := &Player{
		Health: MaxHealth,
		Class:  class.Normalize(),
		maxX:   core.Max(0, fieldW-ShipWidth),
		maxY:   core.Max(0, fieldH-ShipHeight),
	}
	p.X = core.Clamp(ShipStartX, 0, p.maxX)
	p.Y = core.Clamp(ShipStartY, 0, p.maxY)
	return p
}

// Press adds a direction to the held set.
func (p *Player) Press(d Direction) {
	p.held |= d
}

// Release removes a direction from the held set.
func (p *Player) Release(d Direction) {
	p.held &^= d
}

// Held returns the currently held directions.
func (p *Player) Held() Direction {
	return p.held
}

// Bank returns the sprite frame for the held directions. Left wins over right.
func (p *Player) Bank() Bank {
	switch {
	case p.held&DirLeft != 0:
		return BankLeft
	case p.held&DirRight != 0:
		return BankRight
	default:
		return BankLevel
	}
}

// Update expires invincibility and moves the ship along every held axis.
// Diagonals are not normalized.
func (p *Player) Update(now time.Duration) {
	if p.invincible && now > p.invincibleUntil {
		p.invincible = false
	}

	speed := p.Class.Speed()
	if p.held&DirLeft != 0 {
		p.X -= speed
	}
	if p.held&DirRight != 0 {
		p.X += speed
	}
	if p.held&DirUp != 0 {
		p.Y -= speed
	}
	if p.held&DirDown != 0 {
		p.Y += speed
	}
	p.X = core.Clamp(p.X, 0, p.maxX)
	p.Y = core.Clamp(p.Y, 0, p.maxY)
}

// CanShoot reports whether the cooldown since the last shot has strictly elapsed.
func (p *Player) CanShoot(now time.Duration) bool {
	if !p.hasShot {
		return true
	}
	return now-p.lastShot > p.Class.Cooldown()
}

// Shoot records the shot time and returns the spawn point of the projectile.
func (p *Player) Shoot(now time.Duration) (x, y int) {
	p.lastShot = now
	p.hasShot = true
	return p.CenterX(), p.Y
}

// TakeDamage removes one health point and arms the invincibility window.
// It is a no-op while invincible and reports whether damage was applied.
func (p *Player) TakeDamage(now time.Duration) bool {
	if p.invincible {
		return false
	}
	p.Health--
	p.invincible = true
	p.invincibleUntil = now + InvincibilityWindow
	return true
}

// Invincible reports whether damage is currently suppressed.
func (p *Player) Invincible() bool {
	return p.invincible
}

// InvincibleUntil returns the expiry of the current invincibility window.
func (p *Player) InvincibleUntil() time.Duration {
	return p.invincibleUntil
}

// Hitbox returns the ship's collision rectangle.
func (p *Player) Hitbox() core.Rect {
	return core.NewRect(p.X, p.Y, ShipWidth, ShipHeight)
}

// CenterX returns the horizontal midpoint of the ship.
func (p *Player) CenterX() int {
	return p.X + ShipWidth/2
}

// EnemyType selects the size, speed, toughness and bounty of an enemy.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank
)

type enemyStats struct {
	name        string
	size        int
	speedOffset int
	health      int
	points      int
}

var enemyTable = [...]enemyStats{
	EnemyBasic: {"basic", 40, 0, 1, 10},
	EnemyFast:  {"fast", 30, 2, 1, 15},
	EnemyTank:  {"tank", 50, -1, 3, 30},
}

// EnemyTypes lists every enemy type; spawns draw uniformly from it.
func EnemyTypes() []EnemyType {
	return []EnemyType{EnemyBasic, EnemyFast, EnemyTank}
}

func (t EnemyType) stats() enemyStats {
	if t < EnemyBasic || t > EnemyTank {
		return enemyTable[EnemyBasic]
	}
	return enemyTable[t]
}

// Points returns the score awarded for destroying an enemy of this type.
func (t EnemyType) Points() int {
	return t.stats().points
}

// String returns the type name.
func (t EnemyType) String() string {
	return t.stats().name
}

// Enemy is a falling hostile.
type Enemy struct {
	X, Y      int
	Size      int
	Speed     int
	Type      EnemyType
	Health    int
	MaxHealth int
	Alive     bool
}

// NewEnemy creates an enemy whose speed is baseSpeed adjusted by its type.
func NewEnemy(x, y, baseSpeed int, t EnemyType) *Enemy {
	st := t.stats()
	if t < EnemyBasic || t > EnemyTank {
		t = EnemyBasic
	}
	return &Enemy{
		X:         x,
		Y:         y,
		Size:      st.size,
		Speed:     baseSpeed + st.speedOffset,
		Type:      t,
		Health:    st.health,
		MaxHealth: st.health,
		Alive:     true,
	}
}

// Update moves the enemy down by its own speed plus the field scroll.
func (e *Enemy) Update(scroll int) {
	e.Y += e.Speed + scroll
}

// OutOfScreen reports whether the enemy has fallen past the bottom edge.
func (e *Enemy) OutOfScreen(fieldH int) bool {
	return e.Y > fieldH
}

// TakeDamage subtracts n health and reports whether this call killed the enemy.
// Dead enemies ignore further damage.
func (e *Enemy) TakeDamage(n int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// Hitbox returns the enemy's collision rectangle.
func (e *Enemy) Hitbox() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// Projectile is a player shot travelling upward.
type Projectile struct {
	X, Y   int
	Active bool
}

// NewProjectile creates a shot centered on startX.
func NewProjectile(startX, startY int) *Projectile {
	return &Projectile{
		X:      startX - ShotWidth/2,
		Y:      startY,
		Active: true,
	}
}

// Update moves the shot up and retires it once it leaves the top edge.
func (s *Projectile) Update() {
	if !s.Active {
		return
	}
	s.Y -= ShotSpeed
	if s.Y < 0 {
		s.Active = false
	}
}

// Deactivate retires the shot. It is never reactivated.
func (s *Projectile) Deactivate() {
	s.Active = false
}

// Hitbox returns the shot's collision rectangle.
func (s *Projectile) Hitbox() core.Rect {
	return core.NewRect(s.X, s.Y, ShotWidth, ShotHeight)
}
