package squares

import "github.com/TheBitDrifter/ledger"

// Component kinds
const (
	KindPosition ledger.Kind = iota
	KindVelocity
	KindGfx
	KindColor
	KindTransform
	KindAnimation
)

// System ids, in update order
const (
	SysMovement ledger.SystemID = iota
	SysRotation
	SysScaling
	SysVisibility
	SysEntityManager
	SysAnimation
)

type Colors int

const (
	Red Colors = iota
	Blue
	Yellow
	Flashing
)

func (c Colors) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Flashing:
		return "flashing"
	}
	return "unknown"
}

type Vector2 struct {
	X, Y float64
}

type Color struct {
	Color Colors
}

type Transform struct {
	Angle int
	Scale float64
}

// Animation cycles a sprite through tiles First..Last, holding each tile for
// animationDelay frames.
type Animation struct {
	First, Last int
	Curr, Timer int
}

// Gfx owns a sprite for as long as the entity lives.
type Gfx struct {
	Sprite *Sprite
}

// Release hands the sprite back to its renderer.
func (g *Gfx) Release() {
	if g.Sprite != nil {
		g.Sprite.Free()
		g.Sprite = nil
	}
}

var _ ledger.Releaser = &Gfx{}

var (
	Position      = ledger.FactoryNewKind[Vector2](KindPosition)
	Velocity      = ledger.FactoryNewKind[Vector2](KindVelocity)
	GfxKind       = ledger.FactoryNewKind[Gfx](KindGfx)
	ColorKind     = ledger.FactoryNewKind[Color](KindColor)
	TransformKind = ledger.FactoryNewKind[Transform](KindTransform)
	AnimationKind = ledger.FactoryNewKind[Animation](KindAnimation)
)
