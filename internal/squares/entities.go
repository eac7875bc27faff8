package squares

import "github.com/TheBitDrifter/ledger"

type squareSpec struct {
	velocity  Vector2
	tile      int
	transform bool
	animated  bool
}

var squareSpecs = [...]squareSpec{
	Red:      {velocity: Vector2{X: 0.5, Y: 0.5}, tile: TileRed},
	Blue:     {velocity: Vector2{X: -0.5, Y: 0.5}, tile: TileBlue, transform: true},
	Yellow:   {velocity: Vector2{X: -0.5, Y: -0.5}, tile: TileYellow, transform: true},
	Flashing: {velocity: Vector2{X: 0.5, Y: -0.5}, tile: TileRed, animated: true},
}

// NewSquare creates a square of color c at the origin and subscribes it. It
// returns NoEntity, creating nothing, when the table is full.
func NewSquare(t *ledger.Table, r *Renderer, c Colors) ledger.Entity {
	e := t.Create()
	if e == ledger.NoEntity {
		return e
	}
	spec := squareSpecs[c]
	velocity := spec.velocity

	Position.Add(t, e, &Vector2{})
	Velocity.Add(t, e, &velocity)
	ColorKind.Add(t, e, &Color{Color: c})
	if spec.transform {
		TransformKind.Add(t, e, &Transform{Scale: 1})
	}
	if spec.animated {
		AnimationKind.Add(t, e, &Animation{First: 0, Last: 2})
	}
	GfxKind.Add(t, e, &Gfx{Sprite: r.NewSprite(0, 0, spec.tile)})
	t.Subscribe(e)
	return e
}

// SpawnWave creates one square of each color, in color order, and returns
// how many fit in the table.
func SpawnWave(t *ledger.Table, r *Renderer) int {
	spawned := 0
	for _, c := range []Colors{Red, Blue, Yellow, Flashing} {
		if NewSquare(t, r, c) == ledger.NoEntity {
			break
		}
		spawned++
	}
	return spawned
}

func spriteOf(t *ledger.Table, e ledger.Entity) *Sprite {
	if !GfxKind.Has(t, e) {
		return nil
	}
	return GfxKind.Get(t, e).Sprite
}
