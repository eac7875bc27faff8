package squares

import "github.com/TheBitDrifter/ledger"

// FindRedSquares accepts red squares.
func FindRedSquares(t *ledger.Table, e ledger.Entity) bool {
	return ColorKind.Has(t, e) && ColorKind.Get(t, e).Color == Red
}

// XBoundary is an open interval on the x axis.
type XBoundary struct {
	Min, Max float64
}

// FindYellowSquaresWithin accepts yellow squares strictly inside b.
func FindYellowSquaresWithin(t *ledger.Table, e ledger.Entity, b *XBoundary) bool {
	if !ColorKind.Has(t, e) || ColorKind.Get(t, e).Color != Yellow {
		return false
	}
	pos := Position.Get(t, e)
	return pos.X > b.Min && pos.X < b.Max
}
