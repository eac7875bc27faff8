package ledger

import "github.com/TheBitDrifter/mask"

// Signature predicates test the set of kinds attached to an entity, heap and
// shared storage alike. They are built without a table, so kinds are only
// checked against MaxKindBits; a kind at or past a table's MaxComponentKinds
// never matches on that table. SelectRequires checks against its table.

func kindMask(kinds []Kind) mask.Mask {
	var m mask.Mask
	for _, k := range kinds {
		if int(k) >= MaxKindBits {
			violate(KindRangeError{Kind: k, Max: MaxKindBits})
		}
		m.Mark(uint32(k))
	}
	return m
}

// Requires accepts entities holding every one of kinds.
func Requires(kinds ...Kind) Predicate {
	want := kindMask(kinds)
	return func(t *Table, e Entity) bool {
		sig := t.Signature(e)
		return sig.ContainsAll(want)
	}
}

// RequiresAny accepts entities holding at least one of kinds.
func RequiresAny(kinds ...Kind) Predicate {
	want := kindMask(kinds)
	return func(t *Table, e Entity) bool {
		sig := t.Signature(e)
		return sig.ContainsAny(want)
	}
}

// Excludes accepts entities holding none of kinds.
func Excludes(kinds ...Kind) Predicate {
	want := kindMask(kinds)
	return func(t *Table, e Entity) bool {
		sig := t.Signature(e)
		return sig.ContainsNone(want)
	}
}

// SelectRequires binds Requires to t, for use as a system's Select.
func SelectRequires(t *Table, kinds ...Kind) func(Entity) bool {
	for _, k := range kinds {
		t.checkKind(k)
	}
	pred := Requires(kinds...)
	return func(e Entity) bool {
		return pred(t, e)
	}
}
