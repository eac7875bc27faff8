package ledger

// Component is a data record attached to an entity under a Kind.
// Components are attached as pointers and owned by the table from then on.
type Component interface{}

// Releaser is implemented by components and systems that hold resources beyond
// their own memory. The table calls Release exactly once, when it drops the value.
type Releaser interface {
	Release()
}

// Kind identifies a component slot, in [0, MaxComponentKinds).
type Kind uint8

func release(v any) {
	if r, ok := v.(Releaser); ok {
		r.Release()
	}
}
