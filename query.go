package ledger

import "iter"

// Every query fills an EntityBag whose capacity is the caller's bound on the
// result size. Exceeding it panics rather than truncating. The Into forms
// reuse a caller-owned bag so per-frame queries need not allocate.

// Query returns the entities currently subscribed to system id, in
// subscription order.
func (t *Table) Query(id SystemID, capacity int) EntityBag {
	dst := NewEntityBag(capacity)
	t.QueryInto(&dst, id)
	return dst
}

func (t *Table) QueryInto(dst *EntityBag, id SystemID) {
	t.checkOpen()
	dst.Clear()
	for e := range t.subscribersOf(id) {
		dst.PushBack(e)
	}
}

// QueryAll returns every live entity accepted by pred, in ascending id order.
func (t *Table) QueryAll(capacity int, pred Predicate) EntityBag {
	dst := NewEntityBag(capacity)
	t.QueryAllInto(&dst, pred)
	return dst
}

func (t *Table) QueryAllInto(dst *EntityBag, pred Predicate) {
	t.checkOpen()
	dst.Clear()
	for e := range t.entities.All() {
		if pred(t, e) {
			dst.PushBack(e)
		}
	}
}

// QuerySystem returns the subscribers of system id accepted by pred. The
// order follows the subscriber list and carries no meaning.
func (t *Table) QuerySystem(id SystemID, capacity int, pred Predicate) EntityBag {
	dst := NewEntityBag(capacity)
	t.QuerySystemInto(&dst, id, pred)
	return dst
}

func (t *Table) QuerySystemInto(dst *EntityBag, id SystemID, pred Predicate) {
	t.checkOpen()
	dst.Clear()
	for e := range t.subscribersOf(id) {
		if pred(t, e) {
			dst.PushBack(e)
		}
	}
}

// QueryWith is QueryAll with a parameter passed through to pred on every call.
func QueryWith[P any](t *Table, capacity int, pred ParamPredicate[P], param *P) EntityBag {
	dst := NewEntityBag(capacity)
	QueryWithInto(t, &dst, pred, param)
	return dst
}

func QueryWithInto[P any](t *Table, dst *EntityBag, pred ParamPredicate[P], param *P) {
	t.checkOpen()
	dst.Clear()
	for e := range t.entities.All() {
		if pred(t, e, param) {
			dst.PushBack(e)
		}
	}
}

// QuerySystemWith is QuerySystem with a parameter passed through to pred.
func QuerySystemWith[P any](t *Table, id SystemID, capacity int, pred ParamPredicate[P], param *P) EntityBag {
	dst := NewEntityBag(capacity)
	QuerySystemWithInto(t, &dst, id, pred, param)
	return dst
}

func QuerySystemWithInto[P any](t *Table, dst *EntityBag, id SystemID, pred ParamPredicate[P], param *P) {
	t.checkOpen()
	dst.Clear()
	for e := range t.subscribersOf(id) {
		if pred(t, e, param) {
			dst.PushBack(e)
		}
	}
}

// subscribersOf walks BaseSystem subscribers in place when it can. Other
// System implementations are read through their Subscribers snapshot.
func (t *Table) subscribersOf(id SystemID) iter.Seq[Entity] {
	s := t.System(id)
	if base, ok := s.(subscriberTracker); ok {
		return base.base().All()
	}
	snapshot := s.Subscribers()
	return snapshot.All()
}
