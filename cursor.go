package ledger

// Cursor is a pull-style computed query: it visits matching entities one at a
// time without collecting them, so the result needs no capacity bound.
//
// The whole-table form visits ids in ascending order. The system form visits
// subscribers in list order, and the subscriber set must not change while the
// cursor is in use.
type Cursor struct {
	table  *Table
	pred   Predicate
	system System

	current Entity
	next    int
}

func newCursor(t *Table, pred Predicate) *Cursor {
	c := &Cursor{
		table: t,
		pred:  pred,
	}
	c.Reset()
	return c
}

// Next advances to the following match. It returns false, and rewinds the
// cursor, once no match is left.
func (c *Cursor) Next() bool {
	if c.system != nil {
		return c.advanceSystem()
	}
	return c.advanceTable()
}

func (c *Cursor) advanceTable() bool {
	c.table.checkOpen()
	for c.next < c.table.cfg.MaxEntities {
		e := Entity(c.next)
		c.next++
		if c.table.entities.Contains(e) && c.accept(e) {
			c.current = e
			return true
		}
	}
	c.Reset()
	return false
}

func (c *Cursor) advanceSystem() bool {
	c.table.checkOpen()
	var subscribers *EntityBag
	if tracker, ok := c.system.(subscriberTracker); ok {
		subscribers = &tracker.base().subscribers
	} else {
		snapshot := c.system.Subscribers()
		subscribers = &snapshot
	}
	for c.next < subscribers.Len() {
		e := subscribers.Get(c.next)
		c.next++
		if c.accept(e) {
			c.current = e
			return true
		}
	}
	c.Reset()
	return false
}

func (c *Cursor) accept(e Entity) bool {
	return c.pred == nil || c.pred(c.table, e)
}

// Entity returns the entity the cursor stopped at, or NoEntity before the
// first Next.
func (c *Cursor) Entity() Entity {
	return c.current
}

func (c *Cursor) Reset() {
	c.current = NoEntity
	c.next = 0
}

// TotalMatched runs the cursor to the end and counts the matches.
func (c *Cursor) TotalMatched() int {
	c.Reset()
	total := 0
	for c.Next() {
		total++
	}
	return total
}
