package ledger

import "go.uber.org/zap"

// deferQueue holds destroys requested while systems walk their subscribers.
// Each entity is queued at most once.
type deferQueue struct {
	destroys EntityBag
	queued   *EntityMask
}

func newDeferQueue(maxEntities int) deferQueue {
	return deferQueue{
		destroys: NewEntityBag(maxEntities),
		queued:   NewEntityMask(maxEntities),
	}
}

func (q *deferQueue) enqueue(e Entity) {
	if q.queued.Contains(e) {
		return
	}
	q.queued.Add(e)
	q.destroys.PushBack(e)
}

// drop forgets e, so a recycled id is never destroyed on behalf of the
// entity that held it before.
func (q *deferQueue) drop(e Entity) {
	if !q.queued.Contains(e) {
		return
	}
	q.queued.Destroy(e)
	q.destroys.Erase(q.destroys.IndexOf(e))
}

func (q *deferQueue) reset() {
	q.destroys.Clear()
	q.queued.Reset()
}

// DeferDestroy queues e to be destroyed after the current Update, once every
// active system has run, or at the next FlushDeferred. A system may call it on
// its own subscribers while iterating them. Queuing e twice has no effect.
func (t *Table) DeferDestroy(e Entity) {
	t.checkOpen()
	t.checkLive(e)
	t.deferred.enqueue(e)
}

// Deferred returns the number of queued destroys.
func (t *Table) Deferred() int {
	return t.deferred.destroys.Len()
}

// FlushDeferred destroys every queued entity and returns how many it
// destroyed. Ids that died since they were queued are skipped.
func (t *Table) FlushDeferred() int {
	t.checkOpen()
	n := 0
	for !t.deferred.destroys.Empty() {
		e := t.deferred.destroys.Front()
		if !t.entities.Contains(e) {
			t.deferred.drop(e)
			continue
		}
		t.Destroy(e)
		n++
	}
	if n > 0 {
		Config.logger.Debug("deferred destroys flushed", zap.Int("destroyed", n))
	}
	return n
}
