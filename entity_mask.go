package ledger

import (
	"iter"
	"math"
	"math/bits"
)

// Entity is a handle in [0, MaxEntities). It carries no state of its own.
type Entity uint16

// NoEntity is returned by Create when every id is taken. It is never a valid id.
const NoEntity = Entity(math.MaxUint16)

const wordBits = 64

// EntityMask tracks which entity ids are allocated, one bit per id.
type EntityMask struct {
	words []uint64
	size  int
}

func NewEntityMask(size int) *EntityMask {
	if size < 0 || size > int(NoEntity) {
		violate(EntityRangeError{Entity: NoEntity, Size: size})
	}
	return &EntityMask{
		words: make([]uint64, (size+wordBits-1)/wordBits),
		size:  size,
	}
}

// Create allocates the lowest free id. It returns NoEntity and changes
// nothing when the mask is full.
func (m *EntityMask) Create() Entity {
	for w, word := range m.words {
		if word == math.MaxUint64 {
			continue
		}
		id := w*wordBits + bits.TrailingZeros64(^word)
		if id >= m.size {
			break
		}
		m.Add(Entity(id))
		return Entity(id)
	}
	return NoEntity
}

// Add marks e as allocated whether or not it already was.
func (m *EntityMask) Add(e Entity) {
	m.check(e)
	m.words[e/wordBits] |= 1 << (e % wordBits)
}

func (m *EntityMask) Destroy(e Entity) {
	m.check(e)
	m.words[e/wordBits] &^= 1 << (e % wordBits)
}

func (m *EntityMask) Contains(e Entity) bool {
	m.check(e)
	return m.words[e/wordBits]&(1<<(e%wordBits)) != 0
}

func (m *EntityMask) Size() int {
	return m.size
}

// Len counts allocated ids.
func (m *EntityMask) Len() int {
	n := 0
	for _, word := range m.words {
		n += bits.OnesCount64(word)
	}
	return n
}

// All yields allocated ids in ascending order.
func (m *EntityMask) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for w, word := range m.words {
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				if !yield(Entity(w*wordBits + bit)) {
					return
				}
				word &^= 1 << bit
			}
		}
	}
}

func (m *EntityMask) Reset() {
	clear(m.words)
}

func (m *EntityMask) check(e Entity) {
	if int(e) >= m.size {
		violate(EntityRangeError{Entity: e, Size: m.size})
	}
}
