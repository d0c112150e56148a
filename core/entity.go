package core

// Entity is an opaque identifier for a game object. It carries no data of its
// own; component stores attach typed data blocks to it. The zero value is the
// reserved "no entity" sentinel and is never allocated.
type Entity uint64

// None is the invalid entity sentinel.
const None Entity = 0

// Valid reports whether e refers to an allocated entity ID.
func (e Entity) Valid() bool {
	return e != None
}
