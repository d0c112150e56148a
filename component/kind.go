package component

// Kind identifies a component type. The set is closed: every data block an
// entity can carry is one of the kinds below. An entity holds at most one
// instance of a given kind.
type Kind uint8

const (
	// KindNone is the zero value and never stored.
	KindNone Kind = iota
	KindPosition
	KindVelocity
	KindSprite
	KindCollider
	KindPhysics
	KindPlayer
	KindEnemy
	KindPlatform
	KindCollectible

	// KindCount is the number of valid kinds plus the sentinel.
	KindCount
)

// String returns the kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindVelocity:
		return "velocity"
	case KindSprite:
		return "sprite"
	case KindCollider:
		return "collider"
	case KindPhysics:
		return "physics"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlatform:
		return "platform"
	case KindCollectible:
		return "collectible"
	default:
		return "none"
	}
}

// Component is implemented by every component data block. Kind must be
// callable on a nil pointer receiver so generic accessors can derive the
// kind from the type alone.
type Component interface {
	Kind() Kind
}
