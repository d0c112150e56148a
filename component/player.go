package component

// StateID names a node of the player movement state machine. The set is
// closed; dispatch happens through the fsm package's lookup table.
type StateID uint8

const (
	StateIdle StateID = iota
	StateWalking
	StateJumping
	StateFalling
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// PlayerComponent tags the player entity and tracks movement state.
// OnGround is recomputed by the collision pass every frame; it is only
// trustworthy after that pass has run.
type PlayerComponent struct {
	OnGround  bool
	JumpCount int
	Lives     int
	MaxJumps  int
	State     StateID
}

func (*PlayerComponent) Kind() Kind { return KindPlayer }
