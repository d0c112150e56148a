package event

import "github.com/lixenwraith/vi-runner/core"

// Type represents the type of game event.
type Type int

const (
	// CoinCollected fires on first player-collectible overlap.
	// Value carries the point credit.
	CoinCollected Type = iota

	// EnemyDefeated fires when a stomp destroys an enemy.
	// Value carries the point credit.
	EnemyDefeated

	// PlayerDamaged fires when an enemy contact costs a life.
	PlayerDamaged

	// PlayerDied fires when the player falls into the death pit.
	PlayerDied

	// GameOver fires once when lives are exhausted.
	GameOver

	typeCount
)

func (t Type) String() string {
	switch t {
	case CoinCollected:
		return "coin_collected"
	case EnemyDefeated:
		return "enemy_defeated"
	case PlayerDamaged:
		return "player_damaged"
	case PlayerDied:
		return "player_died"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a broadcast game occurrence. Entity is the subject (defeated
// enemy, collected coin, damaged player) and Value an optional magnitude
// such as a point credit.
type Event struct {
	Type   Type
	Entity core.Entity
	Value  int
}
