package component

// EnemyComponent drives the patrol AI. Direction is +1 or -1 and flips when
// the enemy reaches a patrol boundary.
type EnemyComponent struct {
	MoveSpeed   float64
	Direction   float64
	PatrolStart float64
	PatrolEnd   float64
	Points      int
}

func (*EnemyComponent) Kind() Kind { return KindEnemy }
