// internal/component/health.go
package component

// Health - компонент здоровья
type Health struct {
	Value  int
	Max    int
	IsDead bool
}

// Team marks which side a unit fights for. Units with an empty team are never
// targeted by anyone.
type Team struct {
	Name string
}
