// internal/types/types.go
package types

// EntityID - stable integer id of an entity, assigned monotonically at creation.
// Zero is never a valid id and marks "no entity".
type EntityID uint64

// None is the zero id.
const None EntityID = 0
