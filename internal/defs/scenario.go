// internal/defs/scenario.go
package defs

// Placement puts one unit of a definition on the battlefield.
type Placement struct {
	Unit string `yaml:"unit"`
	Team string `yaml:"team"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
}

// Scenario is a starting position: grid size and unit placements, applied in order.
// Placement order fixes the unit ids, so both sides of a battle must load the same file.
type Scenario struct {
	Name       string      `yaml:"name"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Placements []Placement `yaml:"units"`
}
