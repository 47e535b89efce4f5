// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Library holds unit definitions keyed by their ID.
type Library map[string]UnitDefinition

// unitsFile is the layout of the definitions file.
type unitsFile struct {
	Units []UnitDefinition `yaml:"units"`
	Spawn SpawnTable       `yaml:"spawn"`
}

var (
	ErrDuplicateUnit = errors.New("duplicate unit definition")
	ErrInvalidUnit   = errors.New("invalid unit definition")
	ErrUnknownUnit   = errors.New("unknown unit definition")
)

// LoadUnitDefinitions reads the unit configuration file.
func LoadUnitDefinitions(path string) (Library, SpawnTable, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, SpawnTable{}, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	return ParseUnitDefinitions(file)
}

// ParseUnitDefinitions decodes and validates a definitions document.
func ParseUnitDefinitions(data []byte) (Library, SpawnTable, error) {
	var doc unitsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, SpawnTable{}, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	lib := make(Library, len(doc.Units))
	for _, def := range doc.Units {
		if _, exists := lib[def.ID]; exists {
			return nil, SpawnTable{}, fmt.Errorf("%w: %q", ErrDuplicateUnit, def.ID)
		}
		if err := def.Validate(); err != nil {
			return nil, SpawnTable{}, err
		}
		lib[def.ID] = def
	}
	for _, entry := range doc.Spawn.Entries {
		if _, ok := lib[entry.UnitID]; !ok {
			return nil, SpawnTable{}, fmt.Errorf("spawn table: %w: %q", ErrUnknownUnit, entry.UnitID)
		}
	}
	return lib, doc.Spawn, nil
}

// Validate checks the fields the simulation cannot run without.
func (d UnitDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidUnit)
	case d.Health <= 0:
		return fmt.Errorf("%w: %q: health must be positive", ErrInvalidUnit, d.ID)
	case d.Footprint.Width < 1 || d.Footprint.Height < 1:
		return fmt.Errorf("%w: %q: footprint must be at least 1x1", ErrInvalidUnit, d.ID)
	case d.MoveSpeed < 0:
		return fmt.Errorf("%w: %q: negative move speed", ErrInvalidUnit, d.ID)
	}
	if c := d.Combat; c != nil {
		if c.Damage < 0 || c.Range < 0 || c.AttackSpeed < 0 {
			return fmt.Errorf("%w: %q: negative combat stats", ErrInvalidUnit, d.ID)
		}
		if r := c.Ranged; r != nil && (r.MinRange < 0 || r.MaxRange < r.MinRange) {
			return fmt.Errorf("%w: %q: ranged window [%d, %d]", ErrInvalidUnit, d.ID, r.MinRange, r.MaxRange)
		}
	}
	if a := d.Aura; a != nil && (a.Range < 0 || a.Cooldown < 0) {
		return fmt.Errorf("%w: %q: negative aura stats", ErrInvalidUnit, d.ID)
	}
	return nil
}

// LoadScenario reads a battle scenario and checks that every unit it names exists.
func LoadScenario(path string, lib Library) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(file, lib)
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte, lib Library) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	for i, p := range sc.Placements {
		if _, ok := lib[p.Unit]; !ok {
			return nil, fmt.Errorf("scenario %q placement %d: %w: %q", sc.Name, i, ErrUnknownUnit, p.Unit)
		}
	}
	return &sc, nil
}
