// internal/defs/spawn_tables.go
package defs

// SpawnEntry представляет одну запись в таблице генерации.
// UnitID - это ID юнита, а Weight - его относительный шанс появления.
type SpawnEntry struct {
	UnitID string `yaml:"unit"`
	Weight int    `yaml:"weight"`
}

// SpawnTable определяет, из каких юнитов собирается случайный сценарий.
type SpawnTable struct {
	Entries      []SpawnEntry `yaml:"entries"`
	UnitsPerTeam int          `yaml:"units_per_team"`
}
