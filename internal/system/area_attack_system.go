// internal/system/area_attack_system.go
package system

import (
	"slices"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// AreaCells computes the splash cells of an area attack around target. The target
// cell itself and anything off the grid are excluded; the result is row-major.
func AreaCells(area *component.AreaAttack, target gridmap.Cell, look component.Direction, g *gridmap.Grid) []gridmap.Cell {
	if area == nil {
		return nil
	}
	set := make(map[gridmap.Cell]struct{})
	add := func(c gridmap.Cell) {
		if c != target && g.InBounds(c) {
			set[c] = struct{}{}
		}
	}

	switch area.Pattern {
	case component.PatternLine:
		if look.IsZero() {
			break
		}
		for k := 1; k <= area.Depth; k++ {
			add(target.Add(look.DX*k, look.DY*k))
		}

	case component.PatternTriangle:
		if look.IsZero() {
			break
		}
		if look.Diagonal() {
			// по диагонали конус заполняется L-образными слоями
			for d := 1; d <= area.Depth; d++ {
				for i := 0; i <= d; i++ {
					add(target.Add(look.DX*i, look.DY*d))
					add(target.Add(look.DX*d, look.DY*i))
				}
			}
			break
		}
		// perpendicular axis of an orthogonal look
		px, py := look.DY, look.DX
		for d := 1; d <= area.Depth; d++ {
			half := d
			if area.Spread > 0 {
				half = min(d, area.Spread)
			}
			center := target.Add(look.DX*d, look.DY*d)
			for w := -half; w <= half; w++ {
				add(center.Add(px*w, py*w))
			}
		}

	case component.PatternAdjacent:
		r := max(area.Spread, 1)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				add(target.Add(dx, dy))
			}
		}

	case component.PatternCustom:
		for _, off := range area.Offsets {
			add(target.Add(off.Col, off.Row))
		}
	}

	cells := make([]gridmap.Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b gridmap.Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return cells
}

// splashVictims returns the distinct living enemies of attacker standing on cells,
// primary target excluded, ascending by id.
func (w *World) splashVictims(attacker, primary types.EntityID, cells []gridmap.Cell) []types.EntityID {
	var hit []types.EntityID
	for _, c := range cells {
		occupant, ok := w.Grid.OccupantAt(c)
		if !ok || occupant == types.None || occupant == primary {
			continue
		}
		if !w.ECS.IsAlive(occupant) || !w.ECS.Hostile(attacker, occupant) {
			continue
		}
		if !slices.Contains(hit, occupant) {
			hit = append(hit, occupant)
		}
	}
	slices.Sort(hit)
	return hit
}

// applySplash computes the pattern, reports it to observers and damages every victim.
func (w *World) applySplash(attacker, primary types.EntityID, combat *component.Combat) {
	fp, ok := w.ECS.Footprints[primary]
	if !ok {
		return
	}
	cells := AreaCells(combat.Area, fp.Anchor(), combat.Look, w.Grid)
	hit := w.splashVictims(attacker, primary, cells)

	w.emit(event.AoePatternComputed, event.AoeData{
		Attacker: attacker,
		Target:   primary,
		Cells:    cells,
		Hit:      hit,
	})

	damage := scale(combat.Damage, combat.Area.Multiplier)
	for _, victim := range hit {
		w.ApplyDamage(attacker, victim, damage, true)
	}
}
