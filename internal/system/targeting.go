package system

import (
	"go-grid-battle/internal/component"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// Candidate is a potential target together with its separation from the seeker.
type Candidate struct {
	ID  types.EntityID
	Sep gridmap.Separation
}

// enemiesOf lists living hostile units in ascending id order.
func (w *World) enemiesOf(id types.EntityID) []Candidate {
	fp, ok := w.ECS.Footprints[id]
	if !ok {
		return nil
	}
	own := fp.Cells()
	var out []Candidate
	for _, other := range w.ECS.LivingUnits() {
		if other == id || !w.ECS.Hostile(id, other) {
			continue
		}
		out = append(out, Candidate{
			ID:  other,
			Sep: gridmap.Separate(own, w.ECS.Footprints[other].Cells()),
		})
	}
	return out
}

// FindNearestEnemy picks the closest hostile unit: smaller Chebyshev distance first,
// then smaller Manhattan distance, then smaller id.
func (w *World) FindNearestEnemy(id types.EntityID) (Candidate, bool) {
	return nearest(w.enemiesOf(id))
}

func nearest(candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range candidates {
		if !found || closer(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func closer(a, b Candidate) bool {
	if a.Sep.Chebyshev != b.Sep.Chebyshev {
		return a.Sep.Chebyshev < b.Sep.Chebyshev
	}
	if a.Sep.Manhattan != b.Sep.Manhattan {
		return a.Sep.Manhattan < b.Sep.Manhattan
	}
	return a.ID < b.ID
}

// rangedScore: lower is better. Straight lines are preferred over diagonals,
// diagonals over everything else.
func rangedScore(sep gridmap.Separation) int {
	score := sep.Chebyshev * 10
	switch {
	case sep.Orthogonal():
		score -= 50
	case sep.Diagonal():
		score -= 25
	}
	return score
}

// FindRangedTarget picks a target inside [MinRange, MaxRange]. Any enemy closer than
// MinRange disables ranged fire altogether.
func (w *World) FindRangedTarget(id types.EntityID, combat *component.Combat) (Candidate, bool) {
	candidates := w.enemiesOf(id)
	for _, c := range candidates {
		if c.Sep.Chebyshev < combat.MinRange {
			return Candidate{}, false
		}
	}

	var best Candidate
	bestScore := 0
	found := false
	for _, c := range candidates {
		if c.Sep.Chebyshev > combat.MaxRange {
			continue
		}
		score := rangedScore(c.Sep)
		if !found || score < bestScore || (score == bestScore && c.ID < best.ID) {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

// HasAmmo reports whether a unit may fire. No Ammo component means unlimited shots.
func (w *World) HasAmmo(id types.EntityID) bool {
	ammo, ok := w.ECS.Ammos[id]
	return !ok || ammo.Remaining > 0
}
