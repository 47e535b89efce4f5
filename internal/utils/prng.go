// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-grid-battle/internal/defs"
)

// PRNGService is a wrapper around Go's standard random number generator.
// It lets the whole game use one predictable, seeded source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Perm returns a random permutation of [0, n).
func (s *PRNGService) Perm(n int) []int {
	return s.rng.Perm(n)
}

// ChooseWeighted makes a weighted random pick from a spawn table.
// It sums the weights, draws a number in that range and returns the entry it lands on.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return entries[0].UnitID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.UnitID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].UnitID
}
