// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает сид, с которым был создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерное число в [min, max). При max <= min возвращает min.
func (s *PRNGService) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Sign возвращает -1 или +1 с равной вероятностью.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
