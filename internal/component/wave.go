package component

import "time"

// Difficulty is the spawner ramp. It persists across pause and is reset
// only on restart.
type Difficulty struct {
	SpawnInterval time.Duration // текущий интервал между циклами спавна
	BatchSize     int           // врагов за цикл
	Cycles        int           // сколько циклов уже прошло
}

func NewDifficulty(initialInterval time.Duration) Difficulty {
	d := Difficulty{}
	d.Reset(initialInterval)
	return d
}

func (d *Difficulty) Reset(initialInterval time.Duration) {
	d.SpawnInterval = initialInterval
	d.BatchSize = 1
	d.Cycles = 0
}
