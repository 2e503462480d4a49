package entity

import (
	"math/rand"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// SpawnEnemies scatters enemies over the floor cells of cells, each floor
// cell independently holding one with probability chance. The cell at
// exclude (the player start) is skipped.
func SpawnEnemies(cells *world.Grid, registry *gamedata.Registry, rng *rand.Rand, chance float64, exclude world.Position) []*Entity {
	var enemies []*Entity
	for y := 0; y < cells.Height; y++ {
		for x := 0; x < cells.Width; x++ {
			p := world.Position{X: x, Y: y}
			if p == exclude || !cells.Is(p, world.CellFloor) {
				continue
			}
			if rng.Float64() >= chance {
				continue
			}
			if def := registry.SpawnRandom(rng); def != nil {
				enemies = append(enemies, NewEnemy(def, p))
			}
		}
	}
	return enemies
}
