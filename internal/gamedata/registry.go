package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
)

// Registry holds the loaded player definition and enemy kinds and provides
// spawning utilities.
type Registry struct {
	Player      EntityDef
	SpawnChance float64

	enemies     []EntityDef
	totalWeight int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry(file EntitiesFile) *Registry {
	totalWeight := 0
	for _, e := range file.Enemies {
		totalWeight += e.SpawnWeight
	}
	return &Registry{
		Player:      file.Player,
		SpawnChance: file.SpawnChance,
		enemies:     file.Enemies,
		totalWeight: totalWeight,
	}
}

// LoadRegistry loads and creates a registry from the embedded entities.json.
func LoadRegistry() (*Registry, error) {
	return LoadRegistryFS(dataFS)
}

// LoadRegistryFS loads and validates entities.json from fsys.
func LoadRegistryFS(fsys fs.FS) (*Registry, error) {
	file, err := LoadFS[EntitiesFile](fsys, "entities.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from entities.json")
	}
	if file.SpawnChance < 0 || file.SpawnChance > 1 {
		return nil, fmt.Errorf("spawnChance %v outside [0,1]", file.SpawnChance)
	}
	registry := NewRegistry(file)
	if registry.totalWeight <= 0 {
		return nil, errors.New("enemy spawn weights sum to zero")
	}
	return registry, nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *Registry) SpawnRandom(rng *rand.Rand) *EntityDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.enemies[0]
}

// Count returns the number of enemy kinds in the registry.
func (r *Registry) Count() int {
	return len(r.enemies)
}
