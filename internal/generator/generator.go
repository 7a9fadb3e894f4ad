// Package generator draws random oracle definitions for experiment runs.
package generator

import (
	"math/rand"

	"jozsa/internal/oracle"
	"jozsa/internal/util"

	"github.com/pkg/errors"
)

// Generator creates oracle definitions from an explicit random source.
type Generator struct {
	Rand *rand.Rand
	Seed int64
}

// New constructs a generator. A zero seed draws one from system entropy.
func New(seed int64) *Generator {
	r, effective := util.NewRand(seed)
	return &Generator{Rand: r, Seed: effective}
}

// Generate draws a definition over length inputs. A fair coin picks a
// constant or balanced oracle; balanced oracles always have an open door.
func (g *Generator) Generate(length int) (oracle.Definition, error) {
	if length < 1 {
		return oracle.Definition{}, errors.Errorf("oracle length %d must be at least 1", length)
	}
	if util.CoinFlip(g.Rand) {
		return oracle.Definition{Length: length, Doors: make([]bool, length), Constant: true}, nil
	}
	candidate := make([]bool, length)
	for i := range candidate {
		candidate[i] = util.CoinFlip(g.Rand)
	}
	doors := withDoorOpen(candidate, g.Rand.Intn(length))
	return oracle.Definition{Length: length, Doors: doors}, nil
}

// withDoorOpen returns a copy of doors with position pos forced open.
func withDoorOpen(doors []bool, pos int) []bool {
	out := make([]bool, len(doors))
	copy(out, doors)
	out[pos] = true
	return out
}
