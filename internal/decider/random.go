package decider

import (
	"context"
	"math/rand"
	"sync"

	"github.com/Ronnykraitman/clue/internal/deduction"
	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

// Random is the baseline automated chooser and the degradation target when
// a smarter collaborator is unavailable. Moves are uniformly random among
// the legal rooms; suspicions target cards the player has not yet ruled
// out; accusations follow a risk-taker rule on the notebook.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand

	suspects []string
	weapons  []string
	rooms    []string
}

// NewRandom creates a Random bound to the three catalogs. A nil rng is not
// allowed; the caller owns seeding.
func NewRandom(rng *rand.Rand, suspects, weapons, rooms []string) *Random {
	return &Random{rng: rng, suspects: suspects, weapons: weapons, rooms: rooms}
}

func (r *Random) pick(options []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rng.Intn(len(options))]
}

// ChooseMove picks a uniformly random legal room
func (r *Random) ChooseMove(_ context.Context, _ view.PlayerView, legalRooms []string, _ view.StateView) (string, error) {
	return r.pick(legalRooms), nil
}

// ChooseSuspicion asks about cards still unknown to the player where
// possible, so each suspicion can actually narrow the notebook down.
func (r *Random) ChooseSuspicion(_ context.Context, p view.PlayerView, currentRoom string, _ view.StateView, suspects, weapons []string) (models.Suspicion, error) {
	candidateSuspects := deduction.Unknowns(p.Notebook, suspects)
	if len(candidateSuspects) == 0 {
		candidateSuspects = suspects
	}
	candidateWeapons := deduction.Unknowns(p.Notebook, weapons)
	if len(candidateWeapons) == 0 {
		candidateWeapons = weapons
	}
	return models.Suspicion{
		Suspect: r.pick(candidateSuspects),
		Weapon:  r.pick(candidateWeapons),
		Room:    currentRoom,
	}, nil
}

// maxRiskCombinations is the largest number of remaining consistent
// solutions at which Random still gambles on an accusation.
const maxRiskCombinations = 3

// ChooseAccusation accuses when the notebook leaves a single consistent
// solution, gambles when at most maxRiskCombinations remain, and otherwise
// holds off.
func (r *Random) ChooseAccusation(_ context.Context, p view.PlayerView, _ view.StateView) (*models.Suspicion, error) {
	if s, ok := deduction.Certain(p.Notebook, r.suspects, r.weapons, r.rooms); ok {
		return &s, nil
	}
	combos := deduction.Combinations(p.Notebook, r.suspects, r.weapons, r.rooms)
	if combos == 0 || combos > maxRiskCombinations {
		return nil, nil
	}
	s := models.Suspicion{
		Suspect: r.pick(deduction.Unknowns(p.Notebook, r.suspects)),
		Weapon:  r.pick(deduction.Unknowns(p.Notebook, r.weapons)),
		Room:    r.pick(deduction.Unknowns(p.Notebook, r.rooms)),
	}
	return &s, nil
}
