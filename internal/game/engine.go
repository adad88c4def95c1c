// Package game implements the rules engine: setup, the turn state machine,
// suspicion resolution and accusation adjudication.
package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ronnykraitman/clue/internal/board"
	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

// Solution is the withheld suspect/weapon/room triple players try to deduce.
// It never appears in any player-visible state.
type Solution struct {
	Suspect models.Card
	Weapon  models.Card
	Room    models.Card
}

// Engine owns the single mutable GameState of a session. Every mutating
// operation takes the engine lock; no two transitions interleave.
type Engine struct {
	mu    sync.Mutex
	rng   *rand.Rand
	board *board.Topology
	log   *logrus.Logger

	state *models.GameState
	truth Solution
}

// New creates an engine for the given board. A nil rng gets a time-seeded
// source; a nil logger gets the logrus standard logger.
func New(topology *board.Topology, rng *rand.Rand, log *logrus.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{rng: rng, board: topology, log: log}
}

// State returns the canonical game state. Full truth, own-use only: anything
// handed to a player must go through Snapshot.
func (e *Engine) State() *models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Snapshot returns the game state as seen by the named viewer, with other
// players' hands and notebooks redacted.
func (e *Engine) Snapshot(viewer string) (view.StateView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return view.StateView{}, ErrNotStarted
	}
	return view.Project(e.state, viewer), nil
}

// RollDice rolls two six-sided dice for the current player and computes the
// legal destinations. With no destination in range the stay is forced and
// the turn advances straight to the action phase.
func (e *Engine) RollDice() (int, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return 0, nil, ErrNotStarted
	}
	if e.state.Phase != models.PhaseTurnMove {
		return 0, nil, fmt.Errorf("roll dice: %w (phase %s)", ErrWrongPhase, e.state.Phase)
	}
	if e.state.DiceRolled {
		return 0, nil, fmt.Errorf("roll dice: %w (already rolled)", ErrWrongPhase)
	}

	roll := e.rng.Intn(DiceSides) + 1 + e.rng.Intn(DiceSides) + 1
	current := e.state.CurrentPlayer()
	moves := e.board.ValidDestinations(current.Position, roll)

	e.state.AvailableMoves = moves
	e.state.DiceRolled = true
	e.state.Log(fmt.Sprintf("%s rolled a %d. Valid moves: %s", current.Name, roll, strings.Join(moves, ", ")))

	if len(moves) == 0 {
		e.state.Log(fmt.Sprintf("%s has no valid moves. Staying in %s.", current.Name, current.Position))
		e.state.Phase = models.PhaseTurnAction
	}

	e.log.WithFields(logrus.Fields{
		"player": current.Name,
		"roll":   roll,
		"moves":  len(moves),
	}).Debug("dice rolled")
	return roll, moves, nil
}

// Move relocates the current player to one of the destinations computed by
// the last roll and advances the turn to the action phase.
func (e *Engine) Move(playerIndex int, destination string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return ErrNotStarted
	}
	if e.state.Phase != models.PhaseTurnMove {
		return fmt.Errorf("move: %w (phase %s)", ErrWrongPhase, e.state.Phase)
	}
	if playerIndex != e.state.CurrentPlayerIndex {
		return fmt.Errorf("move: %w", ErrNotYourTurn)
	}
	if !e.state.DiceRolled {
		return fmt.Errorf("move: %w (dice not rolled)", ErrWrongPhase)
	}
	if !inCatalog(e.state.AvailableMoves, destination) {
		return fmt.Errorf("move to %q: %w", destination, ErrIllegalMove)
	}

	player := e.state.Players[playerIndex]
	player.Position = destination
	e.state.Log(fmt.Sprintf("%s moved to %s", player.Name, destination))
	e.state.Phase = models.PhaseTurnAction

	e.log.WithFields(logrus.Fields{"player": player.Name, "room": destination}).Debug("player moved")
	return nil
}

// Suspicion resolves a suspicion voiced by the asking player: the accused
// suspect's token is pulled into the room, then the table is walked in
// seating order after the asker until someone holds a matching card. The
// first holder discloses one match, chosen uniformly at random; nobody
// after them is consulted. A full silent loop records the triple as
// undisproved for the asker.
func (e *Engine) Suspicion(playerIndex int, s models.Suspicion) (models.Disclosure, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return models.Disclosure{}, ErrNotStarted
	}
	if e.state.Phase != models.PhaseTurnAction {
		return models.Disclosure{}, fmt.Errorf("suspicion: %w (phase %s)", ErrWrongPhase, e.state.Phase)
	}
	if playerIndex != e.state.CurrentPlayerIndex {
		return models.Disclosure{}, fmt.Errorf("suspicion: %w", ErrNotYourTurn)
	}
	asker := e.state.Players[playerIndex]
	if !inCatalog(Suspects, s.Suspect) || !inCatalog(Weapons, s.Weapon) || !inCatalog(Rooms, s.Room) {
		return models.Disclosure{}, fmt.Errorf("suspicion %s/%s/%s: %w", s.Suspect, s.Weapon, s.Room, ErrIllegalChoice)
	}
	if s.Room != asker.Position {
		return models.Disclosure{}, fmt.Errorf("suspicion in %q from %q: %w", s.Room, asker.Position, ErrIllegalChoice)
	}

	// A suspicion always drags the accused suspect's token into the room.
	if accused, ok := e.state.PlayerByCharacter(s.Suspect); ok {
		accused.Position = s.Room
		e.state.Log(fmt.Sprintf("%s was moved to %s", s.Suspect, s.Room))
	}
	e.state.Log(fmt.Sprintf("%s suspects %s with %s in %s", asker.Name, s.Suspect, s.Weapon, s.Room))

	numPlayers := len(e.state.Players)
	for i := 1; i < numPlayers; i++ {
		checker := e.state.Players[(playerIndex+i)%numPlayers]
		matches := checker.MatchingCards(s)
		if len(matches) == 0 {
			continue
		}
		shown := matches[e.rng.Intn(len(matches))]
		e.state.Log(fmt.Sprintf("%s showed a card to %s", checker.Name, asker.Name))
		asker.RecordSeen(shown.Name)

		e.log.WithFields(logrus.Fields{
			"asker":     asker.Name,
			"discloser": checker.Name,
		}).Debug("suspicion disproved")
		return models.Disclosure{HasCard: true, Discloser: checker.Name, ShownCard: &shown}, nil
	}

	e.state.Log("No one could disprove the suspicion.")
	asker.RecordUndisproved(s)
	return models.Disclosure{HasCard: false}, nil
}

// Accuse adjudicates a binding accusation against the withheld solution.
// All three names must match. A correct accusation ends the game; a wrong
// one eliminates the accuser and leaves turn progression to the caller.
func (e *Engine) Accuse(playerIndex int, s models.Suspicion) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return false, ErrNotStarted
	}
	if e.state.Phase != models.PhaseTurnAction {
		return false, fmt.Errorf("accuse: %w (phase %s)", ErrWrongPhase, e.state.Phase)
	}
	if playerIndex != e.state.CurrentPlayerIndex {
		return false, fmt.Errorf("accuse: %w", ErrNotYourTurn)
	}

	accuser := e.state.Players[playerIndex]
	correct := s.Suspect == e.truth.Suspect.Name &&
		s.Weapon == e.truth.Weapon.Name &&
		s.Room == e.truth.Room.Name

	if correct {
		e.state.Winner = accuser.Name
		e.state.Phase = models.PhaseGameOver
		e.state.Log(fmt.Sprintf("%s WON! Correct accusation: %s, %s, %s", accuser.Name, s.Suspect, s.Weapon, s.Room))
		e.log.WithField("winner", accuser.Name).Info("game over")
		return true, nil
	}

	accuser.IsEliminated = true
	e.state.Log(fmt.Sprintf("%s made a false accusation and is eliminated.", accuser.Name))
	e.log.WithField("player", accuser.Name).Info("player eliminated")
	return false, nil
}

// NextTurn advances to the next non-eliminated player and resets the move
// phase. With nobody left to play the game ends instead.
func (e *Engine) NextTurn() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return ErrNotStarted
	}
	if e.state.Phase == models.PhaseGameOver {
		return fmt.Errorf("next turn: %w", ErrGameOver)
	}

	numPlayers := len(e.state.Players)
	for i := 1; i <= numPlayers; i++ {
		idx := (e.state.CurrentPlayerIndex + i) % numPlayers
		if e.state.Players[idx].IsEliminated {
			continue
		}
		e.state.CurrentPlayerIndex = idx
		e.state.Phase = models.PhaseTurnMove
		e.state.DiceRolled = false
		e.state.AvailableMoves = nil
		e.state.Log(fmt.Sprintf("It is %s's turn.", e.state.Players[idx].Name))
		return nil
	}

	e.state.Phase = models.PhaseGameOver
	e.state.Log("All players eliminated. Game Over.")
	e.log.Info("all players eliminated")
	return nil
}
