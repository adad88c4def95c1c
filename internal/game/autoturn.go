package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Ronnykraitman/clue/internal/decider"
	"github.com/Ronnykraitman/clue/internal/models"
)

// PlayAutomatedTurn drives one complete turn for the current automated
// player: roll, collaborator-chosen move, a suspicion in the room reached,
// an optional accusation, then turn advance unless the game ended. The
// collaborator is consulted outside the engine lock; every answer is
// checked against the legal sets again before it is applied, with the first
// legal option as the deterministic substitute.
func (e *Engine) PlayAutomatedTurn(ctx context.Context, d decider.Decider) error {
	e.mu.Lock()
	if e.state == nil {
		e.mu.Unlock()
		return ErrNotStarted
	}
	if e.state.Phase == models.PhaseGameOver {
		e.mu.Unlock()
		return fmt.Errorf("automated turn: %w", ErrGameOver)
	}
	if e.state.Phase != models.PhaseTurnMove {
		e.mu.Unlock()
		return fmt.Errorf("automated turn: %w (phase %s)", ErrWrongPhase, e.state.Phase)
	}
	idx := e.state.CurrentPlayerIndex
	player := e.state.Players[idx]
	name := player.Name
	e.mu.Unlock()

	if player.IsHuman {
		return fmt.Errorf("automated turn: %w", ErrHumanTurn)
	}

	_, moves, err := e.RollDice()
	if err != nil {
		return err
	}

	if len(moves) > 0 {
		snap, err := e.Snapshot(name)
		if err != nil {
			return err
		}
		self, _ := snap.Self()
		dest, err := d.ChooseMove(ctx, self, moves, snap)
		if err != nil || !inCatalog(moves, dest) {
			e.log.WithFields(logrus.Fields{"player": name, "choice": dest}).Warn("unusable move choice, substituting first legal room")
			dest = moves[0]
		}
		if err := e.Move(idx, dest); err != nil {
			return err
		}
	}

	snap, err := e.Snapshot(name)
	if err != nil {
		return err
	}
	self, _ := snap.Self()

	suspicion, err := d.ChooseSuspicion(ctx, self, self.Position, snap, Suspects, Weapons)
	if err != nil || !inCatalog(Suspects, suspicion.Suspect) || !inCatalog(Weapons, suspicion.Weapon) {
		e.log.WithField("player", name).Warn("unusable suspicion choice, substituting catalog heads")
		suspicion = models.Suspicion{Suspect: Suspects[0], Weapon: Weapons[0]}
	}
	suspicion.Room = self.Position
	if _, err := e.Suspicion(idx, suspicion); err != nil {
		return err
	}

	// The suspicion may have taught the player enough to accuse.
	snap, err = e.Snapshot(name)
	if err != nil {
		return err
	}
	self, _ = snap.Self()
	accusation, err := d.ChooseAccusation(ctx, self, snap)
	if err != nil {
		e.log.WithError(err).WithField("player", name).Warn("accusation chooser failed, holding off")
		accusation = nil
	}
	if accusation != nil {
		if inCatalog(Suspects, accusation.Suspect) && inCatalog(Weapons, accusation.Weapon) && inCatalog(Rooms, accusation.Room) {
			if _, err := e.Accuse(idx, *accusation); err != nil {
				return err
			}
		} else {
			e.log.WithField("player", name).Warn("accusation outside catalogs, holding off")
		}
	}

	if e.State().Phase != models.PhaseGameOver {
		return e.NextTurn()
	}
	return nil
}
