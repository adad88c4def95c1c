package decider

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

// Validated wraps another Decider and enforces the contract on its answers:
// names outside the legal sets are substituted deterministically (first
// legal option), and an error or timeout degrades to the random fallback so
// an automated game never stalls on a dead collaborator.
type Validated struct {
	inner    Decider
	fallback *Random
	log      *logrus.Logger
}

// NewValidated wraps inner. fallback must be non-nil; a nil logger gets the
// logrus standard logger.
func NewValidated(inner Decider, fallback *Random, log *logrus.Logger) *Validated {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Validated{inner: inner, fallback: fallback, log: log}
}

// ChooseMove delegates, degrades to a random legal room on error, and
// substitutes the first legal room for an out-of-set answer.
func (v *Validated) ChooseMove(ctx context.Context, p view.PlayerView, legalRooms []string, state view.StateView) (string, error) {
	room, err := v.inner.ChooseMove(ctx, p, legalRooms, state)
	if err != nil {
		v.log.WithError(err).WithField("player", p.Name).Warn("move chooser failed, picking at random")
		return v.fallback.ChooseMove(ctx, p, legalRooms, state)
	}
	if !contains(legalRooms, room) {
		v.log.WithFields(logrus.Fields{"player": p.Name, "room": room}).Warn("illegal move choice, substituting first legal room")
		return legalRooms[0], nil
	}
	return room, nil
}

// ChooseSuspicion delegates, degrades to random on error, pins the room to
// currentRoom and substitutes catalog heads for fabricated names.
func (v *Validated) ChooseSuspicion(ctx context.Context, p view.PlayerView, currentRoom string, state view.StateView, suspects, weapons []string) (models.Suspicion, error) {
	s, err := v.inner.ChooseSuspicion(ctx, p, currentRoom, state, suspects, weapons)
	if err != nil {
		v.log.WithError(err).WithField("player", p.Name).Warn("suspicion chooser failed, picking at random")
		return v.fallback.ChooseSuspicion(ctx, p, currentRoom, state, suspects, weapons)
	}
	if !contains(suspects, s.Suspect) {
		v.log.WithFields(logrus.Fields{"player": p.Name, "suspect": s.Suspect}).Warn("suspect outside catalog, substituting")
		s.Suspect = suspects[0]
	}
	if !contains(weapons, s.Weapon) {
		v.log.WithFields(logrus.Fields{"player": p.Name, "weapon": s.Weapon}).Warn("weapon outside catalog, substituting")
		s.Weapon = weapons[0]
	}
	if s.Room != currentRoom {
		v.log.WithFields(logrus.Fields{"player": p.Name, "room": s.Room}).Warn("suspicion room is not the current room, pinning")
		s.Room = currentRoom
	}
	return s, nil
}

// ChooseAccusation delegates; on error or on a triple with fabricated names
// the accusation is withheld rather than risked.
func (v *Validated) ChooseAccusation(ctx context.Context, p view.PlayerView, state view.StateView) (*models.Suspicion, error) {
	s, err := v.inner.ChooseAccusation(ctx, p, state)
	if err != nil {
		v.log.WithError(err).WithField("player", p.Name).Warn("accusation chooser failed, holding off")
		return nil, nil
	}
	if s == nil {
		return nil, nil
	}
	if !contains(v.fallback.suspects, s.Suspect) || !contains(v.fallback.weapons, s.Weapon) || !contains(v.fallback.rooms, s.Room) {
		v.log.WithFields(logrus.Fields{
			"player":  p.Name,
			"suspect": s.Suspect,
			"weapon":  s.Weapon,
			"room":    s.Room,
		}).Warn("accusation outside catalogs, holding off")
		return nil, nil
	}
	return s, nil
}

func contains(options []string, name string) bool {
	for _, o := range options {
		if o == name {
			return true
		}
	}
	return false
}
