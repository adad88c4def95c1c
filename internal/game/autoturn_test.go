package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

// scripted is a canned decision collaborator for driving automated turns
type scripted struct {
	move       string
	moveErr    error
	suspicion  models.Suspicion
	accusation *models.Suspicion
}

func (s *scripted) ChooseMove(context.Context, view.PlayerView, []string, view.StateView) (string, error) {
	return s.move, s.moveErr
}

func (s *scripted) ChooseSuspicion(_ context.Context, _ view.PlayerView, currentRoom string, _ view.StateView, _, _ []string) (models.Suspicion, error) {
	out := s.suspicion
	out.Room = currentRoom
	return out, nil
}

func (s *scripted) ChooseAccusation(context.Context, view.PlayerView, view.StateView) (*models.Suspicion, error) {
	return s.accusation, nil
}

// automatedFirst reseats the rigged table so the current player is automated
func automatedFirst(t *testing.T, src rand.Source) *Engine {
	t.Helper()
	e := riggedEngine(t, src, models.PhaseTurnMove)
	e.state.Players[0], e.state.Players[1] = e.state.Players[1], e.state.Players[0]
	return e
}

func TestPlayAutomatedTurnMovesAndSuspects(t *testing.T) {
	e := automatedFirst(t, threeSource{}) // rolls an 8: the whole board is in reach from the Lounge
	d := &scripted{
		move:      "Kitchen",
		suspicion: models.Suspicion{Suspect: "Mr. Green", Weapon: "Dagger"},
	}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))

	state := e.State()
	assert.Equal(t, "Kitchen", state.Players[0].Position)
	assert.Contains(t, state.Logs, "Sherlock moved to Kitchen")
	assert.Contains(t, state.Logs, "Sherlock suspects Mr. Green with Dagger in Kitchen")
	assert.Equal(t, 1, state.CurrentPlayerIndex, "turn passed on")
	assert.Equal(t, models.PhaseTurnMove, state.Phase)
	assert.False(t, state.DiceRolled)
}

func TestPlayAutomatedTurnForcedStay(t *testing.T) {
	e := automatedFirst(t, zeroSource{}) // rolls a 2: nothing is in reach from the Lounge
	d := &scripted{suspicion: models.Suspicion{Suspect: "Mrs. Peacock", Weapon: "Revolver"}}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))

	state := e.State()
	assert.Equal(t, StartingRoom, state.Players[0].Position)
	assert.Contains(t, state.Logs, "Sherlock suspects Mrs. Peacock with Revolver in Lounge")
	assert.Equal(t, 1, state.CurrentPlayerIndex)
}

func TestPlayAutomatedTurnSubstitutesBadMove(t *testing.T) {
	e := automatedFirst(t, threeSource{})
	d := &scripted{
		move:      "Narnia",
		suspicion: models.Suspicion{Suspect: "Mr. Green", Weapon: "Dagger"},
	}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))

	pos := e.State().Players[0].Position
	assert.NotEqual(t, StartingRoom, pos, "a fabricated room falls back to the first legal destination")
	assert.Greater(t, e.board.Distance(StartingRoom, pos), 0)
}

func TestPlayAutomatedTurnDegradesOnMoveError(t *testing.T) {
	e := automatedFirst(t, threeSource{})
	d := &scripted{
		moveErr:   errors.New("collaborator down"),
		suspicion: models.Suspicion{Suspect: "Mr. Green", Weapon: "Dagger"},
	}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))
	assert.NotEqual(t, StartingRoom, e.State().Players[0].Position)
}

func TestPlayAutomatedTurnAccusationWins(t *testing.T) {
	e := automatedFirst(t, zeroSource{})
	d := &scripted{
		suspicion:  models.Suspicion{Suspect: "Mrs. Peacock", Weapon: "Revolver"},
		accusation: &models.Suspicion{Suspect: "Professor Plum", Weapon: "Rope", Room: "Study"},
	}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))

	state := e.State()
	assert.Equal(t, models.PhaseGameOver, state.Phase)
	assert.Equal(t, "Sherlock", state.Winner)
}

func TestPlayAutomatedTurnWrongAccusationEliminates(t *testing.T) {
	e := automatedFirst(t, zeroSource{})
	d := &scripted{
		suspicion:  models.Suspicion{Suspect: "Mrs. Peacock", Weapon: "Revolver"},
		accusation: &models.Suspicion{Suspect: "Miss Scarlet", Weapon: "Rope", Room: "Study"},
	}
	require.NoError(t, e.PlayAutomatedTurn(context.Background(), d))

	state := e.State()
	assert.True(t, state.Players[0].IsEliminated)
	assert.NotEqual(t, models.PhaseGameOver, state.Phase)
	assert.Equal(t, 1, state.CurrentPlayerIndex, "the table moves on after the elimination")
}

func TestPlayAutomatedTurnRejectsHuman(t *testing.T) {
	e := riggedEngine(t, zeroSource{}, models.PhaseTurnMove) // human sits first
	d := &scripted{}
	require.ErrorIs(t, e.PlayAutomatedTurn(context.Background(), d), ErrHumanTurn)
}

func TestPlayAutomatedTurnBeforeInitialize(t *testing.T) {
	e := New(testBoard(t), nil, testLogger())
	require.ErrorIs(t, e.PlayAutomatedTurn(context.Background(), &scripted{}), ErrNotStarted)
}
