// Package decider defines the boundary contract to whatever picks a
// player's moves, suspicions and accusations. The engine computes the legal
// options; a Decider only ranks them, and its answers are validated before
// they are applied.
package decider

import (
	"context"

	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

// Decider chooses among legal options on behalf of one player. The player
// argument and state are the viewer-redacted projections; implementations
// never see another player's hand. Calls may be slow round-trips and must
// honor ctx cancellation.
type Decider interface {
	// ChooseMove picks one of legalRooms. legalRooms is never empty.
	ChooseMove(ctx context.Context, p view.PlayerView, legalRooms []string, state view.StateView) (string, error)

	// ChooseSuspicion picks a suspect and weapon from the given catalogs;
	// the room of the returned triple must be currentRoom.
	ChooseSuspicion(ctx context.Context, p view.PlayerView, currentRoom string, state view.StateView, suspects, weapons []string) (models.Suspicion, error)

	// ChooseAccusation returns a triple to accuse with, or nil to hold off
	// this turn.
	ChooseAccusation(ctx context.Context, p view.PlayerView, state view.StateView) (*models.Suspicion, error)
}
