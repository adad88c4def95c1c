package models

// GameState is the single mutable record of a running game. The engine is
// the only writer; everything externally visible goes through a per-viewer
// projection.
type GameState struct {
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	Phase              GamePhase `json:"phase"`
	Winner             string    `json:"winner,omitempty"`
	Logs               []string  `json:"logs"`
	AvailableMoves     []string  `json:"available_moves"`
	DiceRolled         bool      `json:"dice_rolled"`
}

// CurrentPlayer returns the player whose turn it is
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.CurrentPlayerIndex]
}

// PlayerByCharacter finds the player controlling the named suspect
func (gs *GameState) PlayerByCharacter(character string) (*Player, bool) {
	for _, p := range gs.Players {
		if p.CharacterName == character {
			return p, true
		}
	}
	return nil, false
}

// Log appends a human-readable event line
func (gs *GameState) Log(line string) {
	gs.Logs = append(gs.Logs, line)
}
