package models

// GamePhase represents the current state of the game
type GamePhase string

const (
	PhaseSetup      GamePhase = "setup"
	PhaseTurnMove   GamePhase = "player_turn_move"
	PhaseTurnAction GamePhase = "player_turn_action"
	PhaseGameOver   GamePhase = "game_over"
)
