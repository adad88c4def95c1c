// Package view projects the canonical game state into what a single player
// is allowed to see. The canonical state always holds full truth; redaction
// happens here, at the boundary, never in storage.
package view

import "github.com/Ronnykraitman/clue/internal/models"

// PlayerView is one seat as seen by a viewer. Hand, notebook, seen cards
// and undisproved suspicions are populated only on the viewer's own entry.
type PlayerView struct {
	Name          string   `json:"name"`
	CharacterName string   `json:"character_name"`
	Position      string   `json:"position"`
	IsHuman       bool     `json:"is_human"`
	IsEliminated  bool     `json:"is_eliminated"`
	HandSize      int      `json:"hand_size"`

	Hand                  []models.Card                `json:"hand,omitempty"`
	Notebook              map[string]models.CardStatus `json:"notebook,omitempty"`
	SeenCards             []string                     `json:"seen_cards,omitempty"`
	UndisprovedSuspicions []models.Suspicion           `json:"undisproved_suspicions,omitempty"`
}

// StateView is the serializable, per-viewer projection of the game state
type StateView struct {
	Viewer             string           `json:"viewer"`
	Players            []PlayerView     `json:"players"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	Phase              models.GamePhase `json:"phase"`
	Winner             string           `json:"winner,omitempty"`
	Logs               []string         `json:"logs"`
	AvailableMoves     []string         `json:"available_moves"`
	DiceRolled         bool             `json:"dice_rolled"`
}

// Project builds the viewer's picture of the state. Viewer is a player
// name; an unknown viewer sees everything redacted.
func Project(gs *models.GameState, viewer string) StateView {
	sv := StateView{
		Viewer:             viewer,
		Players:            make([]PlayerView, 0, len(gs.Players)),
		CurrentPlayerIndex: gs.CurrentPlayerIndex,
		Phase:              gs.Phase,
		Winner:             gs.Winner,
		Logs:               append([]string(nil), gs.Logs...),
		AvailableMoves:     append([]string(nil), gs.AvailableMoves...),
		DiceRolled:         gs.DiceRolled,
	}
	for _, p := range gs.Players {
		pv := PlayerView{
			Name:          p.Name,
			CharacterName: p.CharacterName,
			Position:      p.Position,
			IsHuman:       p.IsHuman,
			IsEliminated:  p.IsEliminated,
			HandSize:      len(p.Hand),
		}
		if p.Name == viewer {
			pv.Hand = append([]models.Card(nil), p.Hand...)
			pv.Notebook = make(map[string]models.CardStatus, len(p.Notebook))
			for name, status := range p.Notebook {
				pv.Notebook[name] = status
			}
			pv.SeenCards = append([]string(nil), p.SeenCards...)
			pv.UndisprovedSuspicions = append([]models.Suspicion(nil), p.UndisprovedSuspicions...)
		}
		sv.Players = append(sv.Players, pv)
	}
	return sv
}

// Self returns the viewer's own entry
func (sv StateView) Self() (PlayerView, bool) {
	for _, p := range sv.Players {
		if p.Name == sv.Viewer {
			return p, true
		}
	}
	return PlayerView{}, false
}

// RedactDisclosure blanks the shown-card identity for everyone but the
// asker. The fact that somebody showed a card stays public.
func RedactDisclosure(d models.Disclosure, viewer, asker string) models.Disclosure {
	if viewer != asker {
		d.ShownCard = nil
	}
	return d
}
