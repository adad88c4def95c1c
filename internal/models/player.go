package models

// Player is one seat at the table. Owned exclusively by the game state;
// mutated only through the engine.
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CharacterName string `json:"character_name"`
	Hand          []Card `json:"hand"`
	Position      string `json:"position"`
	IsHuman       bool   `json:"is_human"`
	IsEliminated  bool   `json:"is_eliminated"`

	// Notebook maps card name to what this player knows about it.
	// HAND entries are written at deal time and never change; SEEN
	// entries are append-only.
	Notebook map[string]CardStatus `json:"notebook"`

	// SeenCards lists card names disclosed to this player, in order,
	// without duplicates.
	SeenCards []string `json:"seen_cards"`

	// UndisprovedSuspicions lists suspicions nobody at the table could
	// disprove, in order.
	UndisprovedSuspicions []Suspicion `json:"undisproved_suspicions"`
}

// Holds reports whether the player's hand contains a card with the given name
func (p *Player) Holds(name string) bool {
	for _, c := range p.Hand {
		if c.Name == name {
			return true
		}
	}
	return false
}

// MatchingCards returns the cards in the player's hand that match the suspicion
func (p *Player) MatchingCards(s Suspicion) []Card {
	var matches []Card
	for _, c := range p.Hand {
		if s.Matches(c) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Deal adds a card to the player's hand and marks it HAND in the notebook
func (p *Player) Deal(c Card) {
	p.Hand = append(p.Hand, c)
	p.Notebook[c.Name] = StatusHand
}

// RecordSeen notes a disclosed card. Re-showing the same card is a no-op;
// a HAND entry is never downgraded to SEEN.
func (p *Player) RecordSeen(name string) {
	if _, known := p.Notebook[name]; known {
		return
	}
	p.SeenCards = append(p.SeenCards, name)
	p.Notebook[name] = StatusSeen
}

// RecordUndisproved appends a suspicion nobody could disprove
func (p *Player) RecordUndisproved(s Suspicion) {
	p.UndisprovedSuspicions = append(p.UndisprovedSuspicions, s)
}
