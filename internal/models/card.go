package models

// CardKind classifies a card as suspect, weapon or room
type CardKind string

const (
	KindSuspect CardKind = "suspect"
	KindWeapon  CardKind = "weapon"
	KindRoom    CardKind = "room"
)

// CardStatus is a notebook entry for a card
type CardStatus string

const (
	// StatusHand marks a card in the player's own hand, set at deal time
	StatusHand CardStatus = "HAND"

	// StatusSeen marks a card another player disclosed to this player
	StatusSeen CardStatus = "SEEN"
)

// Card is one of the 21 catalog cards. Identity is Name; immutable once created.
type Card struct {
	Name string   `json:"name"`
	Kind CardKind `json:"kind"`
}

// Suspicion is a suspect/weapon/room triple, used both for suspicions and accusations
type Suspicion struct {
	Suspect string `json:"suspect"`
	Weapon  string `json:"weapon"`
	Room    string `json:"room"`
}

// Matches reports whether the card names one of the triple's three elements
func (s Suspicion) Matches(c Card) bool {
	return c.Name == s.Suspect || c.Name == s.Weapon || c.Name == s.Room
}
