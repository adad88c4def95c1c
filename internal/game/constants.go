package game

import "github.com/Ronnykraitman/clue/internal/board"

const (
	// CardsPerPlayer is the hand size dealt at setup
	CardsPerPlayer = 4

	// AutomatedPlayers is the number of non-human seats in a 4-seat game
	AutomatedPlayers = 3

	// DiceSides is the number of faces on each of the two dice
	DiceSides = 6

	// StartingRoom is where every token begins
	StartingRoom = "Lounge"

	// HumanName is the display name of the human seat
	HumanName = "You"
)

// Rooms is the fixed room catalog
var Rooms = []string{
	"Kitchen", "Ballroom", "Conservatory",
	"Dining Room", "Billiard Room", "Library",
	"Lounge", "Hall", "Study",
}

// Weapons is the fixed weapon catalog
var Weapons = []string{
	"Candlestick", "Dagger", "Lead Pipe",
	"Revolver", "Rope", "Wrench",
}

// Suspects is the fixed suspect catalog
var Suspects = []string{
	"Miss Scarlet", "Colonel Mustard", "Mrs. White",
	"Mr. Green", "Mrs. Peacock", "Professor Plum",
}

// AutomatedNames are the display names given to automated seats, in order
var AutomatedNames = []string{"Sherlock", "Poirot", "Marple"}

// BoardGraph is the room adjacency map. Kitchen-Study and
// Conservatory-Lounge are secret passages.
var BoardGraph = map[string][]string{
	"Kitchen":       {"Ballroom", "Dining Room", "Study"},
	"Ballroom":      {"Kitchen", "Conservatory", "Billiard Room", "Dining Room"},
	"Conservatory":  {"Ballroom", "Billiard Room", "Lounge"},
	"Dining Room":   {"Kitchen", "Ballroom", "Lounge", "Hall", "Billiard Room"},
	"Billiard Room": {"Ballroom", "Conservatory", "Dining Room", "Library", "Hall"},
	"Library":       {"Billiard Room", "Conservatory", "Study", "Hall"},
	"Lounge":        {"Dining Room", "Hall", "Conservatory"},
	"Hall":          {"Dining Room", "Billiard Room", "Library", "Lounge", "Study"},
	"Study":         {"Library", "Hall", "Kitchen"},
}

// NewBoard builds the topology for the standard board
func NewBoard() (*board.Topology, error) {
	return board.New(BoardGraph)
}

func inCatalog(catalog []string, name string) bool {
	for _, entry := range catalog {
		if entry == name {
			return true
		}
	}
	return false
}
