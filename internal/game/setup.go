package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ronnykraitman/clue/internal/models"
)

// Initialize shuffles the full catalog, withholds one card of each kind as
// the solution, seats the human plus three automated players in the starting
// room and deals the remaining pool round by round. Cards that do not fit an
// even deal stay undealt and hidden.
func (e *Engine) Initialize(humanCharacter string) (*models.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !inCatalog(Suspects, humanCharacter) {
		return nil, fmt.Errorf("initialize with %q: %w", humanCharacter, ErrUnknownCharacter)
	}

	deck := buildDeck()
	e.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var err error
	e.truth, deck, err = drawSolution(deck)
	if err != nil {
		return nil, err
	}

	players := []*models.Player{newPlayer(HumanName, humanCharacter, true)}
	for i, character := range e.automatedCharacters(humanCharacter) {
		players = append(players, newPlayer(AutomatedNames[i], character, false))
	}

	e.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	for round := 0; round < CardsPerPlayer; round++ {
		for _, p := range players {
			if len(deck) == 0 {
				break
			}
			p.Deal(deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
	}
	// Whatever is left in deck stays hidden for the whole game.

	e.state = &models.GameState{
		Players:            players,
		CurrentPlayerIndex: 0,
		Phase:              models.PhaseTurnMove,
		Logs:               []string{fmt.Sprintf("Game initialized. All players at %s.", StartingRoom)},
	}

	e.log.WithFields(logrus.Fields{
		"human":   humanCharacter,
		"players": len(players),
		"undealt": len(deck),
	}).Info("game initialized")
	return e.state, nil
}

// buildDeck creates the full 21-card catalog
func buildDeck() []models.Card {
	deck := make([]models.Card, 0, len(Rooms)+len(Weapons)+len(Suspects))
	for _, r := range Rooms {
		deck = append(deck, models.Card{Name: r, Kind: models.KindRoom})
	}
	for _, w := range Weapons {
		deck = append(deck, models.Card{Name: w, Kind: models.KindWeapon})
	}
	for _, s := range Suspects {
		deck = append(deck, models.Card{Name: s, Kind: models.KindSuspect})
	}
	return deck
}

// drawSolution takes the first card of each kind out of the shuffled deck
func drawSolution(deck []models.Card) (Solution, []models.Card, error) {
	var truth Solution
	taken := map[models.CardKind]bool{}
	rest := make([]models.Card, 0, len(deck)-3)
	for _, c := range deck {
		if !taken[c.Kind] {
			taken[c.Kind] = true
			switch c.Kind {
			case models.KindSuspect:
				truth.Suspect = c
			case models.KindWeapon:
				truth.Weapon = c
			case models.KindRoom:
				truth.Room = c
			}
			continue
		}
		rest = append(rest, c)
	}
	if !taken[models.KindSuspect] || !taken[models.KindWeapon] || !taken[models.KindRoom] {
		return Solution{}, nil, fmt.Errorf("draw solution: catalog is missing a card kind")
	}
	return truth, rest, nil
}

// automatedCharacters picks a random subset of the suspects the human did
// not take, one per automated seat
func (e *Engine) automatedCharacters(humanCharacter string) []string {
	available := make([]string, 0, len(Suspects)-1)
	for _, s := range Suspects {
		if s != humanCharacter {
			available = append(available, s)
		}
	}
	e.rng.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })
	return available[:AutomatedPlayers]
}

func newPlayer(name, character string, human bool) *models.Player {
	return &models.Player{
		ID:            uuid.NewString(),
		Name:          name,
		CharacterName: character,
		Position:      StartingRoom,
		IsHuman:       human,
		Notebook:      make(map[string]models.CardStatus),
	}
}
