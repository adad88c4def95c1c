package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ronnykraitman/clue/internal/models"
)

func sampleState() *models.GameState {
	return &models.GameState{
		Players: []*models.Player{
			{
				Name:          "You",
				CharacterName: "Miss Scarlet",
				Position:      "Lounge",
				IsHuman:       true,
				Hand:          []models.Card{{Name: "Rope", Kind: models.KindWeapon}},
				Notebook:      map[string]models.CardStatus{"Rope": models.StatusHand, "Kitchen": models.StatusSeen},
				SeenCards:     []string{"Kitchen"},
			},
			{
				Name:          "Sherlock",
				CharacterName: "Colonel Mustard",
				Position:      "Hall",
				Hand: []models.Card{
					{Name: "Dagger", Kind: models.KindWeapon},
					{Name: "Study", Kind: models.KindRoom},
				},
				Notebook:  map[string]models.CardStatus{"Dagger": models.StatusHand, "Study": models.StatusHand},
				SeenCards: []string{"Rope"},
			},
		},
		CurrentPlayerIndex: 1,
		Phase:              models.PhaseTurnAction,
		Logs:               []string{"It is Sherlock's turn."},
		AvailableMoves:     []string{"Kitchen"},
		DiceRolled:         true,
	}
}

func TestProjectKeepsOwnSecrets(t *testing.T) {
	sv := Project(sampleState(), "You")

	self, ok := sv.Self()
	require.True(t, ok)
	assert.Len(t, self.Hand, 1)
	assert.Equal(t, models.StatusHand, self.Notebook["Rope"])
	assert.Equal(t, []string{"Kitchen"}, self.SeenCards)
	assert.Equal(t, 1, self.HandSize)
}

func TestProjectRedactsOtherPlayers(t *testing.T) {
	sv := Project(sampleState(), "You")

	other := sv.Players[1]
	assert.Equal(t, "Sherlock", other.Name)
	assert.Nil(t, other.Hand, "another player's cards stay hidden")
	assert.Nil(t, other.Notebook)
	assert.Nil(t, other.SeenCards)
	assert.Equal(t, 2, other.HandSize, "the card count is public")
	assert.Equal(t, "Hall", other.Position)
}

func TestProjectCopiesSharedFields(t *testing.T) {
	gs := sampleState()
	sv := Project(gs, "Sherlock")
	assert.Equal(t, gs.Phase, sv.Phase)
	assert.Equal(t, gs.CurrentPlayerIndex, sv.CurrentPlayerIndex)
	assert.Equal(t, gs.Logs, sv.Logs)
	assert.Equal(t, gs.AvailableMoves, sv.AvailableMoves)
	assert.True(t, sv.DiceRolled)

	// Mutating the projection must not touch the canonical state.
	sv.Logs[0] = "tampered"
	assert.Equal(t, "It is Sherlock's turn.", gs.Logs[0])
}

func TestProjectUnknownViewerSeesEverythingRedacted(t *testing.T) {
	sv := Project(sampleState(), "Stranger")
	for _, p := range sv.Players {
		assert.Nil(t, p.Hand)
		assert.Nil(t, p.Notebook)
	}
	_, ok := sv.Self()
	assert.False(t, ok)
}

func TestProjectionSerializesWithoutHiddenFields(t *testing.T) {
	raw, err := json.Marshal(Project(sampleState(), "You"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Dagger", "a redacted hand must not leak through serialization")
	assert.Contains(t, string(raw), "Rope")
}

func TestRedactDisclosure(t *testing.T) {
	card := &models.Card{Name: "Dagger", Kind: models.KindWeapon}
	d := models.Disclosure{HasCard: true, Discloser: "Sherlock", ShownCard: card}

	forAsker := RedactDisclosure(d, "You", "You")
	require.NotNil(t, forAsker.ShownCard)
	assert.Equal(t, "Dagger", forAsker.ShownCard.Name)

	forOther := RedactDisclosure(d, "Poirot", "You")
	assert.Nil(t, forOther.ShownCard, "only the asker learns which card was shown")
	assert.True(t, forOther.HasCard, "the disclosure itself is public")
	assert.Equal(t, "Sherlock", forOther.Discloser)
}
