package deduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ronnykraitman/clue/internal/models"
)

var (
	suspects = []string{"Miss Scarlet", "Colonel Mustard", "Mrs. White"}
	weapons  = []string{"Rope", "Dagger"}
	rooms    = []string{"Lounge", "Kitchen"}
)

func TestUnknownsPreservesCatalogOrder(t *testing.T) {
	nb := map[string]models.CardStatus{"Colonel Mustard": models.StatusHand}
	assert.Equal(t, []string{"Miss Scarlet", "Mrs. White"}, Unknowns(nb, suspects))
}

func TestUnknownsEmptyNotebook(t *testing.T) {
	assert.Equal(t, suspects, Unknowns(map[string]models.CardStatus{}, suspects))
	assert.Equal(t, suspects, Unknowns(nil, suspects))
}

func TestCombinations(t *testing.T) {
	nb := map[string]models.CardStatus{
		"Miss Scarlet": models.StatusSeen,
		"Rope":         models.StatusHand,
	}
	// 2 suspects * 1 weapon * 2 rooms
	assert.Equal(t, 4, Combinations(nb, suspects, weapons, rooms))
	assert.Equal(t, 12, Combinations(nil, suspects, weapons, rooms))
}

func TestCertain(t *testing.T) {
	nb := map[string]models.CardStatus{
		"Miss Scarlet":    models.StatusSeen,
		"Colonel Mustard": models.StatusHand,
		"Rope":            models.StatusSeen,
		"Lounge":          models.StatusHand,
	}
	s, ok := Certain(nb, suspects, weapons, rooms)
	require.True(t, ok)
	assert.Equal(t, models.Suspicion{Suspect: "Mrs. White", Weapon: "Dagger", Room: "Kitchen"}, s)
}

func TestCertainNeedsExactlyOneUnknownPerCatalog(t *testing.T) {
	nb := map[string]models.CardStatus{"Miss Scarlet": models.StatusSeen}
	_, ok := Certain(nb, suspects, weapons, rooms)
	assert.False(t, ok)

	// Everything known leaves no candidate at all.
	full := map[string]models.CardStatus{}
	for _, n := range append(append(append([]string{}, suspects...), weapons...), rooms...) {
		full[n] = models.StatusSeen
	}
	_, ok = Certain(full, suspects, weapons, rooms)
	assert.False(t, ok)
}
