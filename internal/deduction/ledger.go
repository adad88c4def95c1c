// Package deduction answers read-only questions about a player's notebook.
// The engine never calls it; it exists for decision collaborators judging
// whether an accusation is ready.
package deduction

import "github.com/Ronnykraitman/clue/internal/models"

// Unknowns returns the catalog names absent from the notebook, preserving
// catalog order. Absent means neither held nor seen.
func Unknowns(notebook map[string]models.CardStatus, catalog []string) []string {
	unknowns := make([]string, 0, len(catalog))
	for _, name := range catalog {
		if _, known := notebook[name]; !known {
			unknowns = append(unknowns, name)
		}
	}
	return unknowns
}

// Combinations is the number of solutions still consistent with the
// notebook: the product of the three unknown-set sizes.
func Combinations(notebook map[string]models.CardStatus, suspects, weapons, rooms []string) int {
	return len(Unknowns(notebook, suspects)) *
		len(Unknowns(notebook, weapons)) *
		len(Unknowns(notebook, rooms))
}

// Certain returns the one remaining solution candidate when the notebook
// has narrowed every catalog down to a single unknown.
func Certain(notebook map[string]models.CardStatus, suspects, weapons, rooms []string) (models.Suspicion, bool) {
	us := Unknowns(notebook, suspects)
	uw := Unknowns(notebook, weapons)
	ur := Unknowns(notebook, rooms)
	if len(us) != 1 || len(uw) != 1 || len(ur) != 1 {
		return models.Suspicion{}, false
	}
	return models.Suspicion{Suspect: us[0], Weapon: uw[0], Room: ur[0]}, true
}
