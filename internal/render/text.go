// Package render turns game state projections into terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/view"
)

var suspectColors = map[string]*color.Color{
	"Miss Scarlet":    color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgHiWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// Suspect colorizes a suspect name; unknown names pass through unchanged
func Suspect(name string) string {
	if c, ok := suspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// Players renders the seating table: who plays whom, where they stand and
// how many cards they hold. The current player is marked with an arrow.
func Players(sv view.StateView) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Player", "Character", "Room", "Cards", "Status"})
	for i, p := range sv.Players {
		marker := ""
		if i == sv.CurrentPlayerIndex && sv.Phase != models.PhaseGameOver {
			marker = ">"
		}
		status := "playing"
		if p.IsEliminated {
			status = "eliminated"
		}
		t.AppendRow(table.Row{marker, p.Name, Suspect(p.CharacterName), p.Position, p.HandSize, status})
	}
	return t.Render()
}

// Notebook renders the viewer's deduction sheet, one section per catalog.
// Cards the viewer knows nothing about show a question mark.
func Notebook(self view.PlayerView, suspects, weapons, rooms []string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignCenter}})
	t.AppendHeader(table.Row{"Card", "Kind", "Known"})
	appendSection := func(catalog []string, kind models.CardKind) {
		for _, name := range catalog {
			status := "?"
			if s, ok := self.Notebook[name]; ok {
				status = string(s)
			}
			t.AppendRow(table.Row{name, kind, status})
		}
		t.AppendSeparator()
	}
	appendSection(suspects, models.KindSuspect)
	appendSection(weapons, models.KindWeapon)
	appendSection(rooms, models.KindRoom)
	return t.Render()
}

// Hand renders the viewer's own cards on one line
func Hand(self view.PlayerView) string {
	names := make([]string, 0, len(self.Hand))
	for _, c := range self.Hand {
		names = append(names, c.Name)
	}
	return "Your hand: " + strings.Join(names, ", ")
}

// Disclosure renders a suspicion outcome from the viewer's perspective.
// The card identity is only present when the viewer was the asker.
func Disclosure(d models.Disclosure) string {
	if !d.HasCard {
		return "No one could disprove the suspicion."
	}
	if d.ShownCard != nil {
		return fmt.Sprintf("%s showed you: %s", d.Discloser, d.ShownCard.Name)
	}
	return fmt.Sprintf("%s showed a card.", d.Discloser)
}

// EventLog renders the last n log lines, oldest first
func EventLog(logs []string, n int) string {
	if n > 0 && len(logs) > n {
		logs = logs[len(logs)-n:]
	}
	return strings.Join(logs, "\n")
}
