package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/Ronnykraitman/clue/internal/decider"
	"github.com/Ronnykraitman/clue/internal/game"
	"github.com/Ronnykraitman/clue/internal/models"
	"github.com/Ronnykraitman/clue/internal/render"
	"github.com/Ronnykraitman/clue/internal/store"
	"github.com/Ronnykraitman/clue/internal/view"
)

func main() {
	// .env is optional; environment wins over defaults either way.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	seed := time.Now().UnixNano()
	if s := os.Getenv("SEED"); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatalf("invalid SEED %q: %v", s, err)
		}
		seed = parsed
	}
	rng := rand.New(rand.NewSource(seed))

	topology, err := game.NewBoard()
	if err != nil {
		log.Fatalf("board setup failed: %v", err)
	}
	engine := game.New(topology, rng, log)
	sessions := store.NewSessionStore()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	character := os.Getenv("CHARACTER")
	if character == "" {
		character, err = promptChoice(line, "Pick your character", game.Suspects)
		if err != nil {
			fmt.Println("\nGoodbye.")
			return
		}
	}

	if _, err := engine.Initialize(character); err != nil {
		log.Fatalf("initialize failed: %v", err)
	}
	session := sessions.Start(engine)
	defer sessions.End(session.ID)

	// Automated seats share one validated random chooser; the human's
	// answers run through the same validation.
	automated := decider.NewValidated(
		decider.NewRandom(rng, game.Suspects, game.Weapons, game.Rooms),
		decider.NewRandom(rng, game.Suspects, game.Weapons, game.Rooms),
		log,
	)
	human := decider.NewValidated(
		&terminalDecider{line: line},
		decider.NewRandom(rng, game.Suspects, game.Weapons, game.Rooms),
		log,
	)

	color.New(color.Bold).Printf("\nYou are %s. All players start in the %s.\n\n", render.Suspect(character), game.StartingRoom)

	ctx := context.Background()
	seenLogs := 0
	for engine.State().Phase != models.PhaseGameOver {
		state := engine.State()
		current := state.CurrentPlayer()
		if current.IsHuman {
			if err := playHumanTurn(ctx, engine, human, line); err != nil {
				fmt.Println("\nGoodbye.")
				return
			}
		} else {
			if err := engine.PlayAutomatedTurn(ctx, automated); err != nil {
				log.Fatalf("automated turn failed: %v", err)
			}
		}
		seenLogs = printNewLogs(engine, seenLogs)
	}

	final := engine.State()
	if final.Winner != "" {
		color.New(color.Bold, color.FgGreen).Printf("\n%s won the game!\n", final.Winner)
	} else {
		color.New(color.Bold, color.FgRed).Println("\nEveryone is eliminated. The mystery stays unsolved.")
	}
}

// playHumanTurn walks the human through one full turn at the prompt
func playHumanTurn(ctx context.Context, engine *game.Engine, human decider.Decider, line *liner.State) error {
	snap, err := engine.Snapshot(game.HumanName)
	if err != nil {
		return err
	}
	self, _ := snap.Self()

	fmt.Println(render.Players(snap))
	fmt.Println(render.Hand(self))
	if answer, err := line.Prompt("Show notebook? [y/N] "); err == nil && strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Println(render.Notebook(self, game.Suspects, game.Weapons, game.Rooms))
	}

	if _, err := line.Prompt("Press enter to roll the dice"); err != nil {
		return err
	}
	roll, moves, err := engine.RollDice()
	if err != nil {
		return err
	}
	fmt.Printf("You rolled a %d.\n", roll)

	if len(moves) == 0 {
		fmt.Printf("No room is in reach. You stay in the %s.\n", self.Position)
	} else {
		snap, _ = engine.Snapshot(game.HumanName)
		self, _ = snap.Self()
		dest, err := human.ChooseMove(ctx, self, moves, snap)
		if err != nil {
			return err
		}
		if err := engine.Move(snap.CurrentPlayerIndex, dest); err != nil {
			return err
		}
		fmt.Printf("You move to the %s.\n", dest)
	}

	snap, _ = engine.Snapshot(game.HumanName)
	self, _ = snap.Self()
	action, err := promptChoice(line, "Choose an action", []string{"suspect", "accuse", "pass"})
	if err != nil {
		return err
	}
	idx := snap.CurrentPlayerIndex

	switch action {
	case "suspect":
		suspicion, err := human.ChooseSuspicion(ctx, self, self.Position, snap, game.Suspects, game.Weapons)
		if err != nil {
			return err
		}
		outcome, err := engine.Suspicion(idx, suspicion)
		if err != nil {
			return err
		}
		fmt.Println(render.Disclosure(view.RedactDisclosure(outcome, game.HumanName, game.HumanName)))
	case "accuse":
		accusation, err := human.ChooseAccusation(ctx, self, snap)
		if err != nil {
			return err
		}
		if accusation != nil {
			correct, err := engine.Accuse(idx, *accusation)
			if err != nil {
				return err
			}
			if !correct {
				color.New(color.FgRed).Println("Wrong. You are out of the game.")
			}
		}
	}

	if engine.State().Phase != models.PhaseGameOver {
		return engine.NextTurn()
	}
	return nil
}

// terminalDecider asks the human player at the prompt. It sits behind the
// same Validated wrapper as the automated seats, so typos degrade to legal
// substitutes instead of crashing the turn.
type terminalDecider struct {
	line *liner.State
}

func (t *terminalDecider) ChooseMove(_ context.Context, _ view.PlayerView, legalRooms []string, _ view.StateView) (string, error) {
	return promptChoice(t.line, "Where do you go?", legalRooms)
}

func (t *terminalDecider) ChooseSuspicion(_ context.Context, _ view.PlayerView, currentRoom string, _ view.StateView, suspects, weapons []string) (models.Suspicion, error) {
	suspect, err := promptChoice(t.line, "Whom do you suspect?", suspects)
	if err != nil {
		return models.Suspicion{}, err
	}
	weapon, err := promptChoice(t.line, "With which weapon?", weapons)
	if err != nil {
		return models.Suspicion{}, err
	}
	return models.Suspicion{Suspect: suspect, Weapon: weapon, Room: currentRoom}, nil
}

func (t *terminalDecider) ChooseAccusation(_ context.Context, _ view.PlayerView, _ view.StateView) (*models.Suspicion, error) {
	suspect, err := promptChoice(t.line, "Accuse which suspect?", game.Suspects)
	if err != nil {
		return nil, err
	}
	weapon, err := promptChoice(t.line, "With which weapon?", game.Weapons)
	if err != nil {
		return nil, err
	}
	room, err := promptChoice(t.line, "In which room?", game.Rooms)
	if err != nil {
		return nil, err
	}
	return &models.Suspicion{Suspect: suspect, Weapon: weapon, Room: room}, nil
}

// promptChoice lists numbered options and reads one back, by number or name
func promptChoice(line *liner.State, label string, options []string) (string, error) {
	fmt.Println(label)
	for i, o := range options {
		fmt.Printf("  %d) %s\n", i+1, render.Suspect(o))
	}
	for {
		answer, err := line.Prompt("> ")
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, o := range options {
			if strings.EqualFold(o, answer) {
				return o, nil
			}
		}
		fmt.Println("Not an option, try again.")
	}
}

// printNewLogs echoes engine log lines added since the last call
func printNewLogs(engine *game.Engine, seen int) int {
	logs := engine.State().Logs
	for _, l := range logs[seen:] {
		fmt.Println("  " + l)
	}
	return len(logs)
}
