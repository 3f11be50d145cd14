// Package shell is the interactive front end: it reads the player's answers
// from a readline prompt and prints what happens in the game.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/hand"
)

const (
	PromptNumHands   = "Enter total number of hands: "
	PromptSubstitute = "Would you like to substitute a letter? "
	PromptLetter     = "Which letter would you like to replace: "
	PromptWord       = "Enter word, or '" + game.EndToken + "' to indicate that you are finished: "
	PromptReplay     = "Would you like to replay the hand? "
	PromptPlayAgain  = "Would you like to play another game? "
)

// ErrQuit is returned when the player closes the input (Ctrl-D or Ctrl-C).
var ErrQuit = errors.New("player quit")

// lineReader is the part of a readline instance the shell uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type ShellController struct {
	l   lineReader
	out io.Writer

	config *config.Config
	rules  *game.GameRules

	// newController builds the controller for each game; tests swap it out
	// for one with a scripted dealer.
	newController func(p game.Player) *game.Controller
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, rules *game.GameRules) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          PromptNumHands,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc := newShellController(cfg, rules, l, l.Stdout())
	return sc, nil
}

func newShellController(cfg *config.Config, rules *game.GameRules, l lineReader,
	out io.Writer) *ShellController {

	sc := &ShellController{l: l, out: out, config: cfg, rules: rules}
	sc.newController = func(p game.Player) *game.Controller {
		return game.NewRandomController(sc.config, sc.rules, p)
	}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showHand(h hand.Hand) {
	sc.showMessage("Current Hand:")
	sc.showMessage(h.String())
}

// ask shows a prompt and waits for a line.
func (sc *ShellController) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sc.l.SetPrompt(prompt)
	line, err := sc.l.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", ErrQuit
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (sc *ShellController) askYesNo(ctx context.Context, prompt string) (bool, error) {
	line, err := sc.ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true
	}
	return false
}

// ParseNumHands parses the number of hands to play. Fractions are allowed;
// the game counts down a whole hand at a time until it is no longer positive.
func ParseNumHands(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("the number of hands must be positive")
	}
	return n, nil
}

func (sc *ShellController) askNumHands(ctx context.Context) (float64, error) {
	for {
		line, err := sc.ask(ctx, PromptNumHands)
		if err != nil {
			return 0, err
		}
		n, err := ParseNumHands(line)
		if err != nil {
			sc.showMessage("Error: " + err.Error())
			continue
		}
		return n, nil
	}
}

func (sc *ShellController) WantsSubstitution(ctx context.Context, h hand.Hand) (bool, error) {
	return sc.askYesNo(ctx, PromptSubstitute)
}

func (sc *ShellController) LetterToSubstitute(ctx context.Context, h hand.Hand) (rune, error) {
	for {
		line, err := sc.ask(ctx, PromptLetter)
		if err != nil {
			return 0, err
		}
		if utf8.RuneCountInString(line) != 1 {
			sc.showMessage("Please enter a single letter.")
			continue
		}
		r, _ := utf8.DecodeRuneInString(line)
		return r, nil
	}
}

func (sc *ShellController) NextWord(ctx context.Context, h hand.Hand) (string, error) {
	sc.showMessage("")
	sc.showHand(h)
	return sc.ask(ctx, PromptWord)
}

func (sc *ShellController) WantsReplay(ctx context.Context, handScore int) (bool, error) {
	return sc.askYesNo(ctx, PromptReplay)
}

func (sc *ShellController) Notify(evt game.Event) {
	switch evt.Type {
	case game.EventHandDealt:
		sc.showMessage("")
		sc.showHand(evt.Hand)
	case game.EventSubstitutionRejected:
		sc.showMessage("Error: " + evt.Err.Error())
	case game.EventWordScored:
		sc.showMessage(fmt.Sprintf("%s earned %d points. Total: %d",
			evt.Word, evt.Points, evt.HandScore))
	case game.EventWordRejected:
		sc.showMessage("That is not a valid word. Please choose another word.")
	case game.EventHandEnded:
		sc.showMessage(fmt.Sprintf("Total score for this hand: %d", evt.HandScore))
		sc.showMessage("----------")
	case game.EventReplayStarted:
		sc.showMessage("Replaying the hand; the better score counts.")
	case game.EventGameOver:
		sc.showMessage(fmt.Sprintf("Total score over all hands: %d", evt.TotalScore))
	}
}

// PlayGame asks for the number of hands and plays one game to the end.
func (sc *ShellController) PlayGame(ctx context.Context) (int, error) {
	numHands, err := sc.askNumHands(ctx)
	if err != nil {
		return 0, err
	}
	log.Debug().Float64("hands", numHands).Msg("starting game")
	return sc.newController(sc).Play(ctx, numHands)
}

// Loop plays games until the player declines another one or closes the
// input, then signals sig.
func (sc *ShellController) Loop(ctx context.Context, sig chan os.Signal) {
	defer sc.l.Close()

	for {
		total, err := sc.PlayGame(ctx)
		if err != nil {
			if !errors.Is(err, ErrQuit) && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("game ended with an error")
			}
			break
		}
		log.Info().Int("total", total).Msg("game finished")
		again, err := sc.askYesNo(ctx, PromptPlayAgain)
		if err != nil || !again {
			break
		}
	}
	log.Debug().Msg("Exiting readline loop...")
	sig <- syscall.SIGINT
}
