package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game"
	"github.com/mpsalisbury/president/pkg/game/president"
)

// Terminal reads a human player's moves from a line-oriented input.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// ChooseIntent prompts the seat at index until a well-formed move is entered.
// An empty line accepts the recommendation; "pass" skips.
func (t *Terminal) ChooseIntent(gs president.GameState, index int) (president.Intent, error) {
	fmt.Fprintln(t.out, gs)
	recommended := t.recommend(gs, index)
	shown := recommended.String()
	if recommended != nil && len(recommended) == 0 {
		shown = "pass"
	}
	for {
		if gs.Phase == game.Trading {
			fmt.Fprintf(t.out, "Cards to trade [%s]: ", shown)
		} else {
			fmt.Fprintf(t.out, "Cards to play, or pass [%s]: ", shown)
		}
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return president.Intent{}, err
			}
			return president.Intent{}, io.EOF
		}
		line := strings.TrimSpace(t.in.Text())
		switch {
		case line == "" && recommended == nil:
			fmt.Fprintln(t.out, "No recommendation, enter cards")
			continue
		case line == "":
			return president.Intent{PlayerIndex: index, Skip: len(recommended) == 0, Cards: recommended}, nil
		case strings.EqualFold(line, "pass"):
			return president.Intent{PlayerIndex: index, Skip: true}, nil
		}
		cs, err := cards.ParseCards(strings.Fields(line))
		if err == nil {
			return president.Intent{PlayerIndex: index, Cards: cs}, nil
		}
		fmt.Fprintf(t.out, "%v, try again\n", err)
	}
}

// Rejected tells the player why a move was refused.
func (t *Terminal) Rejected(err error) {
	fmt.Fprintf(t.out, "Can't do that: %v\n", err)
}

func (t *Terminal) recommend(gs president.GameState, index int) cards.Cards {
	legal := gs.LegalPlays
	if gs.Phase == game.Trading {
		need := gs.Players[index].Role.TradeCount()
		if len(legal) < need {
			return nil
		}
		if gs.Players[index].Role.GivesBest() {
			return legal[len(legal)-need:]
		}
		return legal[:need]
	}
	var options []cards.Cards
	for _, g := range legal.RankGroups() {
		n := gs.RequiredCount
		if n == 0 {
			n = len(g)
		}
		options = append(options, g[:n])
	}
	if len(gs.CurrentTrick) > 0 {
		options = append(options, cards.Cards{})
	}
	return RecommendPlay(options)
}
