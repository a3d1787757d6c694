package president

import (
	"fmt"
	"strings"

	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game"
)

// GameState is a read-only snapshot of a game. Nothing in it aliases the
// game's own storage.
type GameState struct {
	Id                 string
	Phase              game.Phase
	Round              int
	TotalRounds        int
	Players            []PlayerState
	CurrentPlayerIndex int
	CurrentTrick       cards.Cards
	RequiredCount      int
	// LegalPlays are the viewer's cards that may be played or offered now.
	// Empty unless it is the viewer's turn.
	LegalPlays  cards.Cards
	FinishOrder []string
}

type PlayerState struct {
	Name        string
	Role        Role
	NumCards    int
	Cards       cards.Cards // nil for anyone but the viewer
	IsAutomated bool
	IsCurrent   bool
	HasOffered  bool
}

// Everyone views the game from the table itself and sees every hand.
const Everyone = -1

// State projects the game for the player seated at viewer. Any other viewer
// but Everyone sees no hands.
func (g *Game) State(viewer int) GameState {
	gs := GameState{
		Id:                 g.id,
		Phase:              g.Phase(),
		Round:              g.currentRoundIndex,
		TotalRounds:        g.totalRounds,
		CurrentPlayerIndex: g.currentPlayerIndex,
		CurrentTrick:       g.currentTrick.Cards(),
		RequiredCount:      g.currentTrick.RequiredCount(),
		LegalPlays:         cards.Cards{},
	}
	for i, p := range g.players {
		ps := PlayerState{
			Name:        p.name,
			Role:        p.role,
			NumCards:    p.HandSize(),
			IsAutomated: p.IsAutomated(),
			IsCurrent:   i == g.currentPlayerIndex,
			HasOffered:  p.HasOffered(),
		}
		if i == viewer || viewer == Everyone {
			ps.Cards = p.Hand()
		}
		gs.Players = append(gs.Players, ps)
	}
	for _, p := range g.finishOrder {
		gs.FinishOrder = append(gs.FinishOrder, p.name)
	}
	if viewer == g.currentPlayerIndex && !g.IsGameEnded() {
		p := g.players[viewer]
		if g.tradePhaseActive {
			gs.LegalPlays = p.LegalCardsToTrade()
		} else {
			gs.LegalPlays = p.LegalCardsToPlay(g.currentTrick)
		}
	}
	return gs
}

func (gs GameState) IsTrade() bool {
	return gs.Phase == game.Trading
}

func (gs GameState) IsEnded() bool {
	return gs.Phase == game.Completed
}

func (gs GameState) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Game %s (%s, round %d of %d)\n", gs.Id, gs.Phase, gs.Round+1, gs.TotalRounds))
	for _, ps := range gs.Players {
		marker := " "
		if ps.IsCurrent {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-10s %-15s %2d cards", marker, ps.Name, ps.Role, ps.NumCards))
		if ps.Cards != nil {
			sb.WriteString(fmt.Sprintf("  %s", ps.Cards.HandString()))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Trick: %s", gs.CurrentTrick))
	return sb.String()
}
