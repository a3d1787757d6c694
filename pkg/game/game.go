package game

import (
	"github.com/mpsalisbury/president/pkg/cards"
)

// Game is the view of a running game handed to reporters.
type Game interface {
	Id() string
	Phase() Phase
	Round() int
}

type Phase int8

const (
	Trading Phase = iota
	Playing
	Completed
)

func (ph Phase) String() string {
	switch ph {
	case Trading:
		return "Trading"
	case Playing:
		return "Playing"
	case Completed:
		return "Completed"
	}
	return "unknown"
}

// Standing is one line of a round's finish order.
type Standing struct {
	Name string
	Role string
}

// Report activity back to the players.
type Reporter interface {
	ReportRoundStarted(g Game)
	ReportCardsPlayed(g Game, name string, cs cards.Cards)
	ReportPassed(g Game, name string)
	ReportTrickCompleted(g Game, trick cards.Cards, winnerName string)
	ReportTradeOffered(g Game, name string, numCards int)
	ReportTradesResolved(g Game)
	ReportRoundFinished(g Game, standings []Standing)
	ReportGameFinished(g Game)
}

// NopReporter ignores every report. Embed it to implement only some methods.
type NopReporter struct{}

func (NopReporter) ReportRoundStarted(Game)                        {}
func (NopReporter) ReportCardsPlayed(Game, string, cards.Cards)    {}
func (NopReporter) ReportPassed(Game, string)                      {}
func (NopReporter) ReportTrickCompleted(Game, cards.Cards, string) {}
func (NopReporter) ReportTradeOffered(Game, string, int)           {}
func (NopReporter) ReportTradesResolved(Game)                      {}
func (NopReporter) ReportRoundFinished(Game, []Standing)           {}
func (NopReporter) ReportGameFinished(Game)                        {}

// Reporters fans every report out to each reporter in order.
type Reporters []Reporter

func (rs Reporters) ReportRoundStarted(g Game) {
	for _, r := range rs {
		r.ReportRoundStarted(g)
	}
}
func (rs Reporters) ReportCardsPlayed(g Game, name string, cs cards.Cards) {
	for _, r := range rs {
		r.ReportCardsPlayed(g, name, cs)
	}
}
func (rs Reporters) ReportPassed(g Game, name string) {
	for _, r := range rs {
		r.ReportPassed(g, name)
	}
}
func (rs Reporters) ReportTrickCompleted(g Game, trick cards.Cards, winnerName string) {
	for _, r := range rs {
		r.ReportTrickCompleted(g, trick, winnerName)
	}
}
func (rs Reporters) ReportTradeOffered(g Game, name string, numCards int) {
	for _, r := range rs {
		r.ReportTradeOffered(g, name, numCards)
	}
}
func (rs Reporters) ReportTradesResolved(g Game) {
	for _, r := range rs {
		r.ReportTradesResolved(g)
	}
}
func (rs Reporters) ReportRoundFinished(g Game, standings []Standing) {
	for _, r := range rs {
		r.ReportRoundFinished(g, standings)
	}
}
func (rs Reporters) ReportGameFinished(g Game) {
	for _, r := range rs {
		r.ReportGameFinished(g)
	}
}
