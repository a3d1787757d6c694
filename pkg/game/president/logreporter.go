package president

import (
	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game"
	"github.com/sirupsen/logrus"
)

// NewLogReporter reports game events as structured log entries.
func NewLogReporter(logger logrus.FieldLogger) game.Reporter {
	return &logReporter{log: logger}
}

type logReporter struct {
	log logrus.FieldLogger
}

func (r *logReporter) entry(g game.Game) *logrus.Entry {
	return r.log.WithFields(logrus.Fields{
		"game":  g.Id(),
		"round": g.Round() + 1,
		"phase": g.Phase(),
	})
}

func (r *logReporter) ReportRoundStarted(g game.Game) {
	r.entry(g).Info("round started")
}
func (r *logReporter) ReportCardsPlayed(g game.Game, name string, cs cards.Cards) {
	r.entry(g).WithField("player", name).Infof("plays %s", cs)
}
func (r *logReporter) ReportPassed(g game.Game, name string) {
	r.entry(g).WithField("player", name).Info("passes")
}
func (r *logReporter) ReportTrickCompleted(g game.Game, trick cards.Cards, winnerName string) {
	r.entry(g).WithField("player", winnerName).Infof("takes %s", trick)
}
func (r *logReporter) ReportTradeOffered(g game.Game, name string, numCards int) {
	r.entry(g).WithField("player", name).Infof("offers %d cards", numCards)
}
func (r *logReporter) ReportTradesResolved(g game.Game) {
	r.entry(g).Info("trades resolved")
}
func (r *logReporter) ReportRoundFinished(g game.Game, standings []game.Standing) {
	e := r.entry(g)
	for i, s := range standings {
		e.WithFields(logrus.Fields{"player": s.Name, "role": s.Role}).Infof("finished %d", i+1)
	}
}
func (r *logReporter) ReportGameFinished(g game.Game) {
	r.log.WithField("game", g.Id()).Infof("game finished after %d rounds", g.Round())
}
