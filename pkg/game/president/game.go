package president

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mpsalisbury/president/pkg/cards"
	"github.com/mpsalisbury/president/pkg/game"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Options tune a new game.
type Options struct {
	// Rounds to play before the game ends. Zero means one.
	Rounds int
	// Rand drives shuffling. Nil seeds from the clock.
	Rand *rand.Rand
	// Reporter receives game events. Nil reports nothing.
	Reporter game.Reporter
}

func DefaultOptions() Options {
	return Options{Rounds: 1}
}

// Game runs the rounds of one Président table.
type Game struct {
	id       string
	log      logrus.FieldLogger
	rng      *rand.Rand
	reporter game.Reporter

	players              []*Player
	currentTrick         *cards.Trick
	currentPlayerIndex   int
	consecutivePassCount int
	finishOrder          []*Player // players whose hands emptied this round

	currentRoundIndex    int
	totalRounds          int
	tradePhaseActive     bool
	tradesSubmittedCount int
	roundOpenerIndex     int
}

// NewGame seats players in the given order, deals the first round, and hands
// the opening turn to the holder of the three of hearts.
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options) (*Game, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, want %d to %d", ErrInvalidConfig, len(players), MinPlayers, MaxPlayers)
	}
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: player %d is missing", ErrInvalidConfig, i)
		}
		if slices.Index(players, p) != i {
			return nil, fmt.Errorf("%w: %s is seated twice", ErrInvalidConfig, p.name)
		}
	}
	if opts.Rounds < 0 {
		return nil, fmt.Errorf("%w: %d rounds", ErrInvalidConfig, opts.Rounds)
	}
	if opts.Rounds == 0 {
		opts.Rounds = 1
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Reporter == nil {
		opts.Reporter = game.NopReporter{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.NewString()
	g := &Game{
		id:           id,
		log:          logger.WithField("game", id),
		rng:          opts.Rand,
		reporter:     opts.Reporter,
		players:      slices.Clone(players),
		currentTrick: cards.NewTrick(),
		totalRounds:  opts.Rounds,
	}
	for _, p := range g.players {
		p.role = Unassigned
	}
	if err := g.deal(); err != nil {
		return nil, err
	}
	opener := g.findPlayerIndexWithCard(cards.C3h)
	if opener < 0 {
		return nil, fmt.Errorf("%w: nobody holds %s", ErrInvariantViolation, cards.C3h)
	}
	g.roundOpenerIndex = opener
	g.currentPlayerIndex = opener
	g.log.WithFields(logrus.Fields{
		"players": len(g.players),
		"rounds":  g.totalRounds,
		"opener":  g.players[opener].name,
	}).Info("game started")
	g.reporter.ReportRoundStarted(g)
	return g, nil
}

func (g *Game) Id() string {
	return g.id
}

func (g *Game) Phase() game.Phase {
	switch {
	case g.IsGameEnded():
		return game.Completed
	case g.tradePhaseActive:
		return game.Trading
	}
	return game.Playing
}

// Round is the zero-based index of the round in progress. It equals
// TotalRounds once the game is over.
func (g *Game) Round() int {
	return g.currentRoundIndex
}

func (g *Game) TotalRounds() int {
	return g.totalRounds
}

// Players returns the seats in table order.
func (g *Game) Players() []*Player {
	return slices.Clone(g.players)
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.currentPlayerIndex]
}

func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayerIndex
}

func (g *Game) IsTradePhase() bool {
	return g.tradePhaseActive
}

// FinishOrder returns the players who emptied their hands this round, first out first.
func (g *Game) FinishOrder() []*Player {
	return slices.Clone(g.finishOrder)
}

func (g *Game) deal() error {
	hands, err := cards.Deal(len(g.players), g.rng)
	if err != nil {
		return err
	}
	for i, p := range g.players {
		p.hand = hands[i]
		p.tradeOffer = nil
	}
	g.log.Debug("cards dealt")
	return nil
}

func (g *Game) findPlayerIndexWithCard(fc cards.Card) int {
	return slices.IndexFunc(g.players, func(p *Player) bool { return p.hand.ContainsCard(fc) })
}

func (g *Game) indexOf(p *Player) int {
	return slices.Index(g.players, p)
}

// Play moves cs from the current player's hand into the trick. The move must
// already have been validated.
func (g *Game) Play(cs cards.Cards) {
	p := g.CurrentPlayer()
	p.removeCards(cs)
	g.currentTrick.AddCards(cs, g.currentPlayerIndex)
	g.consecutivePassCount = 0
	if p.HandSize() == 0 && !slices.Contains(g.finishOrder, p) {
		g.finishOrder = append(g.finishOrder, p)
		g.log.WithField("player", p.name).Debugf("out in position %d", len(g.finishOrder))
	}
	g.reporter.ReportCardsPlayed(g, p.name, cs.Copy())
}

// SkipTurn records a pass by the current player.
func (g *Game) SkipTurn() {
	g.consecutivePassCount++
	g.reporter.ReportPassed(g, g.CurrentPlayer().name)
}

// IsTurnEnded reports whether every seat has passed since the last play or the
// top rank has been played.
func (g *Game) IsTurnEnded() bool {
	if g.currentTrick.IsEmpty() {
		return false
	}
	return g.consecutivePassCount >= len(g.players) || g.currentTrick.IsKilled()
}

// EndTurn discards the trick and gives the lead to whoever played last, or to
// the next seat with cards when that player is already out.
func (g *Game) EndTurn() {
	trick := g.currentTrick
	winner := trick.LastPlayerIndex()
	g.currentTrick = cards.NewTrick()
	g.consecutivePassCount = 0
	if winner < 0 {
		return
	}
	g.reporter.ReportTrickCompleted(g, trick.Cards(), g.players[winner].name)
	g.currentPlayerIndex = winner
	if g.players[winner].HandSize() == 0 {
		g.currentPlayerIndex = g.nextIndexWithCards(winner)
	}
}

func (g *Game) nextIndexWithCards(from int) int {
	n := len(g.players)
	for i := 1; i < n; i++ {
		idx := (from + i) % n
		if g.players[idx].HandSize() > 0 {
			return idx
		}
	}
	return from
}

// NextPlayer moves the turn to the next seat.
func (g *Game) NextPlayer() {
	g.currentPlayerIndex = (g.currentPlayerIndex + 1) % len(g.players)
}

// IsRoundEnded reports whether at most one player still holds cards.
func (g *Game) IsRoundEnded() bool {
	return len(g.finishOrder) >= len(g.players)-1
}

// EndRound completes the finish order with the remaining player, recomputes
// roles, and either ends the game or deals the next round and opens trading.
func (g *Game) EndRound() {
	lastIndex := slices.IndexFunc(g.players, func(p *Player) bool { return !slices.Contains(g.finishOrder, p) })
	if lastIndex >= 0 {
		last := g.players[lastIndex]
		last.hand = cards.Cards{}
		g.finishOrder = append(g.finishOrder, last)
		g.currentPlayerIndex = lastIndex
	}
	if err := AssignRoles(g.finishOrder); err != nil {
		g.log.WithError(err).Error("assigning roles")
	}
	g.currentTrick = cards.NewTrick()
	g.consecutivePassCount = 0

	standings := make([]game.Standing, len(g.finishOrder))
	for i, p := range g.finishOrder {
		standings[i] = game.Standing{Name: p.name, Role: p.role.String()}
	}
	g.log.WithField("round", g.currentRoundIndex+1).Info("round finished")
	g.reporter.ReportRoundFinished(g, standings)
	g.currentRoundIndex++

	if g.IsGameEnded() {
		g.tradePhaseActive = false
		g.log.Info("game finished")
		g.reporter.ReportGameFinished(g)
		return
	}
	g.startRound(lastIndex)
}

func (g *Game) startRound(opener int) {
	if err := g.deal(); err != nil {
		g.log.WithError(err).Error("dealing")
		return
	}
	g.finishOrder = nil
	g.roundOpenerIndex = opener
	g.currentPlayerIndex = opener
	g.tradePhaseActive = true
	g.tradesSubmittedCount = 0
	g.reporter.ReportRoundStarted(g)
	if !g.CurrentPlayer().role.Trades() {
		g.nextTrader()
	}
}

func (g *Game) IsGameEnded() bool {
	return g.currentRoundIndex >= g.totalRounds
}

// OfferTrade sets cs aside as the current player's offer. Once every trading
// role has offered, the trades resolve and the round's opener takes the turn.
func (g *Game) OfferTrade(cs cards.Cards) {
	p := g.CurrentPlayer()
	p.removeCards(cs)
	p.tradeOffer = cs.Copy()
	g.tradesSubmittedCount++
	g.log.WithField("player", p.name).Debugf("offered %d cards", len(cs))
	g.reporter.ReportTradeOffered(g, p.name, len(cs))
	if g.IsTradeOver() {
		g.ResolveTrades()
		return
	}
	g.nextTrader()
}

func (g *Game) nextTrader() {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		idx := (g.currentPlayerIndex + i) % n
		if p := g.players[idx]; p.role.Trades() && !p.HasOffered() {
			g.currentPlayerIndex = idx
			return
		}
	}
}

func (g *Game) numTraders() int {
	count := 0
	for _, p := range g.players {
		if p.role.Trades() {
			count++
		}
	}
	return count
}

// IsTradeOver reports whether every trading role has made its offer.
func (g *Game) IsTradeOver() bool {
	return g.tradesSubmittedCount >= g.numTraders()
}

// ResolveTrades swaps each pair's offers and starts play.
func (g *Game) ResolveTrades() {
	for _, pair := range tradePairs {
		a, b := g.playerWithRole(pair[0]), g.playerWithRole(pair[1])
		if a == nil || b == nil {
			continue
		}
		aOffer, bOffer := a.tradeOffer, b.tradeOffer
		a.tradeOffer, b.tradeOffer = nil, nil
		a.addCards(bOffer)
		b.addCards(aOffer)
		g.log.WithFields(logrus.Fields{
			"from": a.name,
			"to":   b.name,
		}).Debugf("traded %s for %s", aOffer, bOffer)
	}
	g.tradePhaseActive = false
	g.currentPlayerIndex = g.roundOpenerIndex
	g.reporter.ReportTradesResolved(g)
}

func (g *Game) playerWithRole(r Role) *Player {
	i := slices.IndexFunc(g.players, func(p *Player) bool { return p.role == r })
	if i < 0 {
		return nil
	}
	return g.players[i]
}

// advance moves the game on after a play or pass by the current player.
func (g *Game) advance() {
	switch {
	case g.IsRoundEnded():
		g.EndRound()
	case g.IsTurnEnded():
		g.EndTurn()
	default:
		g.passToNextPlayer()
	}
}

// passToNextPlayer finds the next seat that can act. Seats with empty hands
// pass automatically.
func (g *Game) passToNextPlayer() {
	for {
		g.NextPlayer()
		if g.CurrentPlayer().HandSize() > 0 {
			return
		}
		g.consecutivePassCount++
		if g.IsTurnEnded() {
			g.EndTurn()
			return
		}
	}
}
