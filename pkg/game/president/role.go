package president

import "fmt"

// Role is the social rank a player earns from the order hands emptied in.
type Role int8

const (
	Unassigned Role = iota
	Leader
	RunnerUp
	Neutral
	SecondToLast
	Last
)

const (
	MinPlayers = 3
	MaxPlayers = 6
)

var roleTemplates = map[int][]Role{
	3: {Leader, Neutral, Last},
	4: {Leader, RunnerUp, SecondToLast, Last},
	5: {Leader, RunnerUp, Neutral, SecondToLast, Last},
	6: {Leader, RunnerUp, Neutral, Neutral, SecondToLast, Last},
}

// Trading pairs; each side receives the other's whole offer.
var tradePairs = [][2]Role{
	{Leader, Last},
	{RunnerUp, SecondToLast},
}

func (r Role) String() string {
	switch r {
	case Unassigned:
		return ""
	case Leader:
		return "Leader"
	case RunnerUp:
		return "Runner-Up"
	case Neutral:
		return "Neutral"
	case SecondToLast:
		return "Second-to-Last"
	case Last:
		return "Last"
	}
	return "unknown"
}

// FrenchName is the traditional table name of the role.
func (r Role) FrenchName() string {
	switch r {
	case Leader:
		return "Président"
	case RunnerUp:
		return "Vice-président"
	case Neutral:
		return "Neutre"
	case SecondToLast:
		return "Vice-trou"
	case Last:
		return "Trou"
	}
	return ""
}

// TradeCount is how many cards the role exchanges after a round.
func (r Role) TradeCount() int {
	switch r {
	case Leader, Last:
		return 2
	case RunnerUp, SecondToLast:
		return 1
	}
	return 0
}

// GivesBest reports whether the role must surrender its highest cards.
func (r Role) GivesBest() bool {
	switch r {
	case SecondToLast, Last:
		return true
	}
	return false
}

func (r Role) Trades() bool {
	return r.TradeCount() > 0
}

// RoleTemplate returns the role for each finish position at a table of n players.
func RoleTemplate(n int) ([]Role, error) {
	t, ok := roleTemplates[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d players, want %d to %d", ErrInvalidConfig, n, MinPlayers, MaxPlayers)
	}
	return append([]Role{}, t...), nil
}

// AssignRoles recomputes every role from the finish order alone.
func AssignRoles(finishOrder []*Player) error {
	template, err := RoleTemplate(len(finishOrder))
	if err != nil {
		return err
	}
	for i, p := range finishOrder {
		role := Neutral
		if i < len(template) {
			role = template[i]
		}
		p.role = role
	}
	return nil
}
