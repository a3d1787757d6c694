package president

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleTemplate(t *testing.T) {
	tests := []struct {
		n    int
		want []Role
	}{
		{3, []Role{Leader, Neutral, Last}},
		{4, []Role{Leader, RunnerUp, SecondToLast, Last}},
		{5, []Role{Leader, RunnerUp, Neutral, SecondToLast, Last}},
		{6, []Role{Leader, RunnerUp, Neutral, Neutral, SecondToLast, Last}},
	}
	for _, tc := range tests {
		got, err := RoleTemplate(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "RoleTemplate(%d)", tc.n)
	}
	for _, n := range []int{0, 2, 7} {
		_, err := RoleTemplate(n)
		assert.ErrorIs(t, err, ErrInvalidConfig, "RoleTemplate(%d)", n)
	}
}

func TestRoleTemplateIsACopy(t *testing.T) {
	got, err := RoleTemplate(3)
	require.NoError(t, err)
	got[0] = Last
	again, err := RoleTemplate(3)
	require.NoError(t, err)
	assert.Equal(t, Leader, again[0])
}

func TestAssignRoles(t *testing.T) {
	a, b, c, d := NewPlayer("a"), NewPlayer("b"), NewPlayer("c"), NewPlayer("d")
	require.NoError(t, AssignRoles([]*Player{c, a, d, b}))
	assert.Equal(t, Leader, c.Role())
	assert.Equal(t, RunnerUp, a.Role())
	assert.Equal(t, SecondToLast, d.Role())
	assert.Equal(t, Last, b.Role())

	// Roles depend only on the new order.
	require.NoError(t, AssignRoles([]*Player{b, d, a, c}))
	assert.Equal(t, Leader, b.Role())
	assert.Equal(t, Last, c.Role())

	assert.ErrorIs(t, AssignRoles([]*Player{a, b}), ErrInvalidConfig)
}

func TestRoleTrading(t *testing.T) {
	tests := []struct {
		role      Role
		count     int
		givesBest bool
		french    string
	}{
		{Leader, 2, false, "Président"},
		{RunnerUp, 1, false, "Vice-président"},
		{Neutral, 0, false, "Neutre"},
		{SecondToLast, 1, true, "Vice-trou"},
		{Last, 2, true, "Trou"},
		{Unassigned, 0, false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.count, tc.role.TradeCount())
			assert.Equal(t, tc.count > 0, tc.role.Trades())
			assert.Equal(t, tc.givesBest, tc.role.GivesBest())
			assert.Equal(t, tc.french, tc.role.FrenchName())
		})
	}
}
