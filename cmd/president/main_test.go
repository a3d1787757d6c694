package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), errOut.String())
	return out.String()
}

func TestAutoplay(t *testing.T) {
	out := execute(t, "", "autoplay", "--players=4", "--rounds=2", "--seed=7", "--strategy=lowest", "--log-level=error")
	assert.Contains(t, out, "Final standings after 2 rounds")
	assert.Contains(t, out, "Président")
	assert.Contains(t, out, "Trou")
}

func TestDeal(t *testing.T) {
	out := execute(t, "", "deal", "--players=5", "--seed=3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, 1, strings.Count(out, "(opens)"))
}

func TestDealIsSeeded(t *testing.T) {
	assert.Equal(t,
		execute(t, "", "deal", "--seed=11"),
		execute(t, "", "deal", "--seed=11"))
}

func TestSoloStopsAtEndOfInput(t *testing.T) {
	out := execute(t, "", "solo", "--name=Isabelle", "--seed=2", "--log-level=error")
	assert.Contains(t, out, "Welcome Isabelle.")
}

func TestRejectsBadFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"autoplay", "--players=9"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
