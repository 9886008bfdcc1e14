package netdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	defs, err := Parse("broadcaster -> a, b\n\n%a -> con\n&con -> output\n")
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, Def{Kind: Broadcaster, Name: "broadcaster", Dests: []string{"a", "b"}}, defs[0])
	assert.Equal(t, Def{Kind: FlipFlop, Name: "a", Dests: []string{"con"}}, defs[1])
	assert.Equal(t, Def{Kind: Conjunction, Name: "con", Dests: []string{"output"}}, defs[2])
}

func TestParse_whitespace(t *testing.T) {
	// spacing around the separator and the destination commas is free.
	defs, err := Parse("  %a->b,c  ")
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, Def{Kind: FlipFlop, Name: "a", Dests: []string{"b", "c"}}, defs[0])
}

func TestParse_lineNumbers(t *testing.T) {
	_, err := Parse("broadcaster -> a\n\n%b -> 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseYAML(t *testing.T) {
	defs, err := ParseYAML([]byte(`
modules:
  - kind: broadcaster
    name: broadcaster
    dests: [a]
  - kind: flip-flop
    name: a
    dests: [con]
  - kind: conjunction
    name: con
    dests: [rx]
`))
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, Broadcaster, defs[0].Kind)
	assert.Equal(t, FlipFlop, defs[1].Kind)
	assert.Equal(t, Conjunction, defs[2].Kind)
	assert.Equal(t, []string{"rx"}, defs[2].Dests)
}

func TestParseYAML_errors(t *testing.T) {
	_, err := ParseYAML([]byte("modules:\n  - kind: diode\n    name: d\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"diode"`)

	_, err = ParseYAML([]byte("modules:\n  - kind: flipflop\n    name: \"9\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "broadcaster", Broadcaster.String())
	assert.Equal(t, "flipflop", FlipFlop.String())
	assert.Equal(t, "conjunction", Conjunction.String())
	assert.Equal(t, "invalid", Kind(42).String())
}
