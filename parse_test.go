package pulsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/pulsim"
)

func Test_parse_network(t *testing.T) {
	mods, err := pulsim.ParseNetwork(chainInput)
	require.NoError(t, err)
	require.Len(t, mods, 5)

	bc, ok := mods[0].(*pulsim.Broadcaster)
	require.True(t, ok)
	assert.Equal(t, "broadcaster", bc.Label())
	assert.Equal(t, []string{"a", "b", "c"}, bc.Dests())

	for _, m := range mods[1:4] {
		assert.IsType(t, (*pulsim.FlipFlop)(nil), m)
	}
	inv, ok := mods[4].(*pulsim.Conjunction)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, inv.Dests())
}

func Test_parse_network_errors(t *testing.T) {
	td := []struct {
		name  string
		input string
		want  string
	}{
		{"missing separator", "broadcaster a, b", "line 1"},
		{"bad prefix", "#a -> b", "invalid character"},
		{"empty name", "% -> a", "empty module name"},
		{"bad dest", "%a -> b, 42", "invalid character"},
		{"later line", "broadcaster -> a\n%a ->", "line 2"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := pulsim.ParseNetwork(d.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.want)
		})
	}
}

const chainYAML = `
modules:
  - kind: broadcaster
    name: broadcaster
    dests: [a, b, c]
  - kind: flipflop
    name: a
    dests: [b]
  - kind: flipflop
    name: b
    dests: [c]
  - kind: flip-flop
    name: c
    dests: [inv]
  - kind: conjunction
    name: inv
    dests: [a]
`

func Test_parse_network_yaml(t *testing.T) {
	ymods, err := pulsim.ParseNetworkYAML([]byte(chainYAML))
	require.NoError(t, err)
	lmods, err := pulsim.ParseNetwork(chainInput)
	require.NoError(t, err)

	// both formats must yield the same network.
	require.Len(t, ymods, len(lmods))
	for i := range ymods {
		assert.IsType(t, lmods[i], ymods[i])
		assert.Equal(t, lmods[i].Label(), ymods[i].Label())
		assert.Equal(t, lmods[i].Dests(), ymods[i].Dests())
	}

	yn, err := pulsim.New(ymods)
	require.NoError(t, err)
	require.NoError(t, yn.PressButton())
	assert.Equal(t, 8, yn.Low())
	assert.Equal(t, 4, yn.High())
}

func Test_parse_network_yaml_errors(t *testing.T) {
	_, err := pulsim.ParseNetworkYAML([]byte("modules:\n  - kind: resistor\n    name: r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown module kind")

	_, err = pulsim.ParseNetworkYAML([]byte("modules: 42\n"))
	require.Error(t, err)
}
