// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/pulsim"
)

// Build parses input in the line-oriented definition format and constructs a
// fresh network from it, failing the test on any error.
//
func Build(t *testing.T, input string, opts ...pulsim.Option) *pulsim.Network {
	t.Helper()
	mods, err := pulsim.ParseNetwork(input)
	require.NoError(t, err)
	n, err := pulsim.New(mods, opts...)
	require.NoError(t, err)
	return n
}

// CheckCounts runs presses button presses on a fresh network built from input
// and checks the accumulated pulse counts.
//
func CheckCounts(t *testing.T, input string, presses, wantLow, wantHigh int) {
	t.Helper()
	n := Build(t, input)
	require.NoError(t, n.Press(presses))
	require.Equal(t, wantLow, n.Low(), "low count after %d presses", presses)
	require.Equal(t, wantHigh, n.High(), "high count after %d presses", presses)
}

// CheckDeterminism runs the same simulation twice on independently
// constructed networks and checks that the counters agree.
//
func CheckDeterminism(t *testing.T, input string, presses int) {
	t.Helper()
	a, b := Build(t, input), Build(t, input)
	require.NoError(t, a.Press(presses))
	require.NoError(t, b.Press(presses))
	require.Equal(t, a.Low(), b.Low(), "low counts diverge")
	require.Equal(t, a.High(), b.High(), "high counts diverge")
}
