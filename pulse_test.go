package pulsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/pulsim"
)

func Test_pulse_flip(t *testing.T) {
	assert.Equal(t, pulsim.High, pulsim.Low.Flip())
	assert.Equal(t, pulsim.Low, pulsim.High.Flip())

	// involution
	for _, p := range []pulsim.Pulse{pulsim.Low, pulsim.High} {
		assert.Equal(t, p, p.Flip().Flip())
	}
}

func Test_pulse_string(t *testing.T) {
	assert.Equal(t, "low", pulsim.Low.String())
	assert.Equal(t, "high", pulsim.High.String())
	m := pulsim.Message{To: "a", From: "button", Pulse: pulsim.Low}
	assert.Equal(t, "button -low-> a", m.String())
}
