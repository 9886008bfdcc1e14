// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

// A Pulse is a binary signal value exchanged between modules.
//
type Pulse uint8

// Pulse values. The zero value is Low, the state of an untouched network.
//
const (
	Low Pulse = iota
	High
)

// Flip returns the opposite pulse value.
//
func (p Pulse) Flip() Pulse {
	if p == Low {
		return High
	}
	return Low
}

func (p Pulse) String() string {
	if p == High {
		return "high"
	}
	return "low"
}

// A Message is an addressed envelope carrying a Pulse between two named
// modules. The engine creates a message when a module emits output and
// consumes it exactly once when dequeued; messages are never mutated.
//
type Message struct {
	To    string
	From  string
	Pulse Pulse
}

func (m Message) String() string {
	return m.From + " -" + m.Pulse.String() + "-> " + m.To
}
