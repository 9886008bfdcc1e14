// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

import "sort"

// A Module is a named node in a network. It receives messages addressed to it
// and produces zero or more messages in response, possibly updating its
// internal state.
//
// Custom module implementations are possible (probes, counters); the built-in
// kinds are Broadcaster, FlipFlop and Conjunction.
//
type Module interface {
	// Label returns the module's name, unique within a network.
	Label() string

	// Dests returns the names of the modules this module sends to, in
	// emission order. The destination list never changes after construction.
	Dests() []string

	// Process handles one message addressed to this module and returns the
	// messages it emits, in emission order. Only the engine dispatches
	// messages; implementations panic if m.To is not the module's own label.
	Process(m Message) []Message

	// Reset returns the module's internal state to its initial value without
	// changing its destinations.
	Reset()
}

// An InputRegistrar is a Module that must learn its inbound connections
// before simulation. The wiring pass in New calls ConnectInput for every
// module that lists the registrar as a destination. ConnectInput only
// initializes missing entries, so registering a known input is a no-op and
// never resets recorded state.
//
type InputRegistrar interface {
	Module
	ConnectInput(from string)
}

// emit builds one message per destination, all carrying the same pulse.
func emit(from string, dests []string, p Pulse) []Message {
	out := make([]Message, len(dests))
	for i, d := range dests {
		out[i] = Message{To: d, From: from, Pulse: p}
	}
	return out
}

func checkAddressee(label string, m Message) {
	if m.To != label {
		panic("pulsim: message for " + m.To + " dispatched to " + label)
	}
}

// A Broadcaster fans every incoming pulse out unchanged to all of its
// destinations. It is stateless.
//
type Broadcaster struct {
	label string
	dests []string
}

// NewBroadcaster returns a broadcaster module.
//
func NewBroadcaster(label string, dests ...string) *Broadcaster {
	return &Broadcaster{label: label, dests: dests}
}

// Label returns the module's name.
func (b *Broadcaster) Label() string { return b.label }

// Dests returns the module's destination list.
func (b *Broadcaster) Dests() []string { return b.dests }

// Reset is a no-op; a broadcaster has no state.
func (b *Broadcaster) Reset() {}

// Process re-emits the incoming pulse to every destination.
func (b *Broadcaster) Process(m Message) []Message {
	checkAddressee(b.label, m)
	return emit(b.label, b.dests, m.Pulse)
}

// A FlipFlop is a one-bit stateful module, initially off. A High pulse is
// absorbed with no output; a Low pulse toggles the bit and emits the new
// state, High when the module turned on and Low when it turned off.
//
type FlipFlop struct {
	label string
	on    bool
	dests []string
}

// NewFlipFlop returns a flip-flop module in the off state.
//
func NewFlipFlop(label string, dests ...string) *FlipFlop {
	return &FlipFlop{label: label, dests: dests}
}

// Label returns the module's name.
func (f *FlipFlop) Label() string { return f.label }

// Dests returns the module's destination list.
func (f *FlipFlop) Dests() []string { return f.dests }

// On reports whether the flip-flop is currently on.
func (f *FlipFlop) On() bool { return f.on }

// Reset turns the flip-flop off.
func (f *FlipFlop) Reset() { f.on = false }

// Process absorbs High pulses and toggles on Low pulses.
func (f *FlipFlop) Process(m Message) []Message {
	checkAddressee(f.label, m)
	if m.Pulse == High {
		return nil
	}
	f.on = !f.on
	p := Low
	if f.on {
		p = High
	}
	return emit(f.label, f.dests, p)
}

// A Conjunction remembers the last pulse received from each of its inputs,
// all initially Low. On every message it first records the sender's pulse,
// then emits Low if all recorded inputs are High and High otherwise.
//
// Conjunctions learn their input set from the wiring pass; see
// InputRegistrar.
//
type Conjunction struct {
	label  string
	inputs map[string]Pulse
	dests  []string
}

// NewConjunction returns a conjunction module with no inputs registered yet.
//
func NewConjunction(label string, dests ...string) *Conjunction {
	return &Conjunction{
		label:  label,
		inputs: make(map[string]Pulse),
		dests:  dests,
	}
}

// Label returns the module's name.
func (c *Conjunction) Label() string { return c.label }

// Dests returns the module's destination list.
func (c *Conjunction) Dests() []string { return c.dests }

// Inputs returns the names of the registered inputs, sorted.
func (c *Conjunction) Inputs() []string {
	in := make([]string, 0, len(c.inputs))
	for k := range c.inputs {
		in = append(in, k)
	}
	sort.Strings(in)
	return in
}

// ConnectInput registers an inbound connection, initializing its recorded
// pulse to Low. Registering a known input is a no-op.
func (c *Conjunction) ConnectInput(from string) {
	if _, ok := c.inputs[from]; !ok {
		c.inputs[from] = Low
	}
}

// Reset sets every recorded input back to Low, keeping the input set.
func (c *Conjunction) Reset() {
	for k := range c.inputs {
		c.inputs[k] = Low
	}
}

// Process records the sender's pulse and emits according to the updated
// state.
func (c *Conjunction) Process(m Message) []Message {
	checkAddressee(c.label, m)
	c.inputs[m.From] = m.Pulse
	p := Low
	for _, in := range c.inputs {
		if in == Low {
			p = High
			break
		}
	}
	return emit(c.label, c.dests, p)
}
