// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

import (
	"github.com/pkg/errors"
)

// Default engine names. The entry module receives the seed pulse of every
// button press; the button name is the sender recorded on that seed message
// and does not refer to an actual module.
//
const (
	DefaultEntry  = "broadcaster"
	DefaultButton = "button"
)

// Errors returned by network construction and simulation.
//
var (
	ErrDuplicateModule = errors.New("duplicate module name")
	ErrUnsettled       = errors.New("pulse limit exceeded before the network settled")
	ErrPressLimit      = errors.New("press limit exceeded")
)

// An Option configures a Network.
//
type Option func(*Network)

// WithEntry sets the name of the module that receives the seed pulse of every
// button press. The default is DefaultEntry.
//
func WithEntry(name string) Option {
	return func(n *Network) { n.entry = name }
}

// WithButton sets the sender name recorded on seed messages. The default is
// DefaultButton.
//
func WithButton(name string) Option {
	return func(n *Network) { n.button = name }
}

// WithPulseLimit makes a button press fail with ErrUnsettled after limit
// pulses have been dispatched without draining the queue. A network of
// conjunctions and flip-flops is not structurally guaranteed to quiesce; the
// limit turns a pathological input into an error instead of a hang. Zero or
// negative means no limit, the default.
//
func WithPulseLimit(limit int) Option {
	return func(n *Network) { n.limit = limit }
}

// WithObserver registers fn to be called for every dequeued message, in
// dispatch order, before the target module processes it. Useful as a probe on
// the traffic of a running network.
//
func WithObserver(fn func(Message)) Option {
	return func(n *Network) { n.observer = fn }
}

// A Network is a runnable simulation of a pulse-propagation module network.
// It owns the module registry, the FIFO message queue and the pulse counters.
//
// A Network is not safe for concurrent use; run independent simulations on
// independently constructed networks.
//
type Network struct {
	modules  map[string]Module
	order    []Module // construction order, for deterministic Reset and inspection
	queue    []Message
	entry    string
	button   string
	limit    int
	observer func(Message)

	low     int
	high    int
	presses int
}

// New builds a network from the given modules. It indexes the modules by
// label, rejecting duplicates, then runs the wiring pass: every
// InputRegistrar learns the full set of modules that list it as a
// destination. The wiring pass runs exactly once, before any simulation.
//
func New(mods []Module, opts ...Option) (*Network, error) {
	n := &Network{
		modules: make(map[string]Module, len(mods)),
		order:   make([]Module, 0, len(mods)),
		entry:   DefaultEntry,
		button:  DefaultButton,
	}
	for _, o := range opts {
		o(n)
	}
	for _, m := range mods {
		if _, ok := n.modules[m.Label()]; ok {
			return nil, errors.Wrap(ErrDuplicateModule, m.Label())
		}
		n.modules[m.Label()] = m
		n.order = append(n.order, m)
	}
	connectInputs(n.order)
	return n, nil
}

// PressButton runs one button press: it enqueues a single Low pulse addressed
// to the entry module and processes messages in strict FIFO order until the
// queue is empty. Every dequeued pulse is counted; a message addressed to an
// unknown module is counted and then dropped (the target is a sink). Messages
// produced by a module are appended at the back of the queue.
//
// PressButton fails only when a pulse limit is set and exceeded; the press is
// then abandoned with the queue discarded.
//
func (n *Network) PressButton() error {
	_, err := n.press(nil)
	return err
}

// Press runs times button presses. Counters accumulate across presses.
//
func (n *Network) Press(times int) error {
	for i := 0; i < times; i++ {
		if err := n.PressButton(); err != nil {
			return err
		}
	}
	return nil
}

// PressUntil presses the button until a dequeued message satisfies match, and
// returns the number of presses used, counting from 1. It fails with
// ErrPressLimit when limit presses produced no matching message; zero or
// negative limit means no limit.
//
func (n *Network) PressUntil(match func(Message) bool, limit int) (int, error) {
	for p := 1; limit <= 0 || p <= limit; p++ {
		ok, err := n.press(match)
		if err != nil {
			return p, err
		}
		if ok {
			return p, nil
		}
	}
	return limit, errors.Wrapf(ErrPressLimit, "no matching pulse in %d presses", limit)
}

// press drains one button press, reporting whether any dequeued message
// matched. The backing array of the queue is reused across presses.
func (n *Network) press(match func(Message) bool) (bool, error) {
	n.presses++
	q := append(n.queue[:0], Message{To: n.entry, From: n.button, Pulse: Low})
	matched := false
	for i := 0; i < len(q); i++ {
		if n.limit > 0 && i >= n.limit {
			n.queue = q[:0]
			return matched, errors.Wrapf(ErrUnsettled, "press %d stopped after %d pulses", n.presses, i)
		}
		m := q[i]
		if m.Pulse == High {
			n.high++
		} else {
			n.low++
		}
		if n.observer != nil {
			n.observer(m)
		}
		if match != nil && !matched && match(m) {
			matched = true
		}
		dst, ok := n.modules[m.To]
		if !ok {
			continue // sink
		}
		q = append(q, dst.Process(m)...)
	}
	n.queue = q[:0]
	return matched, nil
}

// Low returns the number of Low pulses dispatched since construction or the
// last Reset.
//
func (n *Network) Low() int { return n.low }

// High returns the number of High pulses dispatched since construction or the
// last Reset.
//
func (n *Network) High() int { return n.high }

// Presses returns the number of button presses since construction or the last
// Reset, including failed ones.
//
func (n *Network) Presses() int { return n.presses }

// Product returns Low() * High(), the aggregate asked of a multi-press run.
//
func (n *Network) Product() int { return n.low * n.high }

// Module returns the module with the given label.
//
func (n *Network) Module(label string) (Module, bool) {
	m, ok := n.modules[label]
	return m, ok
}

// Size returns the module count in the network.
//
func (n *Network) Size() int { return len(n.order) }

// Reset returns every module to its initial state and zeroes the counters.
// The topology, including conjunction input sets, is preserved; a reset
// network behaves exactly like a freshly constructed one.
//
func (n *Network) Reset() {
	for _, m := range n.order {
		m.Reset()
	}
	n.low, n.high, n.presses = 0, 0, 0
	n.queue = n.queue[:0]
}
