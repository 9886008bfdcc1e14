// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package pulsim simulates networks of pulse-processing modules.

A network is a fixed directed graph of named modules exchanging High/Low
pulses in strict FIFO order. Three module kinds are built in: a broadcaster
fans every pulse out unchanged, a flip-flop toggles on Low pulses and ignores
High ones, and a conjunction remembers the last pulse received from each of
its inputs and emits Low only while all of them are High.

Networks are built in two phases: construct the modules, usually by parsing
one of the definition formats with ParseNetwork or ParseNetworkYAML, then hand
them to New, which indexes them by name and runs the wiring pass that informs
every conjunction of its inbound connections. After that the topology is
fixed; only module-internal state changes during simulation.

A simulation is a sequence of button presses. Each press injects a single Low
pulse into the entry module and processes messages until the network is
quiescent. Pulse counters accumulate across presses and reset only when the
network is constructed or explicitly Reset.
*/
package pulsim
