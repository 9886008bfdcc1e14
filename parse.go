package pulsim

import (
	"github.com/pkg/errors"

	"github.com/db47h/pulsim/internal/netdef"
)

// ParseNetwork parses the line-oriented definition format and returns the
// defined modules in file order. Each line reads
//
//	<prefix><name> -> <dest>, <dest>, ...
//
// where no prefix declares a broadcaster, % a flip-flop and & a conjunction.
// Destinations are bare names; a destination with no defining line is a valid
// sink. Blank lines are ignored. Errors carry the offending line number.
//
func ParseNetwork(input string) ([]Module, error) {
	defs, err := netdef.Parse(input)
	if err != nil {
		return nil, err
	}
	return buildModules(defs)
}

// ParseNetworkYAML parses the YAML definition format:
//
//	modules:
//	  - kind: flipflop     # broadcaster | flipflop | conjunction
//	    name: a
//	    dests: [inv, con]
//
func ParseNetworkYAML(data []byte) ([]Module, error) {
	defs, err := netdef.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return buildModules(defs)
}

func buildModules(defs []netdef.Def) ([]Module, error) {
	mods := make([]Module, 0, len(defs))
	for _, d := range defs {
		switch d.Kind {
		case netdef.Broadcaster:
			mods = append(mods, NewBroadcaster(d.Name, d.Dests...))
		case netdef.FlipFlop:
			mods = append(mods, NewFlipFlop(d.Name, d.Dests...))
		case netdef.Conjunction:
			mods = append(mods, NewConjunction(d.Name, d.Dests...))
		default:
			return nil, errors.Errorf("module %q: unknown kind %v", d.Name, d.Kind)
		}
	}
	return mods, nil
}
