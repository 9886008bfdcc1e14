// Package netdef parses pulse network definitions.
package netdef

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// A Kind discriminates module definitions.
type Kind int

// Module kinds.
const (
	Broadcaster Kind = iota
	FlipFlop
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcaster:
		return "broadcaster"
	case FlipFlop:
		return "flipflop"
	case Conjunction:
		return "conjunction"
	}
	return "invalid"
}

// A Def is one parsed module definition.
type Def struct {
	Kind  Kind
	Name  string
	Dests []string
}

// Parse parses the line-oriented definition format, one module per line:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// Blank lines are skipped. Errors are reported with 1-based line numbers.
func Parse(input string) ([]Def, error) {
	var defs []Def
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func parseLine(line string) (Def, error) {
	var d Def
	switch line[0] {
	case '%':
		d.Kind = FlipFlop
		line = line[1:]
	case '&':
		d.Kind = Conjunction
		line = line[1:]
	default:
		d.Kind = Broadcaster
	}
	name, rest, ok := strings.Cut(line, "->")
	if !ok {
		return d, errors.New(`missing "->" separator`)
	}
	if err := checkName(strings.TrimSpace(name)); err != nil {
		return d, err
	}
	d.Name = strings.TrimSpace(name)
	for _, dest := range strings.Split(rest, ",") {
		dest = strings.TrimSpace(dest)
		if err := checkName(dest); err != nil {
			return d, err
		}
		d.Dests = append(d.Dests, dest)
	}
	return d, nil
}

func checkName(name string) error {
	if name == "" {
		return errors.New("empty module name")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return errors.Errorf("invalid character %q in name %q", r, name)
		}
	}
	return nil
}
