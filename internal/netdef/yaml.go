package netdef

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlDoc struct {
	Modules []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Kind  string   `yaml:"kind"`
	Name  string   `yaml:"name"`
	Dests []string `yaml:"dests"`
}

// ParseYAML parses the YAML definition format. The document holds a single
// "modules" list; each entry has a kind (broadcaster, flipflop or
// conjunction), a name and a dests list. Definitions are returned in document
// order.
func ParseYAML(data []byte) ([]Def, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "netdef")
	}
	defs := make([]Def, 0, len(doc.Modules))
	for _, m := range doc.Modules {
		k, err := kindOf(m.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "module %q", m.Name)
		}
		if err = checkName(m.Name); err != nil {
			return nil, err
		}
		for _, d := range m.Dests {
			if err = checkName(d); err != nil {
				return nil, errors.Wrapf(err, "module %q", m.Name)
			}
		}
		defs = append(defs, Def{Kind: k, Name: m.Name, Dests: m.Dests})
	}
	return defs, nil
}

func kindOf(s string) (Kind, error) {
	switch s {
	case "broadcaster":
		return Broadcaster, nil
	case "flipflop", "flip-flop":
		return FlipFlop, nil
	case "conjunction":
		return Conjunction, nil
	}
	return 0, errors.Errorf("unknown module kind %q", s)
}
