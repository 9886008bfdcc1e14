package pulsim

// connectInputs is the wiring pass: for every module M whose destinations
// include an InputRegistrar, the registrar learns M as an input. Scanning
// order is irrelevant, the pass is a set union over input names, and since
// ConnectInput only initializes missing entries the pass is idempotent.
func connectInputs(mods []Module) {
	regs := make(map[string]InputRegistrar)
	for _, m := range mods {
		if r, ok := m.(InputRegistrar); ok {
			regs[m.Label()] = r
		}
	}
	for _, m := range mods {
		for _, d := range m.Dests() {
			if r, ok := regs[d]; ok {
				r.ConnectInput(m.Label())
			}
		}
	}
}
