package model

// Template is a parameterized automaton definition. Its parameters and
// local declarations share one declaration block nested in the global one.
// Locations are kept separate from Decls so scope walks never see them;
// they are only reachable through member access on an instance.
type Template struct {
	Name      string
	Decls     *Declarations
	Locations []*Symbol
}

// Variables returns the template's declared non-function symbols
func (t *Template) Variables() []*Symbol {
	var vars []*Symbol
	for _, sym := range t.Decls.Symbols {
		if sym.Type != nil && (sym.Type.IsFunction() || sym.Type.IsFunctionExternal()) {
			continue
		}
		vars = append(vars, sym)
	}
	return vars
}

// Functions returns the template's declared functions
func (t *Template) Functions() []*Symbol {
	var funcs []*Symbol
	for _, sym := range t.Decls.Symbols {
		if sym.Type != nil && (sym.Type.IsFunction() || sym.Type.IsFunctionExternal()) {
			funcs = append(funcs, sym)
		}
	}
	return funcs
}

// AddLocation records a location symbol on the template
func (t *Template) AddLocation(name string, rng TextRange) {
	t.Locations = append(t.Locations, &Symbol{
		Name:  name,
		Type:  NewPrimitive(Void),
		Frame: t.Decls.Frame,
		Range: rng,
	})
}
