package model

// Declarations is a declaration block: a frame plus the symbols declared in
// it, in declaration order, linked to the enclosing block.
type Declarations struct {
	Frame   *Frame
	Parent  *Declarations
	Symbols []*Symbol
}

// NewDeclarations creates a declaration block with a fresh frame nested in
// parent's frame (parent may be nil for the global block).
func NewDeclarations(parent *Declarations) *Declarations {
	var parentFrame *Frame
	if parent != nil {
		parentFrame = parent.Frame
	}
	return &Declarations{
		Frame:  NewFrame(parentFrame),
		Parent: parent,
	}
}

// Add appends a symbol declared in this block, stamping its frame
func (d *Declarations) Add(sym *Symbol) {
	sym.Frame = d.Frame
	d.Symbols = append(d.Symbols, sym)
}

// LookupLocal finds a symbol declared in this block only
func (d *Declarations) LookupLocal(name string) *Symbol {
	for _, sym := range d.Symbols {
		if sym.Name == name {
			return sym
		}
	}
	return nil
}

// Lookup finds a symbol by name in this block or any enclosing block
func (d *Declarations) Lookup(name string) *Symbol {
	for block := d; block != nil; block = block.Parent {
		if sym := block.LookupLocal(name); sym != nil {
			return sym
		}
	}
	return nil
}

// VisitSymbols enumerates every symbol reachable from decls: its own block
// first, then each enclosing block root-ward. The callback receives the
// symbol and its source range; returning true stops the walk.
//
// Ordering within a block is declaration order. No symbol is filtered here;
// visibility policy (forward references, template gating) is the caller's.
func VisitSymbols(decls *Declarations, fn func(*Symbol, TextRange) bool) {
	for block := decls; block != nil; block = block.Parent {
		for _, sym := range block.Symbols {
			if fn(sym, sym.Range) {
				return
			}
		}
	}
}
