package model

import (
	"strconv"
	"strings"

	"github.com/teranos/TALS/errors"
)

// Document is the semantic model of one NTA model file. Scope nesting:
// system declarations see the global block, and the query scope sees both.
type Document struct {
	Global    *Declarations
	Templates []*Template
	System    *Declarations
	Queries   *Declarations
}

// NewDocument creates an empty document with its scope chain wired up
func NewDocument() *Document {
	global := NewDeclarations(nil)
	system := NewDeclarations(global)
	queries := NewDeclarations(system)
	return &Document{
		Global:  global,
		System:  system,
		Queries: queries,
	}
}

// AddTemplate creates a template with a declaration block nested in the
// global scope and registers it on the document.
func (d *Document) AddTemplate(name string) *Template {
	tmpl := &Template{
		Name:  name,
		Decls: NewDeclarations(d.Global),
	}
	d.Templates = append(d.Templates, tmpl)
	return tmpl
}

// FindProcess returns the template with the given name, or nil
func (d *Document) FindProcess(name string) *Template {
	for _, tmpl := range d.Templates {
		if tmpl.Name == name {
			return tmpl
		}
	}
	return nil
}

// Navigate resolves a path expression and character offset to the enclosing
// declaration block. Paths it understands:
//
//	/nta/declaration            global declarations
//	/nta/system!                system block (instantiations)
//	/nta/queries!               query scope
//	/nta/template[N]/...        template N (1-based), any sub-path:
//	                            parameter!, declaration, transition labels
//
// A trailing "!" is the editor's create-if-missing marker and is ignored.
// The offset selects a position inside the block's text; block resolution
// itself only depends on the path.
func (d *Document) Navigate(xpath string, offset int) (*Declarations, error) {
	path := strings.TrimSuffix(xpath, "!")

	if strings.HasPrefix(path, "/nta/template[") {
		rest := path[len("/nta/template["):]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, errors.Newf("malformed template index in path %q", xpath)
		}
		index, err := strconv.Atoi(rest[:end])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed template index in path %q", xpath)
		}
		// Template indices are 1-based in model paths
		if index < 1 || index > len(d.Templates) {
			return nil, errors.Newf("no template at index %d", index)
		}
		return d.Templates[index-1].Decls, nil
	}

	switch {
	case path == "/nta/declaration" || strings.HasSuffix(path, "/declaration"):
		return d.Global, nil
	case path == "/nta/system":
		return d.System, nil
	case path == "/nta/queries" || strings.HasPrefix(path, "/nta/queries/"):
		return d.Queries, nil
	}

	return nil, errors.Newf("cannot navigate path %q", xpath)
}

// Entity is a tagged variant: exactly one of Symbol or Type is set.
// Member resolution over a dotted name ends on either a declared symbol or
// a bare type (a typedef or a record field's type).
type Entity struct {
	Symbol *Symbol
	Type   *Type
}

// IsType reports whether the entity is a bare type
func (e Entity) IsType() bool { return e.Type != nil }

// FindEntity resolves a possibly-dotted name starting from decls. The head
// is looked up through the scope chain; each further part steps through
// record fields or template-instance members. Returns false when any part
// fails to resolve.
func (d *Document) FindEntity(decls *Declarations, dotted string) (Entity, bool) {
	parts := strings.Split(dotted, ".")

	sym := decls.Lookup(parts[0])
	if sym == nil {
		return Entity{}, false
	}

	entity := symbolEntity(sym)
	for _, part := range parts[1:] {
		next, ok := d.member(entity, part)
		if !ok {
			return Entity{}, false
		}
		entity = next
	}
	return entity, true
}

// symbolEntity wraps a resolved symbol, surfacing typedefs as bare types
func symbolEntity(sym *Symbol) Entity {
	if sym.Type != nil && sym.Type.Is(Typedef) {
		return Entity{Type: sym.Type}
	}
	return Entity{Symbol: sym}
}

// member resolves one step of a dotted chain
func (d *Document) member(entity Entity, name string) (Entity, bool) {
	if entity.Symbol != nil {
		sym := entity.Symbol
		if sym.IsTemplateInstance() {
			tmpl := d.FindProcess(sym.Type.Name())
			if tmpl == nil {
				return Entity{}, false
			}
			if member := tmpl.Decls.LookupLocal(name); member != nil {
				return symbolEntity(member), true
			}
			for _, loc := range tmpl.Locations {
				if loc.Name == name {
					return Entity{Symbol: loc}, true
				}
			}
			return Entity{}, false
		}
		return recordMember(sym.Type, name)
	}
	return recordMember(entity.Type, name)
}

// recordMember finds a labelled field on the record reached by unwrapping
// non-record wrapper layers (typedefs, arrays).
func recordMember(t *Type, name string) (Entity, bool) {
	rec := UnwrapRecord(t)
	if rec == nil {
		return Entity{}, false
	}
	for i := 0; i < rec.Size(); i++ {
		if rec.Label(i) == name {
			return Entity{Type: rec.Get(i)}, true
		}
	}
	return Entity{}, false
}

// UnwrapRecord descends through wrapper layers (first child of typedefs,
// arrays and similar) until a record is reached. Returns nil when the type
// does not wrap a record.
func UnwrapRecord(t *Type) *Type {
	for t != nil {
		if t.Is(Record) {
			return t
		}
		if t.Size() == 0 {
			return nil
		}
		t = t.Get(0)
	}
	return nil
}
