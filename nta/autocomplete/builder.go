package autocomplete

import (
	"github.com/teranos/TALS/nta/model"
)

// ResultBuilder accumulates suggestions, applying the ignored-kinds mask on
// every insertion and prepending the member-access prefix where one is set.
// It does not deduplicate; overlapping scopes may contribute the same name
// twice and clients tolerate that.
type ResultBuilder struct {
	items  []Suggestion
	prefix string
	mask   FilterMask
}

// NewResultBuilder returns a builder with no filter and no prefix
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{items: []Suggestion{}}
}

// SetIgnoredMask installs the bitmask of suggestion kinds to drop
func (b *ResultBuilder) SetIgnoredMask(mask FilterMask) { b.mask = mask }

// SetPrefix installs the literal prefix prepended to member suggestions
func (b *ResultBuilder) SetPrefix(prefix string) { b.prefix = prefix }

// AddItem appends one suggestion unless its kind is filtered
func (b *ResultBuilder) AddItem(name string, kind SymKind) {
	if b.mask&FilterMask(kind) == 0 {
		b.items = append(b.items, Suggestion{Name: name, Kind: kind})
	}
}

// AddAll appends every entry of the given vocabularies, subject to the mask
func (b *ResultBuilder) AddAll(vocabularies ...[]Suggestion) {
	for _, vocab := range vocabularies {
		for _, item := range vocab {
			b.AddItem(item.Name, item.Kind)
		}
	}
}

// AddDefaults seeds the keyword vocabulary appropriate for the path context
func (b *ResultBuilder) AddDefaults(xpath string) {
	b.AddAll(defaultVocabularies(xpath)...)
}

// AddRecord emits one prefixed variable suggestion per field of the record
// reached by unwrapping t's outer layers. Non-record types emit nothing.
func (b *ResultBuilder) AddRecord(t *model.Type) {
	rec := model.UnwrapRecord(t)
	if rec == nil {
		return
	}
	for i := 0; i < rec.Size(); i++ {
		b.AddItem(b.prefix+rec.Label(i), KindVariable)
	}
}

// AddTemplate emits the template's declared variables, functions, and
// named locations, each with the member prefix. Auto-generated location
// names never appear.
func (b *ResultBuilder) AddTemplate(tmpl *model.Template) {
	for _, v := range tmpl.Variables() {
		b.AddItem(b.prefix+v.Name, KindVariable)
	}
	for _, f := range tmpl.Functions() {
		b.AddItem(b.prefix+f.Name, KindFunction)
	}
	for _, loc := range tmpl.Locations {
		if !isNameAutogenerated(loc.Name) {
			b.AddItem(b.prefix+loc.Name, KindUnknown)
		}
	}
}

// Take moves the accumulated suggestions out of the builder
func (b *ResultBuilder) Take() []Suggestion {
	items := b.items
	b.items = []Suggestion{}
	return items
}

// isNameAutogenerated matches the _id<digits> names the editor assigns to
// unnamed locations
func isNameAutogenerated(name string) bool {
	if len(name) < 4 || name[:3] != "_id" {
		return false
	}
	for i := 3; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
