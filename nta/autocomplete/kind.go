// Package autocomplete resolves completion suggestions for a cursor
// position in an NTA model document. Given the path of the enclosing text
// region, a character offset, and the partial identifier under the cursor,
// it returns the vocabulary visible there: context keywords, built-in
// functions, user symbols in scope, and members of dotted access chains.
package autocomplete

import "github.com/teranos/TALS/nta/model"

// SymKind classifies a suggestion. Each value gets a unique bit so sets of
// kinds form a bitmask and the admission check is a single AND.
type SymKind uint8

const (
	KindFunction SymKind = 1 << iota
	KindVariable
	KindChannel
	KindType
	KindProcess
	KindUnknown
)

func (k SymKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindChannel:
		return "channel"
	case KindType:
		return "type"
	case KindProcess:
		return "process"
	}
	return "unknown"
}

// MarshalJSON encodes the kind as its lowercase name
func (k SymKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// FilterMask is a bitmask of ignored kinds; a suggestion is admitted iff
// mask & kind == 0.
type FilterMask = uint8

// KindOf maps a type descriptor to the suggestion kind of a symbol with
// that type. Rule order matters: a record satisfies the variable rule
// before the others, and arrays classify by their element type.
func KindOf(t *model.Type) SymKind {
	if t == nil {
		return KindUnknown
	}
	if t.IsChannel() {
		return KindChannel
	}
	if t.IsClock() || t.IsIntegral() || t.IsDouble() || t.IsString() || t.IsRecord() {
		return KindVariable
	}
	if t.Is(model.Typedef) {
		return KindType
	}
	if t.IsFunction() || t.IsFunctionExternal() {
		return KindFunction
	}
	if t.IsArray() {
		return KindOf(t.Get(0))
	}
	return KindUnknown
}
