// Package model holds the semantic document model for NTA model files:
// types, symbols, declaration scopes, templates, and the document itself.
// It is the AST surface the autocomplete resolver and the language tooling
// operate on; the text forms are produced by nta/parser and the nta loader.
package model

// Kind identifies the shape of a Type.
type Kind int

const (
	Void Kind = iota
	Int
	Double
	Boolean
	String
	Clock
	Channel
	Record
	Typedef
	Function
	ExternalFunction
	Array
	Instance
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Int:
		return "int"
	case Double:
		return "double"
	case Boolean:
		return "bool"
	case String:
		return "string"
	case Clock:
		return "clock"
	case Channel:
		return "chan"
	case Record:
		return "record"
	case Typedef:
		return "typedef"
	case Function:
		return "function"
	case ExternalFunction:
		return "external function"
	case Array:
		return "array"
	case Instance:
		return "instance"
	}
	return "invalid"
}

// Type is an immutable type descriptor. Composite types carry their
// component types as children; records additionally carry a label per child.
type Type struct {
	kind     Kind
	name     string // typedef alias name or instance template name
	children []*Type
	labels   []string
}

// NewPrimitive returns a type with no components
func NewPrimitive(kind Kind) *Type {
	return &Type{kind: kind}
}

// NewRecord returns a record type with one labelled field per entry.
// labels and fields must have equal length.
func NewRecord(labels []string, fields []*Type) *Type {
	return &Type{kind: Record, children: fields, labels: labels}
}

// NewTypedef returns a type alias wrapping the aliased type
func NewTypedef(name string, underlying *Type) *Type {
	return &Type{kind: Typedef, name: name, children: []*Type{underlying}}
}

// NewArray returns an array type over elem
func NewArray(elem *Type) *Type {
	return &Type{kind: Array, children: []*Type{elem}}
}

// NewFunction returns a function type with the given return type
func NewFunction(ret *Type) *Type {
	return &Type{kind: Function, children: []*Type{ret}}
}

// NewInstance returns a template-instance type referring to a template by name
func NewInstance(template string) *Type {
	return &Type{kind: Instance, name: template}
}

// Kind returns the type's kind
func (t *Type) Kind() Kind { return t.kind }

// Name returns the typedef alias name or instance template name, else ""
func (t *Type) Name() string { return t.name }

// Size returns the number of component types
func (t *Type) Size() int { return len(t.children) }

// Get returns the i-th component type
func (t *Type) Get(i int) *Type { return t.children[i] }

// Label returns the i-th field label of a record type
func (t *Type) Label(i int) string { return t.labels[i] }

// Is reports whether the type is exactly the given kind
func (t *Type) Is(kind Kind) bool { return t.kind == kind }

// IsChannel reports whether the type is a channel
func (t *Type) IsChannel() bool { return t.kind == Channel }

// IsClock reports whether the type is a clock
func (t *Type) IsClock() bool { return t.kind == Clock }

// IsIntegral reports whether the type is an integer or boolean
func (t *Type) IsIntegral() bool { return t.kind == Int || t.kind == Boolean }

// IsDouble reports whether the type is a floating-point number
func (t *Type) IsDouble() bool { return t.kind == Double }

// IsString reports whether the type is a string
func (t *Type) IsString() bool { return t.kind == String }

// IsRecord reports whether the type is a record
func (t *Type) IsRecord() bool { return t.kind == Record }

// IsFunction reports whether the type is a function
func (t *Type) IsFunction() bool { return t.kind == Function }

// IsFunctionExternal reports whether the type is an externally-defined function
func (t *Type) IsFunctionExternal() bool { return t.kind == ExternalFunction }

// IsArray reports whether the type is an array
func (t *Type) IsArray() bool { return t.kind == Array }
