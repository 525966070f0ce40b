package model

// TextRange is a half-open character span within a declaration region
type TextRange struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Frame identifies a declaration scope. Two symbols are siblings iff they
// share a Frame; identity is pointer identity.
type Frame struct {
	parent *Frame
}

// NewFrame creates a frame nested inside parent (nil for a root frame)
func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent}
}

// Parent returns the enclosing frame, or nil for a root frame
func (f *Frame) Parent() *Frame { return f.parent }

// Symbol is a named declaration with its type, owning frame, and the
// source range of its name within the declaration text.
type Symbol struct {
	Name  string
	Type  *Type
	Frame *Frame
	Range TextRange
}

// IsTemplateInstance reports whether the symbol names a template instantiation
func (s *Symbol) IsTemplateInstance() bool {
	return s.Type != nil && s.Type.Is(Instance)
}
