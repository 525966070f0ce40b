package parser

import (
	"fmt"

	"github.com/teranos/TALS/nta/model"
)

// Diagnostic reports a construct the parser had to skip
type Diagnostic struct {
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("offset %d: %s", d.Offset, d.Message)
}

type parser struct {
	lex   *lexer
	tok   token
	decls *model.Declarations
	diags []Diagnostic
}

// ParseDeclarations parses a declaration region (global, template-local, or
// system text) into decls. Covered constructs: variable, clock, and channel
// declarations with array suffixes and initializers, typedef declarations,
// struct record types, function definitions, and template instantiations
// (`P = Proc(...)`, `P := Proc(...)`, `P : Proc(...)`). Unparseable
// statements are skipped and reported.
func ParseDeclarations(src string, decls *model.Declarations) []Diagnostic {
	p := &parser{lex: newLexer(src), decls: decls}
	p.advance()
	for p.tok.kind != tokenEOF {
		p.parseStatement()
	}
	return p.diags
}

// ParseParameters parses a comma-separated parameter list (template
// parameters) into decls. Reference markers (&) and default values are
// accepted and ignored.
func ParseParameters(src string, decls *model.Declarations) []Diagnostic {
	p := &parser{lex: newLexer(src), decls: decls}
	p.advance()
	for p.tok.kind != tokenEOF {
		p.parseParameter()
		if p.isPunct(",") {
			p.advance()
		}
	}
	return p.diags
}

func (p *parser) advance() { p.tok = p.lex.next() }

func (p *parser) isPunct(text string) bool {
	return p.tok.kind == tokenPunct && p.tok.text == text
}

func (p *parser) isIdent(text string) bool {
	return p.tok.kind == tokenIdent && p.tok.text == text
}

func (p *parser) errorf(offset int, format string, args ...interface{}) {
	p.diags = append(p.diags, Diagnostic{Offset: offset, Message: fmt.Sprintf(format, args...)})
}

// save/restore support speculative parses (instantiation lookahead)
type parserState struct {
	lex lexer
	tok token
}

func (p *parser) save() parserState { return parserState{lex: *p.lex, tok: p.tok} }

func (p *parser) restore(s parserState) {
	*p.lex = s.lex
	p.tok = s.tok
}

func (p *parser) parseStatement() {
	// Empty statement
	if p.isPunct(";") {
		p.advance()
		return
	}

	if p.tok.kind == tokenIdent {
		switch p.tok.text {
		case "typedef":
			p.parseTypedef()
			return
		case "system":
			// `system P, Q;` references instances declared above; nothing new
			p.skipToSemicolon()
			return
		}
	}

	// Template instantiation: name = Template(...), name := Template(...),
	// or the compact name : Template(...) form.
	if p.tok.kind == tokenIdent {
		state := p.save()
		if p.parseInstantiation() {
			return
		}
		p.restore(state)
	}

	p.skipQualifiers()

	base := p.parseType()
	if base == nil {
		p.errorf(p.tok.offset, "expected declaration, found %q", p.tok.text)
		p.skipToSemicolon()
		return
	}

	p.parseDeclarators(base)
}

// skipQualifiers consumes type qualifiers that do not affect completion kinds
func (p *parser) skipQualifiers() {
	for p.tok.kind == tokenIdent {
		switch p.tok.text {
		case "const", "urgent", "broadcast", "meta":
			p.advance()
		default:
			return
		}
	}
}

// parseType parses a base type, or returns nil if the current token does not
// start one. Typedef names resolve to their underlying type.
func (p *parser) parseType() *model.Type {
	if p.tok.kind != tokenIdent {
		return nil
	}

	switch p.tok.text {
	case "int":
		p.advance()
		// Bounded integers: int[low, high]
		if p.isPunct("[") {
			p.skipBalanced("[", "]")
		}
		return model.NewPrimitive(model.Int)
	case "double":
		p.advance()
		return model.NewPrimitive(model.Double)
	case "bool":
		p.advance()
		return model.NewPrimitive(model.Boolean)
	case "clock":
		p.advance()
		return model.NewPrimitive(model.Clock)
	case "chan":
		p.advance()
		return model.NewPrimitive(model.Channel)
	case "void":
		p.advance()
		return model.NewPrimitive(model.Void)
	case "string":
		p.advance()
		return model.NewPrimitive(model.String)
	case "struct":
		p.advance()
		return p.parseRecord()
	}

	// A typedef name declared earlier in scope
	if sym := p.decls.Lookup(p.tok.text); sym != nil && sym.Type != nil && sym.Type.Is(model.Typedef) {
		p.advance()
		return sym.Type.Get(0)
	}
	return nil
}

// parseRecord parses the field block of a struct type
func (p *parser) parseRecord() *model.Type {
	if !p.isPunct("{") {
		p.errorf(p.tok.offset, "expected '{' after struct")
		return nil
	}
	p.advance()

	var labels []string
	var fields []*model.Type

	for p.tok.kind != tokenEOF && !p.isPunct("}") {
		p.skipQualifiers()
		base := p.parseType()
		if base == nil {
			p.errorf(p.tok.offset, "expected field type, found %q", p.tok.text)
			p.skipToSemicolon()
			continue
		}
		for {
			if p.tok.kind != tokenIdent {
				p.errorf(p.tok.offset, "expected field name, found %q", p.tok.text)
				break
			}
			name := p.tok.text
			p.advance()
			fieldType := base
			for p.isPunct("[") {
				p.skipBalanced("[", "]")
				fieldType = model.NewArray(fieldType)
			}
			labels = append(labels, name)
			fields = append(fields, fieldType)
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if p.isPunct(";") {
			p.advance()
		}
	}
	if p.isPunct("}") {
		p.advance()
	}

	return model.NewRecord(labels, fields)
}

// parseTypedef handles `typedef <type> <name>, ...;`
func (p *parser) parseTypedef() {
	p.advance() // typedef

	base := p.parseType()
	if base == nil {
		p.errorf(p.tok.offset, "expected type after typedef, found %q", p.tok.text)
		p.skipToSemicolon()
		return
	}

	for {
		if p.tok.kind != tokenIdent {
			p.errorf(p.tok.offset, "expected typedef name, found %q", p.tok.text)
			p.skipToSemicolon()
			return
		}
		name := p.tok.text
		offset := p.tok.offset
		p.advance()

		aliased := base
		for p.isPunct("[") {
			p.skipBalanced("[", "]")
			aliased = model.NewArray(aliased)
		}

		p.decls.Add(&model.Symbol{
			Name:  name,
			Type:  model.NewTypedef(name, aliased),
			Range: model.TextRange{Begin: offset, End: offset + len(name)},
		})

		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if p.isPunct(";") {
		p.advance()
	}
}

// parseDeclarators parses the name list of a declaration, including array
// suffixes, initializers, and function definitions.
func (p *parser) parseDeclarators(base *model.Type) {
	for {
		if p.tok.kind != tokenIdent {
			p.errorf(p.tok.offset, "expected declarator name, found %q", p.tok.text)
			p.skipToSemicolon()
			return
		}
		name := p.tok.text
		offset := p.tok.offset
		p.advance()

		declared := base
		for p.isPunct("[") {
			p.skipBalanced("[", "]")
			declared = model.NewArray(declared)
		}

		// Function definition: return type, name, parameter list, body
		if p.isPunct("(") {
			p.skipBalanced("(", ")")
			if p.isPunct("{") {
				p.skipBalanced("{", "}")
			}
			p.decls.Add(&model.Symbol{
				Name:  name,
				Type:  model.NewFunction(base),
				Range: model.TextRange{Begin: offset, End: offset + len(name)},
			})
			if p.isPunct(";") {
				p.advance()
			}
			return
		}

		if p.isPunct("=") {
			p.advance()
			p.skipInitializer()
		}

		p.decls.Add(&model.Symbol{
			Name:  name,
			Type:  declared,
			Range: model.TextRange{Begin: offset, End: offset + len(name)},
		})

		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if p.isPunct(";") {
		p.advance()
	} else if p.tok.kind != tokenEOF {
		p.errorf(p.tok.offset, "expected ';', found %q", p.tok.text)
		p.skipToSemicolon()
	}
}

// parseInstantiation speculatively parses `name (=|:=|:) Template(...)`.
// Returns false without consuming input commitments if the shape is wrong;
// the caller restores the saved state.
func (p *parser) parseInstantiation() bool {
	name := p.tok.text
	offset := p.tok.offset
	p.advance()

	if !p.isPunct("=") && !p.isPunct(":=") && !p.isPunct(":") {
		return false
	}
	p.advance()

	if p.tok.kind != tokenIdent {
		return false
	}
	templateName := p.tok.text
	p.advance()

	if !p.isPunct("(") {
		return false
	}
	p.skipBalanced("(", ")")

	p.decls.Add(&model.Symbol{
		Name:  name,
		Type:  model.NewInstance(templateName),
		Range: model.TextRange{Begin: offset, End: offset + len(name)},
	})

	if p.isPunct(";") {
		p.advance()
	}
	return true
}

// parseParameter parses one template parameter declaration
func (p *parser) parseParameter() {
	p.skipQualifiers()

	base := p.parseType()
	if base == nil {
		p.errorf(p.tok.offset, "expected parameter type, found %q", p.tok.text)
		p.skipParameter()
		return
	}

	// Call-by-reference marker
	if p.isPunct("&") {
		p.advance()
	}

	if p.tok.kind != tokenIdent {
		p.errorf(p.tok.offset, "expected parameter name, found %q", p.tok.text)
		p.skipParameter()
		return
	}
	name := p.tok.text
	offset := p.tok.offset
	p.advance()

	declared := base
	for p.isPunct("[") {
		p.skipBalanced("[", "]")
		declared = model.NewArray(declared)
	}

	if p.isPunct("=") {
		p.advance()
		p.skipParameterDefault()
	}

	p.decls.Add(&model.Symbol{
		Name:  name,
		Type:  declared,
		Range: model.TextRange{Begin: offset, End: offset + len(name)},
	})
}

// skipInitializer consumes an initializer expression up to the next
// top-level ',' or ';'
func (p *parser) skipInitializer() {
	depth := 0
	for p.tok.kind != tokenEOF {
		switch {
		case p.isPunct("(") || p.isPunct("[") || p.isPunct("{"):
			depth++
		case p.isPunct(")") || p.isPunct("]") || p.isPunct("}"):
			depth--
		case depth == 0 && (p.isPunct(",") || p.isPunct(";")):
			return
		}
		p.advance()
	}
}

// skipParameterDefault consumes a default value up to the next top-level ','
func (p *parser) skipParameterDefault() {
	depth := 0
	for p.tok.kind != tokenEOF {
		switch {
		case p.isPunct("(") || p.isPunct("[") || p.isPunct("{"):
			depth++
		case p.isPunct(")") || p.isPunct("]") || p.isPunct("}"):
			depth--
		case depth == 0 && p.isPunct(","):
			return
		}
		p.advance()
	}
}

// skipParameter consumes tokens up to the next top-level ','
func (p *parser) skipParameter() { p.skipParameterDefault() }

// skipToSemicolon consumes tokens through the next ';' (error recovery)
func (p *parser) skipToSemicolon() {
	for p.tok.kind != tokenEOF {
		if p.isPunct(";") {
			p.advance()
			return
		}
		p.advance()
	}
}

// skipBalanced consumes a balanced bracket group, current token included
func (p *parser) skipBalanced(open, close string) {
	if !p.isPunct(open) {
		return
	}
	depth := 0
	for p.tok.kind != tokenEOF {
		if p.isPunct(open) {
			depth++
		} else if p.isPunct(close) {
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}
