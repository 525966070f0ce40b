package autocomplete

import (
	"strings"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/logger"
	"github.com/teranos/TALS/nta/model"
)

// DocumentProvider supplies the model document a request resolves against.
// The document is borrowed for the duration of one call and never mutated,
// so providers may hand the same snapshot to concurrent requests.
type DocumentProvider interface {
	Document() *model.Document
}

// Request identifies a completion position: the path of the enclosing text
// region, the character offset inside it, and the partial identifier under
// the cursor (possibly a dotted member-access chain).
type Request struct {
	XPath      string `json:"xpath"`
	Offset     int    `json:"offset"`
	Identifier string `json:"identifier"`
}

// Validate checks the request shape
func (r Request) Validate() error {
	if r.XPath == "" {
		return errors.NewInvalidRequestError("xpath must not be empty")
	}
	if r.Offset < 0 {
		return errors.NewInvalidRequestError("offset must not be negative (got %d)", r.Offset)
	}
	return nil
}

// Service resolves completion requests against the provider's document
type Service struct {
	provider DocumentProvider
}

// NewService creates a resolver backed by the given document provider
func NewService(provider DocumentProvider) *Service {
	return &Service{provider: provider}
}

// Complete returns the suggestions visible at the request position.
//
// An unnavigable path or an unresolvable dotted prefix yields an empty
// result, not an error: the editor asks speculatively and absence of
// suggestions is the correct answer. Malformed requests and a missing
// document do fail.
//
// The partial identifier is NOT used to prefilter candidate names; the full
// visible vocabulary is returned and the client narrows it as the user
// types.
func (s *Service) Complete(req Request) ([]Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc := s.provider.Document()
	if doc == nil {
		return nil, errors.Wrap(errors.ErrServiceUnavailable, "no model document loaded")
	}

	results := NewResultBuilder()
	results.SetIgnoredMask(ignoredMask(req.XPath))

	decls, err := doc.Navigate(req.XPath, req.Offset)
	if err != nil {
		logger.Debugw("Completion context not navigable",
			"xpath", req.XPath,
			"error", err)
		return results.Take(), nil
	}

	if dot := strings.LastIndexByte(req.Identifier, '.'); dot >= 0 {
		s.resolveMembers(doc, decls, req, dot, results)
	} else {
		results.AddDefaults(req.XPath)
		s.collectVisible(doc, decls, req, results)
	}

	return results.Take(), nil
}

// resolveMembers handles dotted identifiers: the head (everything before
// the last dot) is resolved to an entity, and that entity's members are
// emitted with the literal head plus dot as prefix. Template-instance
// members are only reachable from the query section.
func (s *Service) resolveMembers(doc *model.Document, decls *model.Declarations, req Request, dot int, results *ResultBuilder) {
	head := req.Identifier[:dot]

	entity, ok := doc.FindEntity(decls, head)
	if !ok {
		logger.Debugw("Completion prefix did not resolve",
			"xpath", req.XPath,
			"head", head)
		return
	}

	results.SetPrefix(req.Identifier[:dot+1])

	switch {
	case entity.IsType():
		results.AddRecord(entity.Type)
	case entity.Symbol.IsTemplateInstance():
		if !isQueryContext(req.XPath) {
			return
		}
		if tmpl := doc.FindProcess(entity.Symbol.Type.Name()); tmpl != nil {
			results.AddTemplate(tmpl)
		}
	default:
		results.AddRecord(entity.Symbol.Type)
	}
}

// collectVisible walks every symbol reachable from the declaration block
// and emits the visible ones. A symbol in the cursor's own frame is hidden
// when it is declared at or after the cursor; symbols of enclosing frames
// are always visible since outer scopes are fully declared before any
// nested scope begins. Templates surface as processes only in query and
// system contexts and are suppressed everywhere else.
func (s *Service) collectVisible(doc *model.Document, decls *model.Declarations, req Request, results *ResultBuilder) {
	useTemplates := isQueryContext(req.XPath) || isSystemContext(req.XPath)

	model.VisitSymbols(decls, func(sym *model.Symbol, rng model.TextRange) bool {
		visible := sym.Frame != decls.Frame || rng.Begin < req.Offset
		if visible {
			if !sym.IsTemplateInstance() {
				results.AddItem(sym.Name, KindOf(sym.Type))
			} else if useTemplates {
				results.AddItem(sym.Name, KindProcess)
			}
		}
		return false
	})
}
