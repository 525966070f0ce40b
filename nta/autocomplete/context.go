package autocomplete

import "strings"

// Cursor context classification. The suffix of the path expression decides
// which kinds of suggestion make sense in the syntactic slot, and two exact
// paths additionally put the cursor in query or system scope where
// templates surface as processes.

const (
	queriesPath = "/nta/queries!"
	systemPath  = "/nta/system!"
)

// ignoredMask returns the filter of suggestion kinds that do not fit the
// slot the path points at. Zero means everything is admissible.
func ignoredMask(xpath string) FilterMask {
	switch {
	case strings.HasSuffix(xpath, "/parameter!"):
		return ^FilterMask(KindType)
	case strings.HasSuffix(xpath, `label[@kind="invariant"]`):
		return ^FilterMask(KindVariable | KindFunction)
	case strings.HasSuffix(xpath, `label[@kind="exponentialrate"]`):
		return ^FilterMask(KindVariable)
	case strings.HasSuffix(xpath, `label[@kind="select"]`):
		return ^FilterMask(KindType)
	case strings.HasSuffix(xpath, `label[@kind="guard"]`):
		return ^FilterMask(KindVariable | KindFunction)
	case strings.HasSuffix(xpath, `label[@kind="synchronisation"]`):
		return ^FilterMask(KindChannel)
	case strings.HasSuffix(xpath, `label[@kind="assignment"]`):
		return ^FilterMask(KindVariable | KindFunction)
	}
	return 0
}

// defaultVocabularies returns the keyword and built-in tables to seed for
// the path's context.
func defaultVocabularies(xpath string) [][]Suggestion {
	switch {
	case strings.HasSuffix(xpath, "/queries!"):
		return [][]Suggestion{queriesItems, builtinFunctions}
	case strings.HasSuffix(xpath, "/parameter!"):
		return [][]Suggestion{parameterItems}
	case strings.HasSuffix(xpath, `label[@kind="guard"]`):
		return [][]Suggestion{guardItems, builtinFunctions}
	}
	return [][]Suggestion{defaultItems, builtinFunctions}
}

// isQueryContext reports whether the cursor is in the model's query section
func isQueryContext(xpath string) bool { return xpath == queriesPath }

// isSystemContext reports whether the cursor is in the system block
func isSystemContext(xpath string) bool { return xpath == systemPath }
