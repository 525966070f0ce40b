package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoredMask(t *testing.T) {
	tests := []struct {
		xpath string
		want  FilterMask
	}{
		{"/nta/template[1]/parameter!", ^FilterMask(KindType)},
		{`/nta/template[1]/transition[1]/label[@kind="invariant"]`, ^FilterMask(KindVariable | KindFunction)},
		{`/nta/template[1]/transition[1]/label[@kind="exponentialrate"]`, ^FilterMask(KindVariable)},
		{`/nta/template[1]/transition[1]/label[@kind="select"]`, ^FilterMask(KindType)},
		{`/nta/template[1]/transition[1]/label[@kind="guard"]`, ^FilterMask(KindVariable | KindFunction)},
		{`/nta/template[1]/transition[1]/label[@kind="synchronisation"]`, ^FilterMask(KindChannel)},
		{`/nta/template[1]/transition[1]/label[@kind="assignment"]`, ^FilterMask(KindVariable | KindFunction)},
		{"/nta/declaration", 0},
		{"/nta/queries!", 0},
		{"/nta/system!", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ignoredMask(tt.xpath), "xpath %s", tt.xpath)
	}
}

func TestDefaultVocabularies(t *testing.T) {
	// queries context seeds the query keywords plus built-ins
	vocabs := defaultVocabularies("/nta/queries!")
	assert.Equal(t, [][]Suggestion{queriesItems, builtinFunctions}, vocabs)

	// parameter slots seed only the type keywords
	vocabs = defaultVocabularies("/nta/template[2]/parameter!")
	assert.Equal(t, [][]Suggestion{parameterItems}, vocabs)

	// guard labels seed the tiny guard set plus built-ins
	vocabs = defaultVocabularies(`/nta/template[1]/transition[3]/label[@kind="guard"]`)
	assert.Equal(t, [][]Suggestion{guardItems, builtinFunctions}, vocabs)

	// everything else gets the full default set
	vocabs = defaultVocabularies("/nta/declaration")
	assert.Equal(t, [][]Suggestion{defaultItems, builtinFunctions}, vocabs)
}

func TestQuerySystemContexts(t *testing.T) {
	assert.True(t, isQueryContext("/nta/queries!"))
	assert.False(t, isQueryContext("/nta/queries"))
	assert.False(t, isQueryContext("/nta/declaration"))

	assert.True(t, isSystemContext("/nta/system!"))
	assert.False(t, isSystemContext("/nta/system!extra"))
}
