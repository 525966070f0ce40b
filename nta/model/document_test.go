package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument()

	record := NewRecord([]string{"a", "b"}, []*Type{NewPrimitive(Int), NewPrimitive(Int)})
	doc.Global.Add(&Symbol{Name: "x", Type: NewPrimitive(Int), Range: TextRange{Begin: 4, End: 5}})
	doc.Global.Add(&Symbol{Name: "s", Type: record, Range: TextRange{Begin: 20, End: 21}})
	doc.Global.Add(&Symbol{Name: "T", Type: NewTypedef("T", record), Range: TextRange{Begin: 40, End: 41}})

	tmpl := doc.AddTemplate("Proc")
	tmpl.Decls.Add(&Symbol{Name: "y", Type: NewPrimitive(Int)})
	tmpl.Decls.Add(&Symbol{Name: "step", Type: NewFunction(NewPrimitive(Void))})
	tmpl.AddLocation("start", TextRange{})
	tmpl.AddLocation("_id0", TextRange{})

	doc.System.Add(&Symbol{Name: "P", Type: NewInstance("Proc"), Range: TextRange{Begin: 0, End: 1}})

	return doc
}

func TestNavigate(t *testing.T) {
	doc := testDocument(t)

	tests := []struct {
		xpath string
		want  *Declarations
	}{
		{"/nta/declaration", doc.Global},
		{"/nta/declaration!", doc.Global},
		{"/nta/system!", doc.System},
		{"/nta/queries!", doc.Queries},
		{"/nta/template[1]/declaration", doc.Templates[0].Decls},
		{"/nta/template[1]/parameter!", doc.Templates[0].Decls},
		{`/nta/template[1]/transition[2]/label[@kind="guard"]`, doc.Templates[0].Decls},
	}

	for _, tt := range tests {
		got, err := doc.Navigate(tt.xpath, 0)
		require.NoError(t, err, "xpath %s", tt.xpath)
		assert.Same(t, tt.want, got, "xpath %s", tt.xpath)
	}
}

func TestNavigateUnknown(t *testing.T) {
	doc := testDocument(t)

	for _, xpath := range []string{"/nta/bogus", "/nta/template[9]/declaration", "/nta/template[x]/declaration", ""} {
		_, err := doc.Navigate(xpath, 0)
		assert.Error(t, err, "xpath %q", xpath)
	}
}

func TestLookupScopeChain(t *testing.T) {
	doc := testDocument(t)

	// System block sees its own symbols and the global ones
	assert.NotNil(t, doc.System.Lookup("P"))
	assert.NotNil(t, doc.System.Lookup("x"))

	// Global block does not see system symbols
	assert.Nil(t, doc.Global.Lookup("P"))

	// Query scope sees everything
	assert.NotNil(t, doc.Queries.Lookup("P"))
	assert.NotNil(t, doc.Queries.Lookup("x"))
}

func TestFindEntityRecord(t *testing.T) {
	doc := testDocument(t)

	entity, ok := doc.FindEntity(doc.Global, "s")
	require.True(t, ok)
	require.NotNil(t, entity.Symbol)
	assert.Equal(t, "s", entity.Symbol.Name)

	field, ok := doc.FindEntity(doc.Global, "s.a")
	require.True(t, ok)
	require.True(t, field.IsType())
	assert.Equal(t, Int, field.Type.Kind())
}

func TestFindEntityTypedef(t *testing.T) {
	doc := testDocument(t)

	entity, ok := doc.FindEntity(doc.Global, "T")
	require.True(t, ok)
	assert.True(t, entity.IsType(), "typedef resolves as a bare type")
	assert.Equal(t, Typedef, entity.Type.Kind())
}

func TestFindEntityInstanceMember(t *testing.T) {
	doc := testDocument(t)

	entity, ok := doc.FindEntity(doc.Queries, "P.y")
	require.True(t, ok)
	require.NotNil(t, entity.Symbol)
	assert.Equal(t, "y", entity.Symbol.Name)

	loc, ok := doc.FindEntity(doc.Queries, "P.start")
	require.True(t, ok)
	require.NotNil(t, loc.Symbol)
	assert.Equal(t, "start", loc.Symbol.Name)
}

func TestFindEntityUnresolved(t *testing.T) {
	doc := testDocument(t)

	for _, name := range []string{"nope", "s.c", "P.z", "x.a", "s..a"} {
		_, ok := doc.FindEntity(doc.Global, name)
		if name == "P.z" {
			_, ok = doc.FindEntity(doc.Queries, name)
		}
		assert.False(t, ok, "name %q", name)
	}
}

func TestUnwrapRecord(t *testing.T) {
	record := NewRecord([]string{"a"}, []*Type{NewPrimitive(Int)})

	assert.Same(t, record, UnwrapRecord(record))
	assert.Same(t, record, UnwrapRecord(NewArray(record)))
	assert.Same(t, record, UnwrapRecord(NewTypedef("T", NewArray(record))))
	assert.Nil(t, UnwrapRecord(NewPrimitive(Int)))
	assert.Nil(t, UnwrapRecord(nil))
}

func TestVisitSymbolsOrder(t *testing.T) {
	doc := testDocument(t)

	var names []string
	VisitSymbols(doc.System, func(sym *Symbol, _ TextRange) bool {
		names = append(names, sym.Name)
		return false
	})

	// Own block first, then enclosing blocks root-ward
	assert.Equal(t, []string{"P", "x", "s", "T"}, names)
}

func TestVisitSymbolsStop(t *testing.T) {
	doc := testDocument(t)

	count := 0
	VisitSymbols(doc.System, func(*Symbol, TextRange) bool {
		count++
		return true
	})
	assert.Equal(t, 1, count)
}

func TestIsTemplateInstance(t *testing.T) {
	doc := testDocument(t)

	assert.True(t, doc.System.Lookup("P").IsTemplateInstance())
	assert.False(t, doc.Global.Lookup("x").IsTemplateInstance())
}

func TestFindProcess(t *testing.T) {
	doc := testDocument(t)

	require.NotNil(t, doc.FindProcess("Proc"))
	assert.Nil(t, doc.FindProcess("Gone"))
}
