package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/TALS/nta/model"
)

func TestBuilderMask(t *testing.T) {
	b := NewResultBuilder()
	b.SetIgnoredMask(^FilterMask(KindChannel))

	b.AddItem("c", KindChannel)
	b.AddItem("x", KindVariable)
	b.AddItem("f", KindFunction)

	items := b.Take()
	require.Len(t, items, 1)
	assert.Equal(t, Suggestion{Name: "c", Kind: KindChannel}, items[0])
}

func TestBuilderNoMaskAdmitsAll(t *testing.T) {
	b := NewResultBuilder()
	b.AddAll(defaultItems, builtinFunctions)

	assert.Len(t, b.Take(), len(defaultItems)+len(builtinFunctions))
}

func TestBuilderAddDefaults(t *testing.T) {
	tests := []struct {
		xpath    string
		contains string
		kind     SymKind
		absent   string
	}{
		{"/nta/queries!", "forall", KindUnknown, "typedef"},
		{"/nta/template[1]/parameter!", "clock", KindType, "sin"},
		{`/nta/template[1]/transition[1]/label[@kind="guard"]`, "true", KindUnknown, "typedef"},
		{"/nta/declaration", "typedef", KindUnknown, ""},
	}

	for _, tt := range tests {
		b := NewResultBuilder()
		b.AddDefaults(tt.xpath)
		items := b.Take()

		assert.Contains(t, items, Suggestion{Name: tt.contains, Kind: tt.kind}, "xpath %s", tt.xpath)
		if tt.absent != "" {
			for _, item := range items {
				assert.NotEqual(t, tt.absent, item.Name, "xpath %s", tt.xpath)
			}
		}
	}
}

func TestBuilderAddRecord(t *testing.T) {
	record := model.NewRecord([]string{"a", "b"}, []*model.Type{
		model.NewPrimitive(model.Int),
		model.NewPrimitive(model.Int),
	})

	b := NewResultBuilder()
	b.SetPrefix("s.")
	b.AddRecord(record)

	assert.Equal(t, []Suggestion{
		{Name: "s.a", Kind: KindVariable},
		{Name: "s.b", Kind: KindVariable},
	}, b.Take())
}

func TestBuilderAddRecordUnwraps(t *testing.T) {
	record := model.NewRecord([]string{"a"}, []*model.Type{model.NewPrimitive(model.Int)})

	// Array-of-record and typedef wrappers reach the record
	b := NewResultBuilder()
	b.AddRecord(model.NewArray(record))
	assert.Len(t, b.Take(), 1)

	b.AddRecord(model.NewTypedef("T", record))
	assert.Len(t, b.Take(), 1)

	// Non-records emit nothing
	b.AddRecord(model.NewPrimitive(model.Int))
	assert.Empty(t, b.Take())
}

func TestBuilderAddTemplate(t *testing.T) {
	doc := model.NewDocument()
	tmpl := doc.AddTemplate("Proc")
	tmpl.Decls.Add(&model.Symbol{Name: "y", Type: model.NewPrimitive(model.Int)})
	tmpl.Decls.Add(&model.Symbol{Name: "step", Type: model.NewFunction(model.NewPrimitive(model.Void))})
	tmpl.AddLocation("idle", model.TextRange{})
	tmpl.AddLocation("_id0", model.TextRange{})

	b := NewResultBuilder()
	b.SetPrefix("P.")
	b.AddTemplate(tmpl)

	items := b.Take()
	assert.Contains(t, items, Suggestion{Name: "P.y", Kind: KindVariable})
	assert.Contains(t, items, Suggestion{Name: "P.step", Kind: KindFunction})
	assert.Contains(t, items, Suggestion{Name: "P.idle", Kind: KindUnknown})
	for _, item := range items {
		assert.NotEqual(t, "P._id0", item.Name, "auto-generated locations are never emitted")
	}
}

func TestBuilderTakeResets(t *testing.T) {
	b := NewResultBuilder()
	b.AddItem("x", KindVariable)

	assert.Len(t, b.Take(), 1)
	assert.Empty(t, b.Take())
}

func TestIsNameAutogenerated(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"_id0", true},
		{"_id42", true},
		{"_id", false},
		{"_idx", false},
		{"_id4x", false},
		{"id0", false},
		{"start", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isNameAutogenerated(tt.name), "name %q", tt.name)
	}
}
