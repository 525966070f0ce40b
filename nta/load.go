// Package nta loads NTA model documents from their XML form and keeps the
// active document available to the language tooling.
package nta

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/nta/model"
	"github.com/teranos/TALS/nta/parser"
)

// XML shapes of an NTA model file. Only the parts the language service
// needs are mapped; everything else (layout coordinates, queries' comments)
// is ignored by encoding/xml.
type ntaXML struct {
	XMLName     xml.Name      `xml:"nta"`
	Declaration string        `xml:"declaration"`
	Templates   []templateXML `xml:"template"`
	System      string        `xml:"system"`
}

type templateXML struct {
	Name        string        `xml:"name"`
	Parameter   string        `xml:"parameter"`
	Declaration string        `xml:"declaration"`
	Locations   []locationXML `xml:"location"`
}

type locationXML struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name"`
}

// LoadDocument reads and parses an NTA model file
func LoadDocument(path string) (*model.Document, []parser.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read model file %s", path)
	}
	return ParseDocument(data)
}

// ParseDocument builds a semantic document from NTA XML. Declaration
// regions that fail to parse are reported as diagnostics; the document is
// still returned with everything that did parse.
func ParseDocument(data []byte) (*model.Document, []parser.Diagnostic, error) {
	var raw ntaXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse NTA XML")
	}

	doc := model.NewDocument()
	var diags []parser.Diagnostic

	diags = append(diags, parser.ParseDeclarations(raw.Declaration, doc.Global)...)

	for i, rawTmpl := range raw.Templates {
		name := strings.TrimSpace(rawTmpl.Name)
		if name == "" {
			name = fmt.Sprintf("Template%d", i+1)
		}
		tmpl := doc.AddTemplate(name)

		diags = append(diags, parser.ParseParameters(rawTmpl.Parameter, tmpl.Decls)...)
		diags = append(diags, parser.ParseDeclarations(rawTmpl.Declaration, tmpl.Decls)...)

		for j, loc := range rawTmpl.Locations {
			tmpl.AddLocation(locationName(loc, j), model.TextRange{})
		}
	}

	diags = append(diags, parser.ParseDeclarations(raw.System, doc.System)...)

	return doc, diags, nil
}

// locationName returns the declared location name, or the auto-generated
// _id<N> name the editor assigns to unnamed locations.
func locationName(loc locationXML, index int) string {
	if name := strings.TrimSpace(loc.Name); name != "" {
		return name
	}
	// Location ids follow the form "id<N>"; reuse N when present so names
	// line up with what the editor shows.
	if strings.HasPrefix(loc.ID, "id") {
		return "_" + loc.ID
	}
	return fmt.Sprintf("_id%d", index)
}
