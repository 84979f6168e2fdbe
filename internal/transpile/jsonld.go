package transpile

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gongahkia/yuho/internal/ast"
)

// legalContext mirrors jsonld_transpiler.py's LEGAL_CONTEXT: a vocabulary
// anchored on schema.org's Legislation type plus a yuho: namespace for
// concepts schema.org has no term for.
var legalContext = NewOrderedMap().
	Set("@vocab", "https://schema.org/").
	Set("yuho", "https://yuho.dev/ontology#").
	Set("eli", "http://data.europa.eu/eli/ontology#").
	Set("Statute", "yuho:Legislation").
	Set("section_number", "yuho:legislationIdentifier").
	Set("title", "name").
	Set("definitions", "yuho:hasDefinition").
	Set("elements", "yuho:hasElement").
	Set("actus_reus", "yuho:actusReus").
	Set("mens_rea", "yuho:mensRea").
	Set("circumstance", "yuho:circumstance").
	Set("penalty", "yuho:hasPenalty").
	Set("illustrations", "yuho:hasIllustration").
	Set("imprisonment_min", "yuho:imprisonmentMin").
	Set("imprisonment_max", "yuho:imprisonmentMax").
	Set("fine_min", "yuho:fineMin").
	Set("fine_max", "yuho:fineMax")

// JSONLDTranspiler wraps the tree-shaped JSON rendering in a JSON-LD
// envelope against legalContext, grounded on jsonld_transpiler.py. That
// source rebuilds the mapping by reflecting back onto the originating
// Python object (`getattr`) as it walks a generic dict; Go has no
// equivalent dynamic dispatch, so this is restructured as a direct
// per-node builder that emits its own statute, struct and function
// objects with "@type"/"@id" annotations (no "_type" tags), calling
// JSONTranspiler's toMap only for nested expressions and types.
type JSONLDTranspiler struct {
	BaseURI          string
	IncludeLocations bool
	json             *JSONTranspiler
}

func NewJSONLDTranspiler(baseURI string, includeLocations bool) *JSONLDTranspiler {
	if baseURI == "" {
		baseURI = "https://yuho.dev/id/"
	}
	return &JSONLDTranspiler{
		BaseURI:          baseURI,
		IncludeLocations: includeLocations,
		json:             NewJSONTranspiler(includeLocations, 0),
	}
}

func (t *JSONLDTranspiler) Target() TranspileTarget { return TargetJSONLD }

func (t *JSONLDTranspiler) Transpile(m *ast.Module) (string, error) {
	graph := make([]any, 0, len(m.Statutes)+len(m.Structs)+len(m.Functions))
	for _, s := range m.Statutes {
		graph = append(graph, t.statute(s))
	}
	for _, s := range m.Structs {
		graph = append(graph, t.structDef(s))
	}
	for _, f := range m.Functions {
		graph = append(graph, t.functionDef(f))
	}
	doc := NewOrderedMap().
		Set("@context", legalContext).
		Set("@graph", graph)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("transpile: jsonld: %w", err)
	}
	return string(data), nil
}

func (t *JSONLDTranspiler) id(segment, name string) string {
	return t.BaseURI + segment + url.PathEscape(name)
}

func (t *JSONLDTranspiler) statute(s *ast.Statute) *OrderedMap {
	defs := make([]any, len(s.Definitions))
	for i, d := range s.Definitions {
		defs[i] = NewOrderedMap().Set("term", d.Name).Set("definition", t.json.toMap(d.Value))
	}
	elems := make([]any, len(s.Elements))
	for i, e := range s.Elements {
		elems[i] = NewOrderedMap().
			Set("@type", "yuho:"+elementRoleLD(e.Role)).
			Set("name", e.Name).
			Set("description", t.json.toMap(e.Description))
	}
	illus := make([]any, len(s.Illustrations))
	for i, il := range s.Illustrations {
		illus[i] = il.Text
	}
	m := NewOrderedMap().
		Set("@id", t.id("statutes/", s.Section)).
		Set("@type", "yuho:Legislation").
		Set("section_number", s.Section)
	if s.Title != "" {
		m.Set("name", s.Title)
	}
	m.Set("definitions", defs).Set("elements", elems)
	if s.Penalty != nil {
		m.Set("penalty", t.penalty(s.Penalty))
	}
	return m.Set("illustrations", illus)
}

func (t *JSONLDTranspiler) penalty(p *ast.Penalty) *OrderedMap {
	m := NewOrderedMap().Set("@type", "yuho:Penalty")
	if p.ImprisonmentMin != nil {
		m.Set("imprisonment_min", t.json.toMap(p.ImprisonmentMin))
	}
	if p.ImprisonmentMax != nil {
		m.Set("imprisonment_max", t.json.toMap(p.ImprisonmentMax))
	}
	if p.FineMin != nil {
		m.Set("fine_min", t.json.toMap(p.FineMin))
	}
	if p.FineMax != nil {
		m.Set("fine_max", t.json.toMap(p.FineMax))
	}
	if p.Text != "" {
		m.Set("supplementary", p.Text)
	}
	return m
}

func (t *JSONLDTranspiler) structDef(s *ast.StructDef) *OrderedMap {
	fields := make([]any, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = NewOrderedMap().Set("name", f.Name).Set("type", t.json.toMap(f.Type))
	}
	return NewOrderedMap().
		Set("@id", t.id("types/", s.Name)).
		Set("@type", "yuho:StructType").
		Set("name", s.Name).
		Set("fields", fields)
}

func (t *JSONLDTranspiler) functionDef(f *ast.FunctionDef) *OrderedMap {
	params := make([]any, len(f.Params))
	for i, p := range f.Params {
		params[i] = NewOrderedMap().Set("name", p.Name).Set("type", t.json.toMap(p.Type))
	}
	return NewOrderedMap().
		Set("@id", t.id("functions/", f.Name)).
		Set("@type", "yuho:Function").
		Set("name", f.Name).
		Set("params", params)
}

func elementRoleLD(r ast.ElementRole) string {
	switch r {
	case ast.RoleActusReus:
		return "actusReus"
	case ast.RoleMensRea:
		return "mensRea"
	case ast.RoleCircumstance:
		return "circumstance"
	default:
		return string(r)
	}
}
