// Package jsonld converts a parsed Ontology to and from a JSON-LD document,
// using the rdf package's quad form as an intermediate representation and
// piprate/json-gold to do the actual JSON-LD <-> RDF dataset conversion.
//
// This mirrors the teacher's AtomRDFJSONLD/AtomsRDFJSONLD wrappers, with an
// Ontology standing in for a slice of atoms: convert to RDF, hand the
// dataset to json-gold's FromRDF/ToRDF, and convert back. Because it sits
// on top of the rdf package, the same reification caveat applies here:
// annotations on reified axioms do not survive an OntologyToJSONLD ->
// JSONLDToOntology round trip.
package jsonld

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/piprate/json-gold/ld"

	owl "github.com/field33/owlish-sub000"
	"github.com/field33/owlish-sub000/rdf"
)

// OntologyToJSONLD converts o to a JSON-LD document via its RDF quad form.
func OntologyToJSONLD(o *owl.Ontology) (interface{}, error) {
	dataset := quadsToDataset(rdf.OntologyToQuads(o))

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.UseNativeTypes = true

	doc, err := proc.FromRDF(dataset, opts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: converting RDF to JSON-LD: %w", err)
	}
	return doc, nil
}

// JSONLDToOntology parses a JSON-LD document (as produced by OntologyToJSONLD,
// or any other compacted/expanded/flattened JSON-LD document describing an
// OWL 2 ontology) back into an Ontology.
func JSONLDToOntology(doc interface{}, prefixes map[string]string, options owl.ParserOptions) (*owl.Ontology, error) {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")

	raw, err := proc.ToRDF(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: converting JSON-LD to RDF: %w", err)
	}
	dataset, ok := raw.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected RDF dataset type %T", raw)
	}

	quads := datasetToQuads(dataset)
	return rdf.QuadsToOntology(quads, prefixes, options)
}

// OntologyRDFJSONLD is a wrapper around *owl.Ontology that implements
// json.MarshalerTo and json.UnmarshalerFrom using RDF as an intermediate
// representation, for interoperating with generic JSON-LD tooling instead
// of this module's own compact JSON encoding (see the root package's
// json.go).
type OntologyRDFJSONLD struct {
	Ontology *owl.Ontology

	// Prefixes and Options are only consulted by UnmarshalJSONFrom, since
	// an incoming JSON-LD document carries no parser configuration.
	Prefixes map[string]string
	Options  owl.ParserOptions
}

func (o OntologyRDFJSONLD) MarshalJSONTo(enc *jsontext.Encoder) error {
	doc, err := OntologyToJSONLD(o.Ontology)
	if err != nil {
		return err
	}
	return json.MarshalEncode(enc, doc)
}

func (o *OntologyRDFJSONLD) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	bytes, err := dec.ReadValue()
	if err != nil {
		return fmt.Errorf("jsonld: reading JSON value: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return fmt.Errorf("jsonld: unmarshaling JSON-LD: %w", err)
	}
	ont, err := JSONLDToOntology(doc, o.Prefixes, o.Options)
	if err != nil {
		return err
	}
	o.Ontology = ont
	return nil
}

// quadsToDataset groups rdf.Quads by graph into a json-gold RDFDataset.
func quadsToDataset(quads []rdf.Quad) *ld.RDFDataset {
	dataset := ld.NewRDFDataset()
	for _, q := range quads {
		graph := q.Graph
		if graph == "" {
			graph = rdf.DefaultGraph
		}
		quad := ld.NewQuad(termToNode(q.Subject), ld.NewIRI(q.Predicate.String()), termToNode(q.Object), graph)
		dataset.Graphs[graph] = append(dataset.Graphs[graph], quad)
	}
	return dataset
}

// datasetToQuads flattens every graph of an RDFDataset back into a single
// slice of rdf.Quads, preserving each quad's graph name.
func datasetToQuads(dataset *ld.RDFDataset) []rdf.Quad {
	var quads []rdf.Quad
	for graph, graphQuads := range dataset.Graphs {
		for _, q := range graphQuads {
			quads = append(quads, rdf.Quad{
				Subject:   nodeToTerm(q.Subject),
				Predicate: owl.MustIRI(q.Predicate.GetValue()),
				Object:    nodeToTerm(q.Object),
				Graph:     graph,
			})
		}
	}
	return quads
}

func termToNode(t owl.Term) ld.Node {
	switch t.Kind {
	case owl.TermBlank:
		return ld.NewBlankNode(t.Blank)
	case owl.TermLiteral:
		return literalToNode(t.Literal)
	default:
		return ld.NewIRI(t.IRI.String())
	}
}

func nodeToTerm(n ld.Node) owl.Term {
	switch v := n.(type) {
	case *ld.BlankNode:
		return owl.TermFromBlank(v.Attribute)
	case *ld.Literal:
		return owl.TermFromLiteral(nodeLiteralToOWL(v))
	case *ld.IRI:
		return owl.TermFromIRI(owl.MustIRI(v.Value))
	default:
		return owl.TermFromIRI(owl.MustIRI(n.GetValue()))
	}
}

// literalToNode converts an owl.Literal to its json-gold RDF representation.
// Number literals carry their original datatype when present, falling back
// to xsd:integer's lexical family; a literal with no claimed datatype at
// all defaults to xsd:string, matching ParseLiteral's own default.
func literalToNode(l owl.Literal) ld.Node {
	switch l.Kind {
	case owl.LiteralLangString:
		return ld.NewLiteral(l.Text, ld.RDFLangString, l.Lang)
	case owl.LiteralBool:
		v := "false"
		if l.Bool {
			v = "true"
		}
		return ld.NewLiteral(v, owl.XSDBoolean.String(), "")
	case owl.LiteralNumber:
		dt := owl.XSDInteger
		if l.Datatype != nil {
			dt = *l.Datatype
		}
		return ld.NewLiteral(l.Numeric, dt.String(), "")
	case owl.LiteralDateTime:
		return ld.NewLiteral(l.Text, owl.XSDDateTime.String(), "")
	case owl.LiteralRaw:
		dt := owl.XSDString
		if l.Datatype != nil {
			dt = *l.Datatype
		}
		return ld.NewLiteral(l.Text, dt.String(), "")
	default:
		return ld.NewLiteral(l.Text, owl.XSDString.String(), "")
	}
}

// nodeLiteralToOWL is the inverse of literalToNode, delegating to
// ParseLiteral so the recognised-datatype rules stay in one place.
func nodeLiteralToOWL(l *ld.Literal) owl.Literal {
	if l.Language != "" {
		return owl.NewLangStringLiteral(l.Value, l.Language)
	}
	if l.Datatype == "" {
		return owl.ParseLiteral(l.Value, nil, "")
	}
	dt := owl.MustIRI(l.Datatype)
	return owl.ParseLiteral(l.Value, &dt, "")
}
