package turtle

import (
	"testing"

	owl "github.com/field33/owlish-sub000"
)

func produce(t *testing.T, doc string) ([]owl.Triple, *Decoder) {
	t.Helper()
	d := NewDecoder()
	triples, err := d.Produce(doc)
	if err != nil {
		t.Fatalf("Produce failed: %v\ndoc:\n%s", err, doc)
	}
	return triples, d
}

func TestDecoderPrefixesAndSimpleTriple(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog a ex:Animal .
`
	triples, d := produce(t, doc)
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d: %+v", len(triples), triples)
	}
	tr := triples[0]
	if tr.Subject.Kind != owl.TermIRI || tr.Subject.IRI.String() != "http://example.org/onto#Dog" {
		t.Errorf("unexpected subject: %+v", tr.Subject)
	}
	if !tr.Predicate.Equal(owl.RDFType) {
		t.Errorf("expected 'a' to expand to rdf:type, got %v", tr.Predicate)
	}
	if tr.Object.IRI.String() != "http://example.org/onto#Animal" {
		t.Errorf("unexpected object: %+v", tr.Object)
	}
	if d.Prefixes()["ex"] != "http://example.org/onto#" {
		t.Errorf("expected Prefixes() to surface the declared prefix, got %+v", d.Prefixes())
	}
}

func TestDecoderSemicolonAndCommaLists(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog a ex:Animal ;
       ex:name "Rex", "Fido" .
`
	triples, _ := produce(t, doc)
	if len(triples) != 3 {
		t.Fatalf("expected 3 triples, got %d: %+v", len(triples), triples)
	}
}

func TestDecoderCollection(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog ex:likes ( ex:Ball ex:Stick ) .
`
	triples, _ := produce(t, doc)
	// 1 likes triple + 2 rdf:first + 2 rdf:rest = 5
	if len(triples) != 5 {
		t.Fatalf("expected 5 triples for a 2-item collection, got %d: %+v", len(triples), triples)
	}
	var sawNil bool
	for _, tr := range triples {
		if tr.Predicate.Equal(owl.RDFRest) && tr.Object.Kind == owl.TermIRI && tr.Object.IRI.Equal(owl.RDFNil) {
			sawNil = true
		}
	}
	if !sawNil {
		t.Error("expected the collection's tail to end in rdf:nil")
	}
}

func TestDecoderEmptyCollectionIsRDFNil(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog ex:likes () .
`
	triples, _ := produce(t, doc)
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	if triples[0].Object.Kind != owl.TermIRI || !triples[0].Object.IRI.Equal(owl.RDFNil) {
		t.Errorf("expected an empty collection to resolve to rdf:nil, got %+v", triples[0].Object)
	}
}

func TestDecoderBlankNodePropertyList(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog ex:hasOwner [ ex:name "Alice" ] .
`
	triples, _ := produce(t, doc)
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples (hasOwner + name), got %d: %+v", len(triples), triples)
	}
	// the nested list's triples are emitted before the outer triple
	if triples[1].Object.Kind != owl.TermBlank {
		t.Errorf("expected hasOwner's object to be a blank node, got %+v", triples[1].Object)
	}
	if !triples[1].Object.Equal(triples[0].Subject) {
		t.Errorf("expected the blank node property list's subject to match the outer object")
	}
}

func TestDecoderLiteralsTypedAndLangTagged(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
ex:Dog ex:age "5"^^xsd:integer ;
       ex:label "Rex"@en .
`
	triples, _ := produce(t, doc)
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(triples))
	}
	age := triples[0].Object.Literal
	if age.Kind != owl.LiteralNumber || age.Numeric != "5" {
		t.Errorf("expected a numeric literal \"5\", got %+v", age)
	}
	label := triples[1].Object.Literal
	if label.Kind != owl.LiteralLangString || label.Text != "Rex" || label.Lang != "en" {
		t.Errorf("expected a lang-tagged literal, got %+v", label)
	}
}

func TestDecoderBareNumericAndBooleanLiterals(t *testing.T) {
	const doc = `
@prefix ex: <http://example.org/onto#> .
ex:Dog ex:age 5 ;
       ex:weight 12.5 ;
       ex:adopted true .
`
	triples, _ := produce(t, doc)
	if len(triples) != 3 {
		t.Fatalf("expected 3 triples, got %d", len(triples))
	}
	if triples[0].Object.Literal.Kind != owl.LiteralNumber || triples[0].Object.Literal.Datatype == nil ||
		!triples[0].Object.Literal.Datatype.Equal(owl.XSDInteger) {
		t.Errorf("expected a bare integer literal, got %+v", triples[0].Object.Literal)
	}
	if triples[1].Object.Literal.Datatype == nil || !triples[1].Object.Literal.Datatype.Equal(owl.XSDDecimal) {
		t.Errorf("expected a bare decimal literal, got %+v", triples[1].Object.Literal)
	}
	if triples[2].Object.Literal.Kind != owl.LiteralBool || !triples[2].Object.Literal.Bool {
		t.Errorf("expected a boolean literal true, got %+v", triples[2].Object.Literal)
	}
}

func TestDecoderParsesThroughOWLParse(t *testing.T) {
	const doc = `
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <http://example.org/onto#> .

ex:Animal a owl:Class .
ex:Dog a owl:Class ;
    rdfs:subClassOf ex:Animal .
`
	d := NewDecoder()
	o, err := owl.Parse(doc, d, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("owl.Parse failed: %v", err)
	}
	if len(o.Declarations()) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(o.Declarations()))
	}
	if len(o.Axioms()) != 1 {
		t.Fatalf("expected 1 axiom, got %d", len(o.Axioms()))
	}
	if o.Prefixes()["ex"] != "http://example.org/onto#" {
		t.Errorf("expected owl.Parse to pick up the decoder's prefixes, got %+v", o.Prefixes())
	}
}
