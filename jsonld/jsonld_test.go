package jsonld

import (
	"testing"

	"github.com/go-json-experiment/json"

	owl "github.com/field33/owlish-sub000"
)

type fixedProducer struct{ triples []owl.Triple }

func (p fixedProducer) Produce(string) ([]owl.Triple, error) { return p.triples, nil }

func sampleOntology(t *testing.T) *owl.Ontology {
	t.Helper()
	animal := owl.MustIRI("http://example.org/onto#Animal")
	dog := owl.MustIRI("http://example.org/onto#Dog")
	rex := owl.MustIRI("http://example.org/onto#Rex")

	o, err := owl.Parse("unused", fixedProducer{triples: []owl.Triple{
		{Subject: owl.TermFromIRI(animal), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFSSubClassOf, Object: owl.TermFromIRI(animal)},
		{Subject: owl.TermFromIRI(rex), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLNamedIndividual)},
		{Subject: owl.TermFromIRI(rex), Predicate: owl.RDFType, Object: owl.TermFromIRI(dog)},
	}}, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("failed to build sample ontology: %v", err)
	}
	return o
}

func TestOntologyToJSONLDRoundTrip(t *testing.T) {
	want := sampleOntology(t)

	doc, err := OntologyToJSONLD(want)
	if err != nil {
		t.Fatalf("OntologyToJSONLD failed: %v", err)
	}

	got, err := JSONLDToOntology(doc, nil, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("JSONLDToOntology failed: %v", err)
	}

	if len(got.Declarations()) != len(want.Declarations()) {
		t.Fatalf("declaration count mismatch: want %d got %d", len(want.Declarations()), len(got.Declarations()))
	}
	if len(got.Axioms()) != len(want.Axioms()) {
		t.Fatalf("axiom count mismatch: want %d got %d", len(want.Axioms()), len(got.Axioms()))
	}
}

func TestOntologyToJSONLDProducesArrayDocument(t *testing.T) {
	doc, err := OntologyToJSONLD(sampleOntology(t))
	if err != nil {
		t.Fatalf("OntologyToJSONLD failed: %v", err)
	}
	if _, ok := doc.([]interface{}); !ok {
		t.Fatalf("expected FromRDF to return an expanded JSON-LD array, got %T", doc)
	}
}

func TestOntologyRDFJSONLDMarshalUnmarshal(t *testing.T) {
	want := sampleOntology(t)
	wrapper := OntologyRDFJSONLD{Ontology: want}

	bytes, err := json.Marshal(wrapper)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var roundTripped OntologyRDFJSONLD
	roundTripped.Options = owl.NewParserOptions()
	if err := json.Unmarshal(bytes, &roundTripped); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(roundTripped.Ontology.Axioms()) != len(want.Axioms()) {
		t.Errorf("axiom count mismatch: want %d got %d", len(want.Axioms()), len(roundTripped.Ontology.Axioms()))
	}
}
