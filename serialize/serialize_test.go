package serialize

import (
	"strings"
	"testing"

	owl "github.com/field33/owlish-sub000"
	"github.com/field33/owlish-sub000/turtle"
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

func TestToTurtleContainsExpectedConstructs(t *testing.T) {
	text := ToTurtle(sampleOntology(t))

	for _, want := range []string{
		"owl:Class",
		"rdfs:subClassOf",
		"owl:NamedIndividual",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected serialized Turtle to contain %q, got:\n%s", want, text)
		}
	}
}

func TestToTurtleRoundTripsThroughTheTurtleDecoder(t *testing.T) {
	want := sampleOntology(t)
	text := ToTurtle(want)

	got, err := owl.Parse(text, turtle.NewDecoder(), owl.NewParserOptions())
	if err != nil {
		t.Fatalf("failed to re-parse serialized Turtle: %v\n%s", err, text)
	}

	if len(got.Declarations()) != len(want.Declarations()) {
		t.Fatalf("declaration count mismatch: want %d got %d\n%s", len(want.Declarations()), len(got.Declarations()), text)
	}
	if len(got.Axioms()) != len(want.Axioms()) {
		t.Fatalf("axiom count mismatch: want %d got %d\n%s", len(want.Axioms()), len(got.Axioms()), text)
	}
	for i, wa := range want.Axioms() {
		ga := got.Axioms()[i]
		if wa.Kind != ga.Kind {
			t.Errorf("axiom %d kind mismatch: want %v got %v", i, wa.Kind, ga.Kind)
		}
	}
}

func TestToTurtleQuotesLiteralsWithReservedCharacters(t *testing.T) {
	dog := owl.NewIndividualIRI(owl.MustIRI("http://example.org/onto#Dog"))
	label := owl.NewAnnotationPropertyIRI(owl.RDFSLabel)

	o := owl.NewOntology(map[string]string{"ex": "http://example.org/onto#"})
	w := newWriter(o)
	w.triple(w.resource(owl.ResourceIdFromIRI(dog.AsIRI())), w.abbreviate(label.AsIRI()),
		w.literalOrIRI(owl.NewLiteralOrIRIFromLiteral(owl.NewStringLiteral("line one\nline \"two\""))), nil)

	text := w.sb.String()
	if !strings.Contains(text, `\n`) || !strings.Contains(text, `\"`) {
		t.Errorf("expected newline and quote escaping in serialized literal, got:\n%s", text)
	}
}
