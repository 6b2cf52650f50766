package rdf

import (
	"testing"

	owl "github.com/field33/owlish-sub000"
)

// fixedProducer is a TripleProducer that ignores its input text and always
// yields the same fixed triple set, mirroring the store package's
// fakeProducer: it exists so these tests can build a real *owl.Ontology
// without depending on the turtle package.
type fixedProducer struct {
	triples []owl.Triple
}

func (p fixedProducer) Produce(string) ([]owl.Triple, error) { return p.triples, nil }

func mustParse(t *testing.T, triples []owl.Triple) *owl.Ontology {
	t.Helper()
	o, err := owl.Parse("unused", fixedProducer{triples: triples}, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("failed to build ontology: %v", err)
	}
	return o
}

func TestOntologyToQuadsDeclarationsAndSubClassOf(t *testing.T) {
	animal := owl.MustIRI("http://example.org/onto#Animal")
	dog := owl.MustIRI("http://example.org/onto#Dog")

	o := mustParse(t, []owl.Triple{
		{Subject: owl.TermFromIRI(animal), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFSSubClassOf, Object: owl.TermFromIRI(animal)},
	})

	quads := OntologyToQuads(o)
	if len(quads) != 3 {
		t.Fatalf("expected 3 quads, got %d: %+v", len(quads), quads)
	}
	for _, q := range quads {
		if q.Graph != DefaultGraph {
			t.Errorf("expected graph %q, got %q", DefaultGraph, q.Graph)
		}
	}

	found := false
	for _, q := range quads {
		if q.Predicate.Equal(owl.RDFSSubClassOf) &&
			q.Subject.Kind == owl.TermIRI && q.Subject.IRI.Equal(dog) &&
			q.Object.Kind == owl.TermIRI && q.Object.IRI.Equal(animal) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Dog rdfs:subClassOf Animal quad, got %+v", quads)
	}
}

func TestQuadsRoundTripThroughOntology(t *testing.T) {
	animal := owl.MustIRI("http://example.org/onto#Animal")
	dog := owl.MustIRI("http://example.org/onto#Dog")
	rex := owl.MustIRI("http://example.org/onto#Rex")

	o := mustParse(t, []owl.Triple{
		{Subject: owl.TermFromIRI(animal), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFSSubClassOf, Object: owl.TermFromIRI(animal)},
		{Subject: owl.TermFromIRI(rex), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLNamedIndividual)},
		{Subject: owl.TermFromIRI(rex), Predicate: owl.RDFType, Object: owl.TermFromIRI(dog)},
	})

	quads := OntologyToQuads(o)
	got, err := QuadsToOntology(quads, nil, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("QuadsToOntology failed: %v", err)
	}

	if len(got.Declarations()) != len(o.Declarations()) {
		t.Fatalf("declaration count mismatch: want %d got %d", len(o.Declarations()), len(got.Declarations()))
	}
	if len(got.Axioms()) != len(o.Axioms()) {
		t.Fatalf("axiom count mismatch: want %d got %d", len(o.Axioms()), len(got.Axioms()))
	}
	for i, wa := range o.Axioms() {
		ga := got.Axioms()[i]
		if wa.Kind != ga.Kind {
			t.Errorf("axiom %d kind mismatch: want %v got %v", i, wa.Kind, ga.Kind)
		}
	}
}

func TestOntologyToQuadsRestrictionUsesBlankNode(t *testing.T) {
	dog := owl.NewClassIRI(owl.MustIRI("http://example.org/onto#Dog"))
	hasOwner := owl.NewObjectPropertyIRI(owl.MustIRI("http://example.org/onto#hasOwner"))
	person := owl.NewClassIRI(owl.MustIRI("http://example.org/onto#Person"))

	o := owl.NewOntology(nil)
	restriction := owl.NewObjectSomeValuesFrom(hasOwner, owl.NewClassIRIExpr(person))
	_ = dog
	quads := (&graphWriter{o: o}).classExprTerm(restriction)
	if quads.Kind != owl.TermBlank {
		t.Fatalf("expected a blank node for a restriction, got %+v", quads)
	}
}

func TestOntologyToQuadsHasKeyCollection(t *testing.T) {
	dog := owl.NewClassIRI(owl.MustIRI("http://example.org/onto#Dog"))
	tag := owl.NewDataPropertyIRI(owl.MustIRI("http://example.org/onto#tag"))

	o := owl.NewOntology(nil)
	g := &graphWriter{o: o}
	g.emitAxiom(owl.Axiom{
		Kind:           owl.AxiomHasKey,
		Class:          owl.NewClassIRIExpr(dog),
		DataProperties: []owl.DataPropertyIRI{tag},
	})

	if len(g.quads) == 0 {
		t.Fatal("expected quads for a HasKey axiom")
	}
	sawHasKey := false
	for _, q := range g.quads {
		if q.Predicate.Equal(owl.OWLHasKey) {
			sawHasKey = true
			if q.Object.Kind != owl.TermBlank {
				t.Errorf("expected owl:hasKey's object to be a list head blank node, got %+v", q.Object)
			}
		}
	}
	if !sawHasKey {
		t.Error("expected an owl:hasKey quad")
	}
}

func TestReificationUsesRDFStatementVocabulary(t *testing.T) {
	dog := owl.NewClassIRI(owl.MustIRI("http://example.org/onto#Dog"))
	animal := owl.NewClassIRI(owl.MustIRI("http://example.org/onto#Animal"))
	label := owl.NewAnnotationPropertyIRI(owl.RDFSLabel)

	o := owl.NewOntology(nil)
	g := &graphWriter{o: o}
	g.emitAxiom(owl.Axiom{
		Kind:        owl.AxiomSubClassOf,
		SubClass:    owl.NewClassIRIExpr(dog),
		SuperClass:  owl.NewClassIRIExpr(animal),
		Annotations: []owl.Annotation{owl.NewAnnotation(label, owl.NewLiteralOrIRIFromLiteral(owl.NewStringLiteral("well known")), nil)},
	})

	var statementTypeSeen bool
	for _, q := range g.quads {
		if q.Predicate.Equal(owl.RDFType) && q.Object.Kind == owl.TermIRI && q.Object.IRI.Equal(RDFStatement) {
			statementTypeSeen = true
		}
		if q.Predicate.Equal(owl.OWLAxiom) || (q.Object.Kind == owl.TermIRI && q.Object.IRI.Equal(owl.OWLAxiom)) {
			t.Error("rdf package must not emit owl:Axiom reification")
		}
	}
	if !statementTypeSeen {
		t.Error("expected an rdf:Statement reification block for the annotated axiom")
	}
}
