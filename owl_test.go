package owl

import "testing"

type fixedProducer struct{ triples []Triple }

func (p fixedProducer) Produce(string) ([]Triple, error) { return p.triples, nil }

func TestParseDeclarationsAndSubClassOf(t *testing.T) {
	animal := MustIRI("http://example.org/onto#Animal")
	dog := MustIRI("http://example.org/onto#Dog")

	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(animal), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: RDFSSubClassOf, Object: TermFromIRI(animal)},
	}}, NewParserOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(o.Declarations()) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(o.Declarations()))
	}
	if len(o.Axioms()) != 1 {
		t.Fatalf("expected 1 axiom, got %d", len(o.Axioms()))
	}
	if o.Axioms()[0].Kind != AxiomSubClassOf {
		t.Errorf("expected AxiomSubClassOf, got %v", o.Axioms()[0].Kind)
	}
}

func TestParseIsIdempotentByIRIAndKind(t *testing.T) {
	dog := MustIRI("http://example.org/onto#Dog")

	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
	}}, NewParserOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(o.Declarations()) != 1 {
		t.Fatalf("expected the duplicate declaration to collapse to 1, got %d", len(o.Declarations()))
	}
}

func TestParseAnnotationAssertionOnKnownProperty(t *testing.T) {
	dog := MustIRI("http://example.org/onto#Dog")

	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: RDFSLabel, Object: TermFromLiteral(NewStringLiteral("Dog"))},
	}}, NewParserOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var sawAnnotation bool
	for _, a := range o.Axioms() {
		if a.Kind == AxiomAnnotationAssertion {
			sawAnnotation = true
		}
	}
	if !sawAnnotation {
		t.Errorf("expected rdfs:label on a known annotation property to produce an AnnotationAssertion, got axioms: %+v", o.Axioms())
	}
}

func TestParseClassRestriction(t *testing.T) {
	dog := MustIRI("http://example.org/onto#Dog")
	hasOwner := MustIRI("http://example.org/onto#hasOwner")
	person := MustIRI("http://example.org/onto#Person")
	blank := "r1"

	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(person), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: RDFSSubClassOf, Object: TermFromBlank(blank)},
		{Subject: TermFromBlank(blank), Predicate: RDFType, Object: TermFromIRI(OWLRestriction)},
		{Subject: TermFromBlank(blank), Predicate: OWLOnProperty, Object: TermFromIRI(hasOwner)},
		{Subject: TermFromBlank(blank), Predicate: OWLSomeValuesFrom, Object: TermFromIRI(person)},
	}}, NewParserOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(o.Axioms()) != 1 {
		t.Fatalf("expected 1 axiom, got %d: %+v", len(o.Axioms()), o.Axioms())
	}
	a := o.Axioms()[0]
	if a.Kind != AxiomSubClassOf {
		t.Fatalf("expected AxiomSubClassOf, got %v", a.Kind)
	}
	if a.SuperClass == nil || a.SuperClass.Kind != ClassExprObjectSomeValuesFrom {
		t.Errorf("expected the super class to be an ObjectSomeValuesFrom restriction, got %+v", a.SuperClass)
	}
}

func TestParseUnknownPropertyWithoutDeclarationIsDropped(t *testing.T) {
	dog := MustIRI("http://example.org/onto#Dog")
	mystery := MustIRI("http://example.org/onto#mystery")

	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: mystery, Object: TermFromLiteral(NewStringLiteral("x"))},
	}}, NewParserOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(o.Axioms()) != 0 {
		t.Errorf("expected an undeclared, unknown predicate to be silently dropped, got axioms: %+v", o.Axioms())
	}
}

func TestKnownOptionTreatsPropertyAsDeclared(t *testing.T) {
	dog := MustIRI("http://example.org/onto#Dog")
	age := MustIRI("http://example.org/onto#age")

	opts := NewParserOptions(Known(DeclarationDataProperty, age))
	o, err := Parse("unused", fixedProducer{triples: []Triple{
		{Subject: TermFromIRI(dog), Predicate: RDFType, Object: TermFromIRI(OWLClass)},
		{Subject: TermFromIRI(dog), Predicate: age, Object: TermFromLiteral(Literal{Kind: LiteralNumber, Numeric: "5", Datatype: &XSDInteger})},
	}}, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var sawAssertion bool
	for _, a := range o.Axioms() {
		if a.Kind == AxiomDataPropertyAssertion {
			sawAssertion = true
		}
	}
	if !sawAssertion {
		t.Errorf("expected known(DataProperty, age) to produce a DataPropertyAssertion, got axioms: %+v", o.Axioms())
	}
}
