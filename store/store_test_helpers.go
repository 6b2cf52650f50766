package store

import (
	"testing"

	"github.com/field33/owlish-sub000"
)

// fakeProducer is a TripleProducer that ignores its input text and always
// yields the same small fixed triple set: a two-class ontology with one
// subclass-of axiom. It exists so store tests can build a real *owl.Ontology
// via owl.Parse without depending on the turtle package.
type fakeProducer struct{}

func (fakeProducer) Produce(text string) ([]owl.Triple, error) {
	ont := owl.MustIRI("http://example.org/fake#")
	animal := owl.MustIRI("http://example.org/fake#Animal")
	dog := owl.MustIRI("http://example.org/fake#Dog")
	return []owl.Triple{
		{Subject: owl.TermFromIRI(ont), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLOntology)},
		{Subject: owl.TermFromIRI(animal), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFType, Object: owl.TermFromIRI(owl.OWLClass)},
		{Subject: owl.TermFromIRI(dog), Predicate: owl.RDFSSubClassOf, Object: owl.TermFromIRI(animal)},
	}, nil
}

// sampleOntology parses a fixed small ontology via fakeProducer, giving
// store tests something non-trivial to round-trip through JSON.
func sampleOntology(t *testing.T) *owl.Ontology {
	t.Helper()
	o, err := owl.Parse("unused by fakeProducer", fakeProducer{}, owl.NewParserOptions())
	if err != nil {
		t.Fatalf("failed to build sample ontology: %v", err)
	}
	return o
}

// runStoreSuite exercises the OntologyStore contract against a fresh store
// built by newStore. Shared between the SQLite and PostgreSQL backends so
// both are held to the same behavior.
func runStoreSuite(t *testing.T, newStore func() (*OntologyStore, error)) {
	t.Helper()

	t.Run("miss then hit", func(t *testing.T) {
		s, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer s.Close()

		const turtle = "@prefix ex: <http://example.org/fake#> .\nex:Dog a owl:Class ."
		key := HashSource(turtle)

		if _, ok, err := s.Get(key); err != nil {
			t.Fatalf("Get on empty store failed: %v", err)
		} else if ok {
			t.Fatal("expected cache miss on empty store")
		}

		want := sampleOntology(t)
		if err := s.Put(key, want); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, ok, err := s.Get(key)
		if err != nil {
			t.Fatalf("Get after Put failed: %v", err)
		}
		if !ok {
			t.Fatal("expected cache hit after Put")
		}
		assertOntologiesEqual(t, want, got)
	})

	t.Run("put replaces existing entry", func(t *testing.T) {
		s, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer s.Close()

		key := HashSource("same key, two different values")
		first := sampleOntology(t)
		if err := s.Put(key, first); err != nil {
			t.Fatalf("first Put failed: %v", err)
		}

		second := owl.NewOntology(map[string]string{"ex": "http://example.org/other#"})
		if err := s.Put(key, second); err != nil {
			t.Fatalf("second Put failed: %v", err)
		}

		got, ok, err := s.Get(key)
		if err != nil || !ok {
			t.Fatalf("Get after replace failed: ok=%v err=%v", ok, err)
		}
		if len(got.Declarations()) != 0 || len(got.Axioms()) != 0 {
			t.Errorf("expected the replaced (empty) ontology, got %d declarations / %d axioms",
				len(got.Declarations()), len(got.Axioms()))
		}
	})

	t.Run("ParseCached parses once and reuses the cache on the second call", func(t *testing.T) {
		s, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer s.Close()

		calls := 0
		parse := func(turtle string, opts owl.ParserOptions) (*owl.Ontology, error) {
			calls++
			return owl.Parse(turtle, fakeProducer{}, opts)
		}

		const turtle = "whatever, fakeProducer ignores it"
		first, err := s.ParseCached(turtle, owl.NewParserOptions(), parse)
		if err != nil {
			t.Fatalf("first ParseCached failed: %v", err)
		}
		second, err := s.ParseCached(turtle, owl.NewParserOptions(), parse)
		if err != nil {
			t.Fatalf("second ParseCached failed: %v", err)
		}

		if calls != 1 {
			t.Errorf("expected the underlying parser to run once, ran %d times", calls)
		}
		assertOntologiesEqual(t, first, second)
	})
}

func assertOntologiesEqual(t *testing.T, want, got *owl.Ontology) {
	t.Helper()
	wantIRI, wantHasIRI := want.IRI()
	gotIRI, gotHasIRI := got.IRI()
	if wantHasIRI != gotHasIRI || (wantHasIRI && !wantIRI.Equal(gotIRI)) {
		t.Errorf("IRI mismatch: want (%v,%v) got (%v,%v)", wantIRI, wantHasIRI, gotIRI, gotHasIRI)
	}
	if len(want.Declarations()) != len(got.Declarations()) {
		t.Fatalf("declaration count mismatch: want %d got %d", len(want.Declarations()), len(got.Declarations()))
	}
	for i, wd := range want.Declarations() {
		gd := got.Declarations()[i]
		if wd.Kind != gd.Kind || !wd.IRI.Equal(gd.IRI) {
			t.Errorf("declaration %d mismatch: want %+v got %+v", i, wd, gd)
		}
	}
	if len(want.Axioms()) != len(got.Axioms()) {
		t.Fatalf("axiom count mismatch: want %d got %d", len(want.Axioms()), len(got.Axioms()))
	}
	for i, wa := range want.Axioms() {
		ga := got.Axioms()[i]
		if wa.Kind != ga.Kind {
			t.Errorf("axiom %d kind mismatch: want %v got %v", i, wa.Kind, ga.Kind)
		}
	}
}
