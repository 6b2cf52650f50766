package owl

// Ontology is the finalised result of a Parse call: an IRI, a prefix map,
// and the declarations/axioms recognised from the triple stream, in
// recognition order (spec §3). It is immutable once returned; read-only
// accessors below never mutate it.
type Ontology struct {
	iri      IRI
	hasIRI   bool
	prefixes map[string]string

	declarations []Declaration
	axioms       []Axiom
}

// NewOntology builds an empty ontology with the given prefix map; used by
// the collector at parse start and directly by callers constructing an
// ontology programmatically (e.g. in tests or the serializer round-trip).
func NewOntology(prefixes map[string]string) *Ontology {
	if prefixes == nil {
		prefixes = map[string]string{}
	}
	return &Ontology{prefixes: prefixes}
}

func (o *Ontology) setIRI(i IRI) {
	if !o.hasIRI {
		o.iri = i
		o.hasIRI = true
	}
}

// IRI returns the ontology's IRI and whether one was ever observed (spec
// §3: "set by the first `?x rdf:type owl:Ontology` triple observed").
func (o *Ontology) IRI() (IRI, bool) { return o.iri, o.hasIRI }

func (o *Ontology) Prefixes() map[string]string { return o.prefixes }

func (o *Ontology) Declarations() []Declaration { return o.declarations }

func (o *Ontology) Axioms() []Axiom { return o.axioms }

// Class returns the Class declaration for iri, if any.
func (o *Ontology) Class(iri IRI) (Declaration, bool) {
	return o.declarationByKey(DeclarationKey{Kind: DeclarationClass, IRI: iri.String()})
}

// Individual returns the NamedIndividual declaration for iri, if any.
func (o *Ontology) Individual(iri IRI) (Declaration, bool) {
	return o.declarationByKey(DeclarationKey{Kind: DeclarationNamedIndividual, IRI: iri.String()})
}

// Datatype returns the Datatype declaration for iri, if any.
func (o *Ontology) Datatype(iri IRI) (Declaration, bool) {
	return o.declarationByKey(DeclarationKey{Kind: DeclarationDatatype, IRI: iri.String()})
}

func (o *Ontology) declarationByKey(key DeclarationKey) (Declaration, bool) {
	for _, d := range o.declarations {
		if d.Key() == key {
			return d, true
		}
	}
	return Declaration{}, false
}

// Classes returns every Class declaration, in recognition order.
func (o *Ontology) Classes() []Declaration { return o.declarationsOfKind(DeclarationClass) }

// Individuals returns every NamedIndividual declaration, in recognition
// order.
func (o *Ontology) Individuals() []Declaration {
	return o.declarationsOfKind(DeclarationNamedIndividual)
}

func (o *Ontology) declarationsOfKind(kind DeclarationKind) []Declaration {
	var out []Declaration
	for _, d := range o.declarations {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// AnnotationAssertionsForResourceId returns the AnnotationAssertion axioms
// whose reification list contains id (spec §6.4, exercised by scenario D:
// "annotation on annotation").
func (o *Ontology) AnnotationAssertionsForResourceId(id ResourceId) []Axiom {
	var out []Axiom
	for _, a := range o.axioms {
		if a.Kind != AxiomAnnotationAssertion {
			continue
		}
		for _, r := range a.Reifications {
			if r.Equal(id) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
