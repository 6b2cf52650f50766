package owl

// declarationPatterns recognises `?x rdf:type <category-IRI>` for each of
// the OWL 2 declaration categories plus owl:Ontology (spec §4.5
// "Declarations").
func declarationPatterns() []*Pattern {
	decl := func(name string, category IRI, kind DeclarationKind) *Pattern {
		return &Pattern{
			Name: name,
			Templates: []TripleTemplate{{
				Subject:   VarSlot("x", VarIRI),
				Predicate: FixedSlot(TermFromIRI(RDFType)),
				Object:    FixedSlot(TermFromIRI(category)),
			}},
			Handler: func(c *OntologyCollector, s *MatchState) {
				x, _ := s.Bound("x")
				c.pushDeclaration(NewDeclaration(kind, x.IRI))
			},
		}
	}

	ontology := &Pattern{
		Name: "decl:Ontology",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("x", VarIRI),
			Predicate: FixedSlot(TermFromIRI(RDFType)),
			Object:    FixedSlot(TermFromIRI(OWLOntology)),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			c.setOntologyIRI(x.IRI)
		},
	}

	return []*Pattern{
		decl("decl:Class", OWLClass, DeclarationClass),
		decl("decl:ObjectProperty", OWLObjectProperty, DeclarationObjectProperty),
		decl("decl:DataProperty", OWLDatatypeProperty, DeclarationDataProperty),
		decl("decl:AnnotationProperty", OWLAnnotationProperty, DeclarationAnnotationProperty),
		decl("decl:NamedIndividual", OWLNamedIndividual, DeclarationNamedIndividual),
		decl("decl:Datatype", RDFSDatatype, DeclarationDatatype),
		ontology,
	}
}
