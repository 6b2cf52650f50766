package owl

// reificationPatterns recognises the owl:Axiom reification idiom (spec §4.5
// "Reifications"): a resource ?r standing for a triple (s, p, o) via
//
//	?r rdf:type owl:Axiom .
//	?r owl:annotatedSource ?s .
//	?r owl:annotatedProperty ?p .
//	?r owl:annotatedTarget ?o .
//
// Annotation triples written directly on ?r are recognised by the generic
// simple-assertion pattern (rules_assertions.go), which redirects them onto
// the reified axiom once the stream has been fully seen.
func reificationPatterns() []*Pattern {
	return []*Pattern{reificationPattern()}
}

func reificationPattern() *Pattern {
	return &Pattern{
		Name: "reification:owl:Axiom",
		Templates: []TripleTemplate{
			{Subject: VarSlot("r", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLAxiom))},
			{Subject: VarSlot("r", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(OWLAnnotatedSource)), Object: VarSlot("s", VarIRIOrBlank)},
			{Subject: VarSlot("r", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(OWLAnnotatedProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("r", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(OWLAnnotatedTarget)), Object: VarSlot("o", VarAny)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			r, _ := s.Bound("r")
			subj, _ := s.Bound("s")
			p, _ := s.Bound("p")
			obj, _ := s.Bound("o")
			c.insertReification(r.ResourceId(), subj, p.IRI, obj)
		},
	}
}
