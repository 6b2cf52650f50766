package owl

// sequencePatterns assembles rdf:first/rdf:rest chains into the sequence
// table (spec §4.5 "Sequences"). Each triple updates the table directly;
// resolveSequence later walks the chain on demand.
func sequencePatterns() []*Pattern {
	first := &Pattern{
		Name: "seq:first",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("x", VarBlank),
			Predicate: FixedSlot(TermFromIRI(RDFFirst)),
			Object:    VarSlot("v", VarAny),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			v, _ := s.Bound("v")
			c.setSequenceFirst(x.Blank, v)
		},
	}

	restNil := &Pattern{
		Name: "seq:rest-nil",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("x", VarBlank),
			Predicate: FixedSlot(TermFromIRI(RDFRest)),
			Object:    FixedSlot(TermFromIRI(RDFNil)),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			c.setSequenceRestNil(x.Blank)
		},
	}

	restLink := &Pattern{
		Name: "seq:rest-link",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("x", VarBlank),
			Predicate: FixedSlot(TermFromIRI(RDFRest)),
			Object:    VarSlot("y", VarBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			y, _ := s.Bound("y")
			c.setSequenceRestLink(x.Blank, y.Blank)
		},
	}

	return []*Pattern{first, restNil, restLink}
}
