package owl

// assertionPatterns recognises simple property assertions and their
// owl:NegativePropertyAssertion reified form (spec §4.5 "Property
// assertions"). The simple-assertion pattern matches every triple (its
// predicate slot is an unconstrained VarIRI) and lets the handler decide,
// from the predicate's resolved category, whether and how to push an
// axiom; this is the Go rendering of "duck-typed" dispatch.
func assertionPatterns() []*Pattern {
	return []*Pattern{
		simplePropertyAssertionPattern(),
		negativeObjectPropertyAssertionPattern(),
		negativeDataPropertyAssertionPattern(),
	}
}

func simplePropertyAssertionPattern() *Pattern {
	return &Pattern{
		Name: "assertion:simple",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("s", VarIRIOrBlank),
			Predicate: VarSlot("p", VarIRI),
			Object:    VarSlot("o", VarAny),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			subj, _ := s.Bound("s")
			p, _ := s.Bound("p")
			obj, _ := s.Bound("o")
			c.defer_(func() bool {
				kind, known := c.PropertyKindOf(p.IRI)
				if !known {
					return false
				}
				key := keyOf(subj, p.IRI, obj)
				switch kind {
				case PropertyKindObject:
					if !obj.IsIRIOrBlank() {
						return true
					}
					c.pushAxiom(Axiom{
						Kind:            AxiomObjectPropertyAssertion,
						ObjectProperty:  NewObjectPropertyIRI(p.IRI),
						AssertionSource: subj.ResourceId(),
						AssertionTarget: obj.ResourceId(),
					}, &key)
				case PropertyKindData:
					if obj.Kind != TermLiteral {
						return true
					}
					c.pushAxiom(Axiom{
						Kind:            AxiomDataPropertyAssertion,
						DataProperty:    NewDataPropertyIRI(p.IRI),
						AssertionSource: subj.ResourceId(),
						AssertionValue:  obj.Literal,
					}, &key)
				case PropertyKindAnnotation:
					// A reifier's own annotation triples (?r ?q ?v where ?r
					// names an owl:Axiom) attach to the reified axiom rather
					// than becoming a standalone assertion about ?r. Whether
					// ?r is a reifier can only be answered once the whole
					// stream has been seen, since its annotatedSource/
					// annotatedProperty/annotatedTarget triples are not
					// guaranteed to precede this one.
					if !c.feedComplete {
						return false
					}
					rid := subj.ResourceId()
					if _, isReifier := c.reificationsByResourceId[rid.String()]; isReifier {
						c.annotateReifier(rid, NewAnnotation(NewAnnotationPropertyIRI(p.IRI), termToLiteralOrIRI(obj), nil))
						return true
					}
					c.pushAxiom(Axiom{
						Kind:               AxiomAnnotationAssertion,
						AnnotationProperty: NewAnnotationPropertyIRI(p.IRI),
						AnnotationSubject:  subj.ResourceId(),
						AnnotationValue:    termToLiteralOrIRI(obj),
					}, &key)
				default:
					return true
				}
				return true
			})
		},
	}
}

func negativeObjectPropertyAssertionPattern() *Pattern {
	return &Pattern{
		Name: "assertion:NegativeObjectPropertyAssertion",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLNegativePropertyAssertion))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLSourceIndividual)), Object: VarSlot("s", VarIRIOrBlank)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLAssertionProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLTargetIndividual)), Object: VarSlot("o", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			subj, _ := s.Bound("s")
			p, _ := s.Bound("p")
			obj, _ := s.Bound("o")
			key := keyOf(subj, p.IRI, obj)
			c.pushAxiom(Axiom{
				Kind:            AxiomNegativeObjectPropertyAssertion,
				ObjectProperty:  NewObjectPropertyIRI(p.IRI),
				AssertionSource: subj.ResourceId(),
				AssertionTarget: obj.ResourceId(),
			}, &key)
		},
	}
}

func negativeDataPropertyAssertionPattern() *Pattern {
	return &Pattern{
		Name: "assertion:NegativeDataPropertyAssertion",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLNegativePropertyAssertion))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLSourceIndividual)), Object: VarSlot("s", VarIRIOrBlank)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLAssertionProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLTargetValue)), Object: VarSlot("v", VarLiteral)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			subj, _ := s.Bound("s")
			p, _ := s.Bound("p")
			v, _ := s.Bound("v")
			key := keyOf(subj, p.IRI, v)
			c.pushAxiom(Axiom{
				Kind:            AxiomNegativeDataPropertyAssertion,
				DataProperty:    NewDataPropertyIRI(p.IRI),
				AssertionSource: subj.ResourceId(),
				AssertionValue:  v.Literal,
			}, &key)
		},
	}
}
