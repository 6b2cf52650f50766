package owl

import "strconv"

// classExprPatterns recognises the RDF mapping for anonymous class
// expressions and datatype restrictions (spec §4.5 "Anonymous class
// expressions"). Every handler defers materialisation if a dependency
// (a member sequence, or a nested blank-node expression) has not yet been
// assembled; OntologyCollector.finalise retries deferred work to a fixed
// point.

func classExprPatterns() []*Pattern {
	var patterns []*Pattern

	patterns = append(patterns, setOpPattern("classexpr:intersectionOf", OWLIntersectionOf,
		func(c *OntologyCollector, x string, members []Term) (*ClassExpression, bool) {
			ops, ok := classExprList(c, members)
			if !ok {
				return nil, false
			}
			return NewIntersectionOf(ops), true
		}))

	patterns = append(patterns, setOpPattern("classexpr:unionOf", OWLUnionOf,
		func(c *OntologyCollector, x string, members []Term) (*ClassExpression, bool) {
			ops, ok := classExprList(c, members)
			if !ok {
				return nil, false
			}
			return NewUnionOf(ops), true
		}))

	patterns = append(patterns, setOpPattern("classexpr:oneOf", OWLOneOf,
		func(c *OntologyCollector, x string, members []Term) (*ClassExpression, bool) {
			inds := make([]IndividualIRI, 0, len(members))
			for _, m := range members {
				if m.Kind != TermIRI {
					return nil, false
				}
				inds = append(inds, NewIndividualIRI(m.IRI))
			}
			return NewOneOf(inds), true
		}))

	patterns = append(patterns, &Pattern{
		Name: "classexpr:complementOf",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLClass))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLComplementOf)), Object: VarSlot("c", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			operand, _ := s.Bound("c")
			c.defer_(func() bool {
				e, ok := c.classExprForTerm(operand)
				if !ok {
					return false
				}
				c.insertBlankClassExpr(x.Blank, NewComplementOf(e))
				return true
			})
		},
	})

	patterns = append(patterns, restrictionValueFromPattern("classexpr:someValuesFrom", OWLSomeValuesFrom, NewObjectSomeValuesFrom, NewDataSomeValuesFrom)...)
	patterns = append(patterns, restrictionValueFromPattern("classexpr:allValuesFrom", OWLAllValuesFrom, NewObjectAllValuesFrom, nil)...)

	patterns = append(patterns, &Pattern{
		Name: "classexpr:hasValue",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLRestriction))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLHasValue)), Object: VarSlot("v", VarAny)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			p, _ := s.Bound("p")
			v, _ := s.Bound("v")
			value := termToLiteralOrIRI(v)
			c.insertBlankClassExpr(x.Blank, NewObjectHasValue(NewObjectPropertyIRI(p.IRI), value))
		},
	})

	patterns = append(patterns, &Pattern{
		Name: "classexpr:hasSelf",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLRestriction))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLHasSelf)), Object: FixedSlot(TermFromLiteral(Literal{Kind: LiteralBool, Bool: true}))},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			p, _ := s.Bound("p")
			c.insertBlankClassExpr(x.Blank, NewObjectHasSelf(NewObjectPropertyIRI(p.IRI)))
		},
	})

	patterns = append(patterns, cardinalityPatterns()...)
	patterns = append(patterns, datatypeRestrictionPattern())
	patterns = append(patterns, facetPatterns()...)

	return patterns
}

// facetPatterns records each `_:f <facet-IRI> <literal>` triple so that
// datatypeRestrictionPattern can look facet nodes up by blank label once
// their owl:withRestrictions list resolves.
func facetPatterns() []*Pattern {
	var out []*Pattern
	for _, facetIRI := range datatypeFacets {
		facetIRI := facetIRI
		out = append(out, &Pattern{
			Name: "classexpr:facet:" + facetIRI.String(),
			Templates: []TripleTemplate{{
				Subject:   VarSlot("f", VarBlank),
				Predicate: FixedSlot(TermFromIRI(facetIRI)),
				Object:    VarSlot("v", VarLiteral),
			}},
			Handler: func(c *OntologyCollector, s *MatchState) {
				f, _ := s.Bound("f")
				v, _ := s.Bound("v")
				c.facetTriples[f.Blank] = DatatypeFacet{Property: facetIRI, Value: v.Literal}
			},
		})
	}
	return out
}

// setOpPattern builds the two-triple `_:x rdf:type owl:Class . _:x <pred>
// _:L` pattern shared by intersectionOf/unionOf/oneOf, deferring expression
// construction until the member sequence resolves.
func setOpPattern(name string, predicate IRI, build func(c *OntologyCollector, x string, members []Term) (*ClassExpression, bool)) *Pattern {
	return &Pattern{
		Name: name,
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLClass))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(predicate)), Object: VarSlot("l", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			l, _ := s.Bound("l")
			c.defer_(func() bool {
				members, ok := c.resolveSequenceTerm(l)
				if !ok {
					return false
				}
				e, ok := build(c, x.Blank, members)
				if !ok {
					return false
				}
				c.insertBlankClassExpr(x.Blank, e)
				return true
			})
		},
	}
}

func classExprList(c *OntologyCollector, members []Term) ([]*ClassExpression, bool) {
	out := make([]*ClassExpression, 0, len(members))
	for _, m := range members {
		e, ok := c.classExprForTerm(m)
		if !ok {
			return nil, false
		}
		out = append(out, e)
	}
	return out, true
}

// restrictionValueFromPattern builds the `_:x rdf:type owl:Restriction .
// _:x owl:onProperty ?p . _:x <predicate> ?c` pattern, dispatching to the
// object-property or data-property constructor depending on ?p's declared
// category (spec §4.5: "depending on ?p's declared category"). If dataCtor
// is nil (allValuesFrom has no data-property analogue in this rule set),
// only the object-property branch is attempted.
func restrictionValueFromPattern(
	name string,
	predicate IRI,
	objCtor func(ObjectPropertyIRI, *ClassExpression) *ClassExpression,
	dataCtor func(DataPropertyIRI, *DatatypeExpression) *ClassExpression,
) []*Pattern {
	return []*Pattern{{
		Name: name,
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLRestriction))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnProperty)), Object: VarSlot("p", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(predicate)), Object: VarSlot("c", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			p, _ := s.Bound("p")
			filler, _ := s.Bound("c")
			c.defer_(func() bool {
				kind, known := c.PropertyKindOf(p.IRI)
				if known && kind == PropertyKindData && dataCtor != nil {
					de, ok := c.datatypeExprForTerm(filler)
					if !ok {
						return false
					}
					c.insertBlankClassExpr(x.Blank, dataCtor(NewDataPropertyIRI(p.IRI), de))
					return true
				}
				ce, ok := c.classExprForTerm(filler)
				if !ok {
					return false
				}
				c.insertBlankClassExpr(x.Blank, objCtor(NewObjectPropertyIRI(p.IRI), ce))
				return true
			})
		},
	}}
}

func cardinalityKinds() []struct {
	name       string
	unquant    IRI
	quant      IRI
	exprKind   ClassExprKind
} {
	return []struct {
		name     string
		unquant  IRI
		quant    IRI
		exprKind ClassExprKind
	}{
		{"min", OWLMinCardinality, OWLMinQualifiedCardinality, ClassExprObjectMinCardinality},
		{"max", OWLMaxCardinality, OWLMaxQualifiedCardinality, ClassExprObjectMaxCardinality},
		{"exact", OWLCardinality, OWLQualifiedCardinality, ClassExprObjectExactCardinality},
	}
}

// cardinalityPatterns builds the six Min/Max/Exact x unqualified/qualified
// ObjectCardinality patterns (spec §4.5, §8 scenario E).
func cardinalityPatterns() []*Pattern {
	var out []*Pattern
	for _, k := range cardinalityKinds() {
		k := k
		out = append(out, &Pattern{
			Name: "classexpr:cardinality:" + k.name,
			Templates: []TripleTemplate{
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLRestriction))},
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnProperty)), Object: VarSlot("p", VarIRI)},
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(k.unquant)), Object: VarSlot("n", VarLiteral)},
			},
			Handler: func(c *OntologyCollector, s *MatchState) {
				x, _ := s.Bound("x")
				p, _ := s.Bound("p")
				n, _ := s.Bound("n")
				card, err := strconv.Atoi(n.Literal.Lexical())
				if err != nil {
					return
				}
				c.insertBlankClassExpr(x.Blank, NewObjectCardinality(k.exprKind, card, NewObjectPropertyIRI(p.IRI), nil))
			},
		})
		out = append(out, &Pattern{
			Name: "classexpr:qualifiedCardinality:" + k.name,
			Templates: []TripleTemplate{
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLRestriction))},
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnProperty)), Object: VarSlot("p", VarIRI)},
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnClass)), Object: VarSlot("oc", VarIRIOrBlank)},
				{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(k.quant)), Object: VarSlot("n", VarLiteral)},
			},
			Handler: func(c *OntologyCollector, s *MatchState) {
				x, _ := s.Bound("x")
				p, _ := s.Bound("p")
				oc, _ := s.Bound("oc")
				n, _ := s.Bound("n")
				card, err := strconv.Atoi(n.Literal.Lexical())
				if err != nil {
					return
				}
				c.defer_(func() bool {
					onClass, ok := c.classExprForTerm(oc)
					if !ok {
						return false
					}
					c.insertBlankClassExpr(x.Blank, NewObjectCardinality(k.exprKind, card, NewObjectPropertyIRI(p.IRI), onClass))
					return true
				})
			},
		})
	}
	return out
}

// datatypeRestrictionPattern recognises `_:x rdf:type rdfs:Datatype .
// _:x owl:onDatatype ?d . _:x owl:withRestrictions _:L`, where _:L is a
// list of single-predicate blank nodes `_:f <facet-IRI> <literal>`.
func datatypeRestrictionPattern() *Pattern {
	return &Pattern{
		Name: "classexpr:datatypeRestriction",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(RDFSDatatype))},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLOnDatatype)), Object: VarSlot("d", VarIRI)},
			{Subject: VarSlot("x", VarBlank), Predicate: FixedSlot(TermFromIRI(OWLWithRestrictions)), Object: VarSlot("l", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			d, _ := s.Bound("d")
			l, _ := s.Bound("l")
			c.defer_(func() bool {
				facetNodes, ok := c.resolveSequenceTerm(l)
				if !ok {
					return false
				}
				facets := make([]DatatypeFacet, 0, len(facetNodes))
				for _, fn := range facetNodes {
					if fn.Kind != TermBlank {
						return false
					}
					facet, ok := c.facetTriples[fn.Blank]
					if !ok {
						return false
					}
					facets = append(facets, facet)
				}
				c.insertBlankDatatypeExpr(x.Blank, NewDatatypeRestriction(NewDatatypeIRI(d.IRI), facets))
				return true
			})
		},
	}
}

func termToLiteralOrIRI(t Term) LiteralOrIRI {
	if t.Kind == TermLiteral {
		return NewLiteralOrIRIFromLiteral(t.Literal)
	}
	return NewLiteralOrIRIFromIRI(t.IRI)
}
