package owl

// axiomPatterns recognises axioms whose subject is an IRI (or, for
// SubClassOf, possibly a blank-node class expression) directly on the RDF
// triple, without an intervening reification or sequence (spec §4.5
// "Axioms via IRI subjects").
func axiomPatterns() []*Pattern {
	var out []*Pattern
	out = append(out, subClassOfPattern())
	out = append(out, classAssertionPattern())
	out = append(out, domainRangePatterns()...)
	out = append(out, subPropertyOfPattern())
	out = append(out, propertyChainAxiomPattern())
	out = append(out, propertyCharacteristicPatterns()...)
	out = append(out, equivalentDisjointPatterns()...)
	out = append(out, inverseObjectPropertiesPattern())
	out = append(out, sameAsDifferentFromPatterns()...)
	out = append(out, hasKeyPattern())
	out = append(out, datatypeDefinitionPattern())
	return out
}

func subClassOfPattern() *Pattern {
	return &Pattern{
		Name: "axiom:SubClassOf",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("s", VarIRIOrBlank),
			Predicate: FixedSlot(TermFromIRI(RDFSSubClassOf)),
			Object:    VarSlot("o", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			sub, _ := s.Bound("s")
			sup, _ := s.Bound("o")
			c.defer_(func() bool {
				subExpr, ok1 := c.classExprForTerm(sub)
				supExpr, ok2 := c.classExprForTerm(sup)
				if !ok1 || !ok2 {
					return false
				}
				key := keyOf(sub, RDFSSubClassOf, sup)
				c.pushAxiom(Axiom{Kind: AxiomSubClassOf, SubClass: subExpr, SuperClass: supExpr}, &key)
				return true
			})
		},
	}
}

// classAssertionPattern recognises `?s rdf:type ?C` where ?C resolves to a
// class (named, via a Declaration, or anonymous, via the blank-node
// table). Declarations also match `?x rdf:type owl:Class` etc.; the
// collector gates this handler on whether ?C is actually a recognised
// class so the two rules never fight over the same triple (spec §4.5
// "Rule ordering and completeness").
func classAssertionPattern() *Pattern {
	return &Pattern{
		Name: "axiom:ClassAssertion",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("s", VarIRIOrBlank),
			Predicate: FixedSlot(TermFromIRI(RDFType)),
			Object:    VarSlot("c", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			subj, _ := s.Bound("s")
			cls, _ := s.Bound("c")
			c.defer_(func() bool {
				if cls.Kind == TermIRI {
					if _, ok := c.ontology.Class(cls.IRI); !ok {
						// Its Class declaration may simply not have arrived
						// yet (the stream is not sorted); keep deferring.
						// If it never arrives, finalise's fixed-point retry
						// gives up once this stops making progress.
						return false
					}
				}
				classExpr, ok := c.classExprForTerm(cls)
				if !ok {
					return false
				}
				key := keyOf(subj, RDFType, cls)
				c.pushAxiom(Axiom{Kind: AxiomClassAssertion, Class: classExpr, Individual: subj.ResourceId()}, &key)
				return true
			})
		},
	}
}

func domainRangePatterns() []*Pattern {
	domain := &Pattern{
		Name: "axiom:domain",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(RDFSDomain)),
			Object:    VarSlot("c", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			cl, _ := s.Bound("c")
			c.defer_(func() bool {
				classExpr, ok := c.classExprForTerm(cl)
				if !ok {
					return false
				}
				key := keyOf(p, RDFSDomain, cl)
				kind, known := c.PropertyKindOf(p.IRI)
				switch {
				case known && kind == PropertyKindData:
					c.pushAxiom(Axiom{Kind: AxiomDataPropertyDomain, DataProperty: NewDataPropertyIRI(p.IRI), ClassDomain: classExpr}, &key)
				case known && kind == PropertyKindAnnotation:
					if cl.Kind != TermIRI {
						return true
					}
					c.pushAxiom(Axiom{Kind: AxiomAnnotationPropertyDomain, AnnotationProperty: NewAnnotationPropertyIRI(p.IRI), AnnotationDomainRange: cl.IRI}, &key)
				default:
					c.pushAxiom(Axiom{Kind: AxiomObjectPropertyDomain, ObjectProperty: NewObjectPropertyIRI(p.IRI), ClassDomain: classExpr}, &key)
				}
				return true
			})
		},
	}

	rang := &Pattern{
		Name: "axiom:range",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(RDFSRange)),
			Object:    VarSlot("c", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			cl, _ := s.Bound("c")
			c.defer_(func() bool {
				key := keyOf(p, RDFSRange, cl)
				kind, known := c.PropertyKindOf(p.IRI)
				switch {
				case known && kind == PropertyKindData:
					de, ok := c.datatypeExprForTerm(cl)
					if !ok {
						return false
					}
					c.pushAxiom(Axiom{Kind: AxiomDataPropertyRange, DataProperty: NewDataPropertyIRI(p.IRI), DataRange: de}, &key)
				case known && kind == PropertyKindAnnotation:
					if cl.Kind != TermIRI {
						return true
					}
					c.pushAxiom(Axiom{Kind: AxiomAnnotationPropertyRange, AnnotationProperty: NewAnnotationPropertyIRI(p.IRI), AnnotationDomainRange: cl.IRI}, &key)
				default:
					classExpr, ok := c.classExprForTerm(cl)
					if !ok {
						return false
					}
					c.pushAxiom(Axiom{Kind: AxiomObjectPropertyRange, ObjectProperty: NewObjectPropertyIRI(p.IRI), ClassRange: classExpr}, &key)
				}
				return true
			})
		},
	}

	return []*Pattern{domain, rang}
}

func propertyCharacteristicPatterns() []*Pattern {
	characteristic := func(name string, typeIRI IRI, kind AxiomKind) *Pattern {
		return &Pattern{
			Name: name,
			Templates: []TripleTemplate{{
				Subject:   VarSlot("p", VarIRI),
				Predicate: FixedSlot(TermFromIRI(RDFType)),
				Object:    FixedSlot(TermFromIRI(typeIRI)),
			}},
			Handler: func(c *OntologyCollector, s *MatchState) {
				p, _ := s.Bound("p")
				key := keyOf(p, RDFType, TermFromIRI(typeIRI))
				c.pushAxiom(Axiom{Kind: kind, ObjectProperty: NewObjectPropertyIRI(p.IRI)}, &key)
			},
		}
	}
	return []*Pattern{
		characteristic("axiom:Symmetric", OWLSymmetricProperty, AxiomSymmetricObjectProperty),
		characteristic("axiom:Asymmetric", OWLAsymmetricProperty, AxiomAsymmetricObjectProperty),
		characteristic("axiom:Reflexive", OWLReflexiveProperty, AxiomReflexiveObjectProperty),
		characteristic("axiom:Irreflexive", OWLIrreflexiveProperty, AxiomIrreflexiveObjectProperty),
		functionalPropertyPattern(),
		characteristic("axiom:InverseFunctional", OWLInverseFunctionalProperty, AxiomInverseFunctionalObjectProperty),
		characteristic("axiom:Transitive", OWLTransitiveProperty, AxiomTransitiveObjectProperty),
	}
}

// functionalPropertyPattern recognises owl:FunctionalProperty, which the RDF
// mapping uses for both object and data properties; the axiom kind is
// duck-typed from ?p's declared category (spec §4.5's dispatch-by-category
// pattern, applied here as it is for domain/range).
func functionalPropertyPattern() *Pattern {
	return &Pattern{
		Name: "axiom:Functional",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(RDFType)),
			Object:    FixedSlot(TermFromIRI(OWLFunctionalProperty)),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			key := keyOf(p, RDFType, TermFromIRI(OWLFunctionalProperty))
			c.defer_(func() bool {
				kind, known := c.PropertyKindOf(p.IRI)
				if !known {
					return false
				}
				if kind == PropertyKindData {
					c.pushAxiom(Axiom{Kind: AxiomFunctionalDataProperty, DataProperty: NewDataPropertyIRI(p.IRI)}, &key)
				} else {
					c.pushAxiom(Axiom{Kind: AxiomFunctionalObjectProperty, ObjectProperty: NewObjectPropertyIRI(p.IRI)}, &key)
				}
				return true
			})
		},
	}
}

// subPropertyOfPattern recognises plain `?p rdfs:subPropertyOf ?q`,
// dispatching to Sub{Object,Data,Annotation}PropertyOf by ?p's declared
// category (spec §4.5 "chosen by the property's declaration").
func subPropertyOfPattern() *Pattern {
	return &Pattern{
		Name: "axiom:SubPropertyOf",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(RDFSSubPropertyOf)),
			Object:    VarSlot("q", VarIRI),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			q, _ := s.Bound("q")
			key := keyOf(p, RDFSSubPropertyOf, q)
			c.defer_(func() bool {
				kind, known := c.PropertyKindOf(p.IRI)
				if !known {
					return false
				}
				switch kind {
				case PropertyKindData:
					c.pushAxiom(Axiom{
						Kind:              AxiomSubDataPropertyOf,
						SubDataProperty:   NewDataPropertyIRI(p.IRI),
						SuperDataProperty: NewDataPropertyIRI(q.IRI),
					}, &key)
				case PropertyKindAnnotation:
					c.pushAxiom(Axiom{
						Kind:                  AxiomSubAnnotationPropertyOf,
						SubAnnotationProperty: NewAnnotationPropertyIRI(p.IRI),
						AnnotationProperty:    NewAnnotationPropertyIRI(q.IRI),
					}, &key)
				default:
					sub := NewObjectPropertyExpr(NewObjectPropertyIRI(p.IRI))
					c.pushAxiom(Axiom{
						Kind:                AxiomSubObjectPropertyOf,
						SubObjectProperty:   sub,
						SuperObjectProperty: NewObjectPropertyExpr(NewObjectPropertyIRI(q.IRI)),
						Chain:               []ObjectPropertyExpr{sub},
					}, &key)
				}
				return true
			})
		},
	}
}

// propertyChainAxiomPattern recognises `?p owl:propertyChainAxiom _:L`, the
// RDF mapping for a property-chain sub-property axiom (object properties
// only; spec §3 Axiom lists SubObjectPropertyOf's Chain as "more [elements]
// for a property chain").
func propertyChainAxiomPattern() *Pattern {
	return &Pattern{
		Name: "axiom:PropertyChainAxiom",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(OWLPropertyChainAxiom)),
			Object:    VarSlot("l", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			l, _ := s.Bound("l")
			key := keyOf(p, OWLPropertyChainAxiom, l)
			c.defer_(func() bool {
				members, ok := c.resolveSequenceTerm(l)
				if !ok {
					return false
				}
				chain := make([]ObjectPropertyExpr, 0, len(members))
				for _, m := range members {
					if m.Kind != TermIRI {
						return false
					}
					chain = append(chain, NewObjectPropertyExpr(NewObjectPropertyIRI(m.IRI)))
				}
				c.pushAxiom(Axiom{
					Kind:                AxiomSubObjectPropertyOf,
					SuperObjectProperty: NewObjectPropertyExpr(NewObjectPropertyIRI(p.IRI)),
					Chain:               chain,
				}, &key)
				return true
			})
		},
	}
}

// equivalentClassesPattern recognises owl:equivalentClass between two class
// expressions. owl:equivalentClass on a declared Datatype names a
// DatatypeDefinition instead (handled by datatypeDefinitionPattern), so this
// waits for the full stream before deciding either side isn't a Datatype.
func equivalentClassesPattern() *Pattern {
	return &Pattern{
		Name: "axiom:EquivalentClasses",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("a", VarIRIOrBlank),
			Predicate: FixedSlot(TermFromIRI(OWLEquivalentClass)),
			Object:    VarSlot("b", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			a, _ := s.Bound("a")
			b, _ := s.Bound("b")
			c.defer_(func() bool {
				if !c.feedComplete {
					return false
				}
				if isDeclaredDatatype(c, a) || isDeclaredDatatype(c, b) {
					return true
				}
				subExpr, ok1 := c.classExprForTerm(a)
				objExpr, ok2 := c.classExprForTerm(b)
				if !ok1 || !ok2 {
					return true
				}
				key := keyOf(a, OWLEquivalentClass, b)
				c.pushAxiom(Axiom{Kind: AxiomEquivalentClasses, Classes: []*ClassExpression{subExpr, objExpr}}, &key)
				return true
			})
		},
	}
}

func isDeclaredDatatype(c *OntologyCollector, t Term) bool {
	if t.Kind != TermIRI {
		return false
	}
	_, ok := c.ontology.Datatype(t.IRI)
	return ok
}

// classPairPattern builds a two-class-expression axiom pattern (spec §4.5);
// used for DisjointClasses, which has no datatype analogue to disambiguate
// against.
func classPairPattern(name string, predicate IRI, kind AxiomKind) *Pattern {
	return &Pattern{
		Name: name,
		Templates: []TripleTemplate{{
			Subject:   VarSlot("a", VarIRIOrBlank),
			Predicate: FixedSlot(TermFromIRI(predicate)),
			Object:    VarSlot("b", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			a, _ := s.Bound("a")
			b, _ := s.Bound("b")
			c.defer_(func() bool {
				subExpr, ok1 := c.classExprForTerm(a)
				objExpr, ok2 := c.classExprForTerm(b)
				if !ok1 || !ok2 {
					return false
				}
				key := keyOf(a, predicate, b)
				c.pushAxiom(Axiom{Kind: kind, Classes: []*ClassExpression{subExpr, objExpr}}, &key)
				return true
			})
		},
	}
}

// propertyPairPattern builds the two-property axioms (EquivalentObject/
// DataProperties, DisjointObjectProperties), dispatching on the subject
// property's declared category so owl:equivalentProperty between two
// data properties yields EquivalentDataProperties rather than the object
// variant (spec §4.5: property axiom kind is duck-typed via declaration).
func propertyPairPattern(name string, predicate IRI, objKind, dataKind AxiomKind) *Pattern {
	return &Pattern{
		Name: name,
		Templates: []TripleTemplate{{
			Subject:   VarSlot("a", VarIRI),
			Predicate: FixedSlot(TermFromIRI(predicate)),
			Object:    VarSlot("b", VarIRI),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			a, _ := s.Bound("a")
			b, _ := s.Bound("b")
			key := keyOf(a, predicate, b)
			kind, known := c.PropertyKindOf(a.IRI)
			if known && kind == PropertyKindData && dataKind != AxiomKind(-1) {
				c.pushAxiom(Axiom{Kind: dataKind, DataProperties: []DataPropertyIRI{NewDataPropertyIRI(a.IRI), NewDataPropertyIRI(b.IRI)}}, &key)
				return
			}
			c.pushAxiom(Axiom{Kind: objKind, ObjectProperties: []ObjectPropertyIRI{NewObjectPropertyIRI(a.IRI), NewObjectPropertyIRI(b.IRI)}}, &key)
		},
	}
}

func equivalentDisjointPatterns() []*Pattern {
	return []*Pattern{
		equivalentClassesPattern(),
		classPairPattern("axiom:DisjointWith", OWLDisjointWith, AxiomDisjointClasses),
		propertyPairPattern("axiom:EquivalentProperties", OWLEquivalentProperty, AxiomEquivalentObjectProperties, AxiomEquivalentDataProperties),
		propertyPairPattern("axiom:PropertyDisjointWith", OWLPropertyDisjointWith, AxiomDisjointObjectProperties, AxiomKind(-1)),
	}
}

func inverseObjectPropertiesPattern() *Pattern {
	return &Pattern{
		Name: "axiom:InverseObjectProperties",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("p", VarIRI),
			Predicate: FixedSlot(TermFromIRI(OWLInverseOf)),
			Object:    VarSlot("q", VarIRI),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			p, _ := s.Bound("p")
			q, _ := s.Bound("q")
			key := keyOf(p, OWLInverseOf, q)
			c.pushAxiom(Axiom{
				Kind:          AxiomInverseObjectProperties,
				InverseFirst:  NewObjectPropertyExpr(NewObjectPropertyIRI(p.IRI)),
				InverseSecond: NewObjectPropertyExpr(NewObjectPropertyIRI(q.IRI)),
			}, &key)
		},
	}
}

func sameAsDifferentFromPatterns() []*Pattern {
	sameAs := &Pattern{
		Name: "axiom:SameAs",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("a", VarIRI),
			Predicate: FixedSlot(TermFromIRI(OWLSameAs)),
			Object:    VarSlot("b", VarIRI),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			a, _ := s.Bound("a")
			b, _ := s.Bound("b")
			key := keyOf(a, OWLSameAs, b)
			c.pushAxiom(Axiom{Kind: AxiomSameIndividual, Individuals: []ResourceId{a.ResourceId(), b.ResourceId()}}, &key)
		},
	}
	differentFrom := &Pattern{
		Name: "axiom:DifferentFrom",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("a", VarIRI),
			Predicate: FixedSlot(TermFromIRI(OWLDifferentFrom)),
			Object:    VarSlot("b", VarIRI),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			a, _ := s.Bound("a")
			b, _ := s.Bound("b")
			key := keyOf(a, OWLDifferentFrom, b)
			c.pushAxiom(Axiom{Kind: AxiomDifferentIndividuals, Individuals: []ResourceId{a.ResourceId(), b.ResourceId()}}, &key)
		},
	}
	return []*Pattern{sameAs, differentFrom, allDifferentPattern()}
}

// allDifferentPattern recognises the n-ary `owl:AllDifferent` /
// `owl:distinctMembers` mapping, the group form of DifferentIndividuals
// alongside the pairwise owl:differentFrom above.
func allDifferentPattern() *Pattern {
	return &Pattern{
		Name: "axiom:AllDifferent",
		Templates: []TripleTemplate{
			{Subject: VarSlot("x", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(RDFType)), Object: FixedSlot(TermFromIRI(OWLAllDifferent))},
			{Subject: VarSlot("x", VarIRIOrBlank), Predicate: FixedSlot(TermFromIRI(OWLDistinctMembers)), Object: VarSlot("l", VarIRIOrBlank)},
		},
		Handler: func(c *OntologyCollector, s *MatchState) {
			x, _ := s.Bound("x")
			l, _ := s.Bound("l")
			c.defer_(func() bool {
				members, ok := c.resolveSequenceTerm(l)
				if !ok {
					return false
				}
				ids := make([]ResourceId, 0, len(members))
				for _, m := range members {
					if !m.IsIRIOrBlank() {
						return false
					}
					ids = append(ids, m.ResourceId())
				}
				key := keyOf(x, OWLDistinctMembers, l)
				c.pushAxiom(Axiom{Kind: AxiomDifferentIndividuals, Individuals: ids}, &key)
				return true
			})
		},
	}
}

func hasKeyPattern() *Pattern {
	return &Pattern{
		Name: "axiom:HasKey",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("c", VarIRIOrBlank),
			Predicate: FixedSlot(TermFromIRI(OWLHasKey)),
			Object:    VarSlot("l", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			cls, _ := s.Bound("c")
			l, _ := s.Bound("l")
			c.defer_(func() bool {
				classExpr, ok := c.classExprForTerm(cls)
				if !ok {
					return false
				}
				members, ok := c.resolveSequenceTerm(l)
				if !ok {
					return false
				}
				var objProps []ObjectPropertyIRI
				var dataProps []DataPropertyIRI
				for _, m := range members {
					if m.Kind != TermIRI {
						return false
					}
					kind, _ := c.PropertyKindOf(m.IRI)
					if kind == PropertyKindData {
						dataProps = append(dataProps, NewDataPropertyIRI(m.IRI))
					} else {
						objProps = append(objProps, NewObjectPropertyIRI(m.IRI))
					}
				}
				key := keyOf(cls, OWLHasKey, l)
				c.pushAxiom(Axiom{Kind: AxiomHasKey, Class: classExpr, ObjectProperties: objProps, DataProperties: dataProps}, &key)
				return true
			})
		},
	}
}

func datatypeDefinitionPattern() *Pattern {
	return &Pattern{
		Name: "axiom:DatatypeDefinition",
		Templates: []TripleTemplate{{
			Subject:   VarSlot("d", VarIRI),
			Predicate: FixedSlot(TermFromIRI(OWLEquivalentClass)),
			Object:    VarSlot("e", VarIRIOrBlank),
		}},
		Handler: func(c *OntologyCollector, s *MatchState) {
			d, _ := s.Bound("d")
			e, _ := s.Bound("e")
			c.defer_(func() bool {
				if _, ok := c.ontology.Datatype(d.IRI); !ok {
					return false
				}
				de, ok := c.datatypeExprForTerm(e)
				if !ok {
					return false
				}
				key := keyOf(d, OWLEquivalentClass, e)
				c.pushAxiom(Axiom{Kind: AxiomDatatypeDefinition, Datatype: NewDatatypeIRI(d.IRI), DatatypeExpression: de}, &key)
				return true
			})
		},
	}
}
