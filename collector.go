package owl

// objKey is the axiom-index key from spec §4.4 / §9: a
// (subject-lexical, predicate-IRI, object-lexical) triple. Per §9's open
// question the kind of each position is folded into its lexical form (via
// Term.Lexical) so a blank node never collides with a literal or IRI that
// happens to share the same text.
type objKey struct {
	S string
	P string
	O string
}

func keyOf(s Term, p IRI, o Term) objKey {
	return objKey{S: s.Lexical(), P: p.String(), O: o.Lexical()}
}

// OntologyCollector accumulates parse state and finalises it into an
// Ontology (spec §3 "Collector-private state", §4.4). It is local to one
// Parse call and not safe for concurrent use.
type OntologyCollector struct {
	ontology *Ontology
	options  ParserOptions

	declSeen     map[DeclarationKey]struct{}
	declaredKind map[string]DeclarationKind // IRI string -> kind, for property-category resolution

	seqFirst    map[string]Term   // blank -> rdf:first value
	seqRestNil  map[string]bool   // blank -> rdf:rest rdf:nil observed
	seqRestNext map[string]string // blank -> rdf:rest target blank

	blankClassExpr    map[string]*ClassExpression
	blankDatatypeExpr map[string]*DatatypeExpression
	facetTriples      map[string]DatatypeFacet // facet blank node -> (facet-IRI, literal)

	axiomIndexByKey map[objKey]int

	reificationsByResourceId map[string]objKey      // resourceId.String() -> (s,p,o) key
	reifierToAxiom           map[string]int          // resourceId.String() -> axiom index
	pendingReifications      map[objKey][]ResourceId // key -> reifiers seen before the axiom
	deferredAnnotations      map[objKey][]Annotation  // key -> annotations seen before the axiom
	pendingReifierAnnotations map[string][]Annotation // resourceId.String() -> annotations seen before the reification triples

	// pending holds thunks that could not complete the moment their
	// pattern finished (typically: a sequence they depend on hadn't
	// reached rdf:nil yet, because the stream is not sorted). finalise
	// retries them to a fixed point; spec §4.5 "Rule ordering and
	// completeness" describes this as re-examining deferred triples once
	// the full stream has been seen.
	pending []func() bool

	// feedComplete is set once every triple has been fed to the matcher.
	// Annotation-assertion resolution (see rules_assertions.go) waits for
	// it before deciding whether its subject is a reification resource,
	// since owl:Axiom/owl:annotatedSource/etc. triples for that resource
	// may still be later in a stream whose order is not guaranteed.
	feedComplete bool
}

func newOntologyCollector(prefixes map[string]string, options ParserOptions) *OntologyCollector {
	return &OntologyCollector{
		ontology:                  NewOntology(prefixes),
		options:                   options,
		declSeen:                  map[DeclarationKey]struct{}{},
		declaredKind:              map[string]DeclarationKind{},
		seqFirst:                  map[string]Term{},
		seqRestNil:                map[string]bool{},
		seqRestNext:               map[string]string{},
		blankClassExpr:            map[string]*ClassExpression{},
		blankDatatypeExpr:         map[string]*DatatypeExpression{},
		facetTriples:              map[string]DatatypeFacet{},
		axiomIndexByKey:           map[objKey]int{},
		reificationsByResourceId:  map[string]objKey{},
		reifierToAxiom:            map[string]int{},
		pendingReifications:       map[objKey][]ResourceId{},
		deferredAnnotations:       map[objKey][]Annotation{},
		pendingReifierAnnotations: map[string][]Annotation{},
	}
}

// pushDeclaration appends d unless an equal (kind, IRI) declaration was
// already recorded (spec §4.4: "idempotent by IRI-plus-kind").
func (c *OntologyCollector) pushDeclaration(d Declaration) {
	key := d.Key()
	if _, ok := c.declSeen[key]; ok {
		return
	}
	c.declSeen[key] = struct{}{}
	c.ontology.declarations = append(c.ontology.declarations, d)
	if _, ok := c.declaredKind[d.IRI.String()]; !ok {
		c.declaredKind[d.IRI.String()] = d.Kind
	}
}

func (c *OntologyCollector) setOntologyIRI(i IRI) { c.ontology.setIRI(i) }

// pushAxiom appends a, resolving any reifications and deferred annotations
// already recorded under key (spec §4.4 push_axiom). key is nil when the
// axiom has no natural (subject, predicate, object) RDF triple to index
// under (e.g. an n-ary DisjointClasses axiom).
func (c *OntologyCollector) pushAxiom(a Axiom, key *objKey) int {
	if key != nil {
		if reifiers, ok := c.pendingReifications[*key]; ok {
			a.Reifications = append(a.Reifications, reifiers...)
			delete(c.pendingReifications, *key)
		}
		if anns, ok := c.deferredAnnotations[*key]; ok {
			a.Annotations = append(a.Annotations, anns...)
			delete(c.deferredAnnotations, *key)
		}
	}
	idx := len(c.ontology.axioms)
	c.ontology.axioms = append(c.ontology.axioms, a)
	if key != nil {
		if _, exists := c.axiomIndexByKey[*key]; !exists {
			c.axiomIndexByKey[*key] = idx
		}
		for _, r := range a.Reifications {
			c.reifierToAxiom[r.String()] = idx
		}
	}
	return idx
}

// insertReification records that r names the (s, p, o) triple via
// owl:Axiom/owl:annotatedSource/owl:annotatedProperty/owl:annotatedTarget
// (spec §4.4 insert_reification). If an axiom for (s,p,o) is already
// indexed, r is attached to it immediately; otherwise r is queued until
// that axiom is pushed. Any annotations already seen on r (arrived before
// its reification triples, since the stream order is not guaranteed) are
// flushed the same way.
func (c *OntologyCollector) insertReification(r ResourceId, s Term, p IRI, o Term) {
	key := keyOf(s, p, o)
	c.reificationsByResourceId[r.String()] = key

	if idx, ok := c.axiomIndexByKey[key]; ok {
		c.ontology.axioms[idx].Reifications = append(c.ontology.axioms[idx].Reifications, r)
		c.reifierToAxiom[r.String()] = idx
	} else {
		c.pendingReifications[key] = append(c.pendingReifications[key], r)
	}

	if pending, ok := c.pendingReifierAnnotations[r.String()]; ok {
		delete(c.pendingReifierAnnotations, r.String())
		if idx, ok2 := c.axiomIndexByKey[key]; ok2 {
			c.ontology.axioms[idx].Annotations = append(c.ontology.axioms[idx].Annotations, pending...)
		} else {
			c.deferredAnnotations[key] = append(c.deferredAnnotations[key], pending...)
		}
	}
}

// annotateReifier attaches ann to the axiom named by reifier r, deferring
// it if r's target axiom (or even r's own reification triples) has not yet
// been observed (spec §4.4 defer_annotation, §4.5 "Reifications").
func (c *OntologyCollector) annotateReifier(r ResourceId, ann Annotation) {
	if idx, ok := c.reifierToAxiom[r.String()]; ok {
		c.ontology.axioms[idx].Annotations = append(c.ontology.axioms[idx].Annotations, ann)
		return
	}
	if key, ok := c.reificationsByResourceId[r.String()]; ok {
		c.deferredAnnotations[key] = append(c.deferredAnnotations[key], ann)
		return
	}
	c.pendingReifierAnnotations[r.String()] = append(c.pendingReifierAnnotations[r.String()], ann)
}

// setSequenceFirst / setSequenceRestNil / setSequenceRestLink assemble
// rdf:first/rdf:rest chains (spec §4.4 set_sequence_root /
// set_sequence_link, §4.5 "Sequences").
func (c *OntologyCollector) setSequenceFirst(blank string, v Term) { c.seqFirst[blank] = v }
func (c *OntologyCollector) setSequenceRestNil(blank string)       { c.seqRestNil[blank] = true }
func (c *OntologyCollector) setSequenceRestLink(blank, next string) {
	c.seqRestNext[blank] = next
}

// resolveSequence walks the rdf:first/rdf:rest chain rooted at head. It
// reports ok=false if the chain is missing a link or never reaches
// rdf:nil (spec §8: "an unterminated list yields no expression").
func (c *OntologyCollector) resolveSequence(head string) ([]Term, bool) {
	var out []Term
	cur := head
	for {
		v, ok := c.seqFirst[cur]
		if !ok {
			return nil, false
		}
		out = append(out, v)
		if c.seqRestNil[cur] {
			return out, true
		}
		next, ok := c.seqRestNext[cur]
		if !ok {
			return nil, false
		}
		cur = next
	}
}

// resolveSequenceTerm is resolveSequence generalised to a Term rather than
// a bare blank label, since an empty rdf:List is written as the constant
// rdf:nil rather than a blank node.
func (c *OntologyCollector) resolveSequenceTerm(head Term) ([]Term, bool) {
	if head.Kind == TermIRI && head.IRI.Equal(RDFNil) {
		return nil, true
	}
	if head.Kind != TermBlank {
		return nil, false
	}
	return c.resolveSequence(head.Blank)
}

func (c *OntologyCollector) insertBlankClassExpr(blank string, e *ClassExpression) {
	c.blankClassExpr[blank] = e
}

func (c *OntologyCollector) insertBlankDatatypeExpr(blank string, e *DatatypeExpression) {
	c.blankDatatypeExpr[blank] = e
}

// classExprForTerm resolves an IRI-or-blank term to a class expression: a
// bare class IRI wraps it directly, a blank node looks up whatever
// anonymous expression was assembled for it (spec §4.5: "either side may
// be an anonymous class from the blank-node table").
func (c *OntologyCollector) classExprForTerm(t Term) (*ClassExpression, bool) {
	switch t.Kind {
	case TermIRI:
		return NewClassIRIExpr(NewClassIRI(t.IRI)), true
	case TermBlank:
		e, ok := c.blankClassExpr[t.Blank]
		return e, ok
	default:
		return nil, false
	}
}

func (c *OntologyCollector) datatypeExprForTerm(t Term) (*DatatypeExpression, bool) {
	switch t.Kind {
	case TermIRI:
		return NewDatatypeIRIExpr(NewDatatypeIRI(t.IRI)), true
	case TermBlank:
		e, ok := c.blankDatatypeExpr[t.Blank]
		return e, ok
	default:
		return nil, false
	}
}

// PropertyKindOf resolves a property IRI's category in the order spec
// §4.5 prescribes: an explicit declaration already collected, then the
// `known(...)` parser options, then the well-known annotation-property
// set (rdfs:label, rdfs:comment).
func (c *OntologyCollector) PropertyKindOf(iri IRI) (PropertyKind, bool) {
	s := iri.String()
	if k, ok := c.declaredKind[s]; ok {
		switch k {
		case DeclarationObjectProperty:
			return PropertyKindObject, true
		case DeclarationDataProperty:
			return PropertyKindData, true
		case DeclarationAnnotationProperty:
			return PropertyKindAnnotation, true
		}
	}
	if c.options.isKnown(DeclarationObjectProperty, s) {
		return PropertyKindObject, true
	}
	if c.options.isKnown(DeclarationDataProperty, s) {
		return PropertyKindData, true
	}
	if c.options.isKnown(DeclarationAnnotationProperty, s) {
		return PropertyKindAnnotation, true
	}
	if isWellKnownAnnotationProperty(iri) {
		return PropertyKindAnnotation, true
	}
	return PropertyKindUnknown, false
}

// defer queues fn, a unit of work that returns true once it has applied
// itself (e.g. a class expression whose member sequence has since reached
// rdf:nil) or false if its dependency is still incomplete.
func (c *OntologyCollector) defer_(fn func() bool) {
	if !fn() {
		c.pending = append(c.pending, fn)
	}
}

// finalise drains deferred state into the ontology and releases the
// intermediate tables (spec §4.4 finalise). Annotations and reifications
// are mostly resolved eagerly as they arrive; any left over at this point
// named an axiom that never materialised and are intentionally dropped
// (spec §7: a StructureViolation is implied and the affected state is
// simply not attached to anything).
func (c *OntologyCollector) finalise() *Ontology {
	c.feedComplete = true
	for {
		progressed := false
		var remaining []func() bool
		for _, fn := range c.pending {
			if fn() {
				progressed = true
			} else {
				remaining = append(remaining, fn)
			}
		}
		c.pending = remaining
		if !progressed || len(remaining) == 0 {
			break
		}
	}
	if len(c.pending) > 0 {
		c.options.logf("owl: %d pattern match(es) still unresolved at end of stream; their axioms are skipped", len(c.pending))
	}
	c.pending = nil

	o := c.ontology
	c.seqFirst = nil
	c.seqRestNil = nil
	c.seqRestNext = nil
	c.blankClassExpr = nil
	c.blankDatatypeExpr = nil
	c.facetTriples = nil
	c.axiomIndexByKey = nil
	c.reificationsByResourceId = nil
	c.reifierToAxiom = nil
	c.pendingReifications = nil
	c.deferredAnnotations = nil
	c.pendingReifierAnnotations = nil
	return o
}
