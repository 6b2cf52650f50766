package owl

// Parse turns Turtle source text into an Ontology (spec §6.3). producer does
// the text-to-triples work (spec §6.1); options carries known(...) property
// declarations and an optional debug logger (spec §6.2).
//
// InvalidInput from the producer is returned immediately. Once triples start
// flowing, every recognised construct either contributes to the result or
// is dropped (StructureViolation, Unsupported), reported only to a
// WithDebugLog logger when one is set; no other error can
// escape a rule handler, so Parse itself never fails past this point.
func Parse(turtle string, producer TripleProducer, options ParserOptions) (*Ontology, error) {
	triples, err := producer.Produce(turtle)
	if err != nil {
		return nil, &InvalidInput{Detail: "turtle source", Cause: err}
	}

	var prefixes map[string]string
	if ps, ok := producer.(PrefixSource); ok {
		prefixes = ps.Prefixes()
	}

	collector := newOntologyCollector(prefixes, options)
	matcher := NewMatcher(allPatterns())

	for _, t := range triples {
		matcher.Feed(t, collector)
	}

	return collector.finalise(), nil
}

// allPatterns assembles the full rule set (spec §4.5): declarations,
// rdf:List assembly, class/datatype expressions, axioms, property
// assertions, and owl:Axiom reifications.
func allPatterns() []*Pattern {
	var patterns []*Pattern
	patterns = append(patterns, declarationPatterns()...)
	patterns = append(patterns, sequencePatterns()...)
	patterns = append(patterns, classExprPatterns()...)
	patterns = append(patterns, axiomPatterns()...)
	patterns = append(patterns, assertionPatterns()...)
	patterns = append(patterns, reificationPatterns()...)
	return patterns
}
