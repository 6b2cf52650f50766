package owl

import "log"

// ParserOptions accumulates entries that influence rule evaluation during
// Parse (spec §6.2). Built once via NewParserOptions and read-only
// thereafter.
type ParserOptions struct {
	known    map[DeclarationKey]struct{}
	debugLog *log.Logger
}

// ParserOption configures a ParserOptions value.
type ParserOption func(*ParserOptions)

// Known treats iri as already declared in the given category, as if a
// `?x rdf:type <category>` triple for it had been observed. Mandatory when
// a property's declaration triple is absent from the source (spec §6.2).
func Known(kind DeclarationKind, iri IRI) ParserOption {
	return func(o *ParserOptions) {
		o.known[DeclarationKey{Kind: kind, IRI: iri.String()}] = struct{}{}
	}
}

// WithDebugLog routes StructureViolation diagnostics (spec §7: pattern
// matches still unresolved when the triple stream ends, whose axioms are
// skipped) to the given logger instead of discarding them.
func WithDebugLog(l *log.Logger) ParserOption {
	return func(o *ParserOptions) { o.debugLog = l }
}

// NewParserOptions builds an immutable ParserOptions from the given
// options.
func NewParserOptions(opts ...ParserOption) ParserOptions {
	o := ParserOptions{known: make(map[DeclarationKey]struct{})}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o ParserOptions) isKnown(kind DeclarationKind, iri string) bool {
	_, ok := o.known[DeclarationKey{Kind: kind, IRI: iri}]
	return ok
}

func (o ParserOptions) logf(format string, args ...any) {
	if o.debugLog != nil {
		o.debugLog.Printf(format, args...)
	}
}
