package owl

// TermKind tags what an RDF term is: an IRI, a blank node, or a literal
// (spec §4.2).
type TermKind int

const (
	TermIRI TermKind = iota
	TermBlank
	TermLiteral
)

// Term is an RDF subject, predicate, or object position. Predicates are
// always TermIRI; subjects are TermIRI or TermBlank; objects may be any
// kind.
type Term struct {
	Kind    TermKind
	IRI     IRI
	Blank   string
	Literal Literal
}

func TermFromIRI(i IRI) Term           { return Term{Kind: TermIRI, IRI: i} }
func TermFromBlank(b string) Term      { return Term{Kind: TermBlank, Blank: b} }
func TermFromLiteral(l Literal) Term   { return Term{Kind: TermLiteral, Literal: l} }

// IsIRIOrBlank reports whether the term can stand as a resource (subject
// position, or object of an object-property assertion).
func (t Term) IsIRIOrBlank() bool { return t.Kind == TermIRI || t.Kind == TermBlank }

// ResourceId converts an IRI-or-blank term to a ResourceId. It panics if
// called on a literal term; callers must check IsIRIOrBlank first.
func (t Term) ResourceId() ResourceId {
	if t.Kind == TermBlank {
		return ResourceIdFromBlank(t.Blank)
	}
	return ResourceIdFromIRI(t.IRI)
}

func (t Term) Equal(other Term) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TermIRI:
		return t.IRI.Equal(other.IRI)
	case TermBlank:
		return t.Blank == other.Blank
	case TermLiteral:
		return t.Literal.Equal(other.Literal)
	default:
		return false
	}
}

// Lexical returns a stable textual form of the term, used as the
// object-lexical component of an axiom-index key (spec §9 "Axiom
// identification for annotations"). Per spec §9's open question, the kind
// is folded into the form so that a blank node and a literal with the same
// text don't collide.
func (t Term) Lexical() string {
	switch t.Kind {
	case TermIRI:
		return "iri:" + t.IRI.String()
	case TermBlank:
		return "blank:" + t.Blank
	case TermLiteral:
		return "literal:" + t.Literal.Lexical()
	default:
		return ""
	}
}

// Triple is a single RDF statement (spec §4.2): subject is IRI-or-blank,
// predicate is always an IRI, object is IRI, blank, or literal.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// TripleProducer is the external collaborator (spec §6.1) that turns
// Turtle source text into an ordered-but-not-guaranteed-sorted stream of
// triples. Blank-node identifiers it issues are opaque but stable within
// one Produce call.
type TripleProducer interface {
	Produce(text string) ([]Triple, error)
}

// PrefixSource is an optional capability a TripleProducer may implement to
// surface the @prefix declarations it consumed while producing triples, so
// Parse can carry them onto the resulting Ontology (spec §3 "prefix-map",
// §4.6 serializer input).
type PrefixSource interface {
	Prefixes() map[string]string
}
