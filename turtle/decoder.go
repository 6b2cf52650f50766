package turtle

import (
	"fmt"
	"strconv"
	"strings"

	owl "github.com/field33/owlish-sub000"
)

// Decoder is a owl.TripleProducer/owl.PrefixSource that parses a Turtle
// document in a single Produce call. It is stateless between calls: a
// fresh Decoder should be used per document, matching the lifetime
// owl.Parse gives its TripleProducer argument.
type Decoder struct {
	prefixes map[string]string
	base     string
	bnodeN   int

	toks []token
	pos  int

	triples []owl.Triple
}

// NewDecoder returns a Decoder with no prefixes and no base IRI pre-set;
// both can still be declared via @prefix/@base directives in the document.
func NewDecoder() *Decoder {
	return &Decoder{prefixes: make(map[string]string)}
}

// Produce implements owl.TripleProducer.
func (d *Decoder) Produce(text string) ([]owl.Triple, error) {
	d.prefixes = make(map[string]string)
	d.base = ""
	d.toks = nil
	d.triples = nil
	d.bnodeN = 0

	lx := newLexer(text)
	for {
		t := lx.next()
		if t.typ == tokenError {
			return nil, fmt.Errorf("turtle: %s", t.text)
		}
		d.toks = append(d.toks, t)
		if t.typ == tokenEOF {
			break
		}
	}
	d.pos = 0

	for d.peek().typ != tokenEOF {
		if err := d.statement(); err != nil {
			return nil, err
		}
	}
	return d.triples, nil
}

// Prefixes implements owl.PrefixSource.
func (d *Decoder) Prefixes() map[string]string { return d.prefixes }

func (d *Decoder) peek() token { return d.toks[d.pos] }

func (d *Decoder) advance() token {
	t := d.toks[d.pos]
	if d.pos < len(d.toks)-1 {
		d.pos++
	}
	return t
}

func (d *Decoder) expect(typ tokenType, what string) (token, error) {
	t := d.advance()
	if t.typ != typ {
		return t, fmt.Errorf("turtle: expected %s at line %d, got %q", what, t.line, t.text)
	}
	return t, nil
}

func (d *Decoder) statement() error {
	switch d.peek().typ {
	case tokenAtPrefix:
		return d.prefixDirective(true)
	case tokenSparqlPrefix:
		return d.prefixDirective(false)
	case tokenAtBase:
		return d.baseDirective(true)
	case tokenSparqlBase:
		return d.baseDirective(false)
	default:
		return d.triplesStatement()
	}
}

func (d *Decoder) prefixDirective(dotTerminated bool) error {
	d.advance()
	label, err := d.expect(tokenPrefixedName, "prefix label")
	if err != nil {
		return err
	}
	ns, err := d.expect(tokenIRIAbs, "prefix IRI")
	if err != nil {
		return err
	}
	d.prefixes[strings.TrimSuffix(label.text, ":")] = ns.text
	if dotTerminated {
		_, err = d.expect(tokenDot, "'.' after @prefix")
		return err
	}
	return nil
}

func (d *Decoder) baseDirective(dotTerminated bool) error {
	d.advance()
	iri, err := d.expect(tokenIRIAbs, "base IRI")
	if err != nil {
		return err
	}
	d.base = iri.text
	if dotTerminated {
		_, err = d.expect(tokenDot, "'.' after @base")
		return err
	}
	return nil
}

func (d *Decoder) triplesStatement() error {
	subj, err := d.subject()
	if err != nil {
		return err
	}
	// A '[ ... ]' subject may stand alone with no outer predicateObjectList;
	// any other subject form requires one.
	if d.peek().typ != tokenDot {
		if err := d.predicateObjectList(subj); err != nil {
			return err
		}
	}
	_, err = d.expect(tokenDot, "'.' terminating a triples block")
	return err
}

func (d *Decoder) subject() (owl.Term, error) {
	switch d.peek().typ {
	case tokenAnonStart:
		return d.blankNodePropertyList()
	case tokenCollStart:
		return d.collection()
	default:
		return d.resource()
	}
}

// resource parses an IRI or blank node label into a Term; it does not
// accept '[' or '(', which have their own grammar productions.
func (d *Decoder) resource() (owl.Term, error) {
	t := d.advance()
	switch t.typ {
	case tokenIRIAbs:
		return owl.TermFromIRI(owl.MustIRI(d.resolveIRI(t.text))), nil
	case tokenPrefixedName:
		iri, err := d.expandPrefixedName(t.text)
		if err != nil {
			return owl.Term{}, err
		}
		return owl.TermFromIRI(iri), nil
	case tokenBlankLabel:
		return owl.TermFromBlank("b" + t.text), nil
	}
	return owl.Term{}, fmt.Errorf("turtle: expected a resource at line %d, got %q", t.line, t.text)
}

func (d *Decoder) resolveIRI(iri string) string {
	if d.base == "" || strings.Contains(iri, ":") {
		return iri
	}
	return d.base + iri
}

func (d *Decoder) expandPrefixedName(text string) (owl.IRI, error) {
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return owl.IRI{}, fmt.Errorf("turtle: malformed prefixed name %q", text)
	}
	prefix, suffix := text[:idx], text[idx+1:]
	ns, ok := d.prefixes[prefix]
	if !ok {
		return owl.IRI{}, fmt.Errorf("turtle: undeclared prefix %q", prefix)
	}
	return owl.MustIRI(ns + suffix), nil
}

// predicateObjectList parses ';'-separated predicate/object-list groups
// for a fixed subject, terminating just before the statement's '.'.
func (d *Decoder) predicateObjectList(subj owl.Term) error {
	for {
		pred, err := d.verb()
		if err != nil {
			return err
		}
		if err := d.objectList(subj, pred); err != nil {
			return err
		}
		if d.peek().typ != tokenSemicolon {
			return nil
		}
		d.advance()
		// a trailing ';' with nothing after it (before '.' or ']') is legal
		if d.peek().typ == tokenDot || d.peek().typ == tokenAnonEnd {
			return nil
		}
	}
}

func (d *Decoder) verb() (owl.IRI, error) {
	if d.peek().typ == tokenRDFType {
		d.advance()
		return owl.RDFType, nil
	}
	r, err := d.resource()
	if err != nil {
		return owl.IRI{}, err
	}
	if r.Kind != owl.TermIRI {
		return owl.IRI{}, fmt.Errorf("turtle: predicate must be an IRI, not a blank node")
	}
	return r.IRI, nil
}

func (d *Decoder) objectList(subj owl.Term, pred owl.IRI) error {
	for {
		obj, err := d.object()
		if err != nil {
			return err
		}
		d.triples = append(d.triples, owl.Triple{Subject: subj, Predicate: pred, Object: obj})
		if d.peek().typ != tokenComma {
			return nil
		}
		d.advance()
	}
}

func (d *Decoder) object() (owl.Term, error) {
	switch d.peek().typ {
	case tokenAnonStart:
		return d.blankNodePropertyList()
	case tokenCollStart:
		return d.collection()
	case tokenString:
		return d.literalObject()
	case tokenInteger, tokenDecimal, tokenDouble, tokenBoolean:
		return d.numericOrBooleanLiteral()
	default:
		return d.resource()
	}
}

// literalObject parses a quoted string literal plus its optional
// ^^datatype or @lang suffix.
func (d *Decoder) literalObject() (owl.Term, error) {
	str := d.advance()
	switch d.peek().typ {
	case tokenLangTag:
		lang := d.advance()
		return owl.TermFromLiteral(owl.NewLangStringLiteral(str.text, lang.text)), nil
	case tokenDatatypeMark:
		d.advance()
		dtTerm, err := d.resource()
		if err != nil {
			return owl.Term{}, err
		}
		if dtTerm.Kind != owl.TermIRI {
			return owl.Term{}, fmt.Errorf("turtle: literal datatype must be an IRI")
		}
		dt := dtTerm.IRI
		return owl.TermFromLiteral(owl.ParseLiteral(str.text, &dt, "")), nil
	default:
		return owl.TermFromLiteral(owl.NewStringLiteral(str.text)), nil
	}
}

// numericOrBooleanLiteral builds a Literal directly from the lexer's own
// classification (set by lexNumber's digit/'.'/'E' scan), rather than
// re-deriving the datatype from the lexical form a second time.
func (d *Decoder) numericOrBooleanLiteral() (owl.Term, error) {
	t := d.advance()
	if t.typ == tokenBoolean {
		return owl.TermFromLiteral(owl.Literal{Kind: owl.LiteralBool, Bool: t.text == "true"}), nil
	}
	var dt owl.IRI
	switch t.typ {
	case tokenInteger:
		dt = owl.XSDInteger
	case tokenDecimal:
		dt = owl.XSDDecimal
	default:
		dt = owl.XSDDouble
	}
	if _, err := strconv.ParseFloat(strings.TrimPrefix(t.text, "+"), 64); err != nil {
		return owl.Term{}, fmt.Errorf("turtle: malformed numeric literal %q at line %d", t.text, t.line)
	}
	return owl.TermFromLiteral(owl.Literal{Kind: owl.LiteralNumber, Numeric: t.text, Datatype: &dt}), nil
}

func (d *Decoder) freshBlank() owl.Term {
	d.bnodeN++
	return owl.TermFromBlank(fmt.Sprintf("bauto%d", d.bnodeN))
}

// blankNodePropertyList parses '[' predicateObjectList ']', emitting its
// triples against a fresh blank node and returning that node as a Term so
// the caller can use it as a subject or object in turn.
func (d *Decoder) blankNodePropertyList() (owl.Term, error) {
	d.advance() // '['
	node := d.freshBlank()
	if d.peek().typ == tokenAnonEnd {
		d.advance()
		return node, nil
	}
	if err := d.predicateObjectList(node); err != nil {
		return owl.Term{}, err
	}
	if _, err := d.expect(tokenAnonEnd, "']' closing a blank node property list"); err != nil {
		return owl.Term{}, err
	}
	return node, nil
}

// collection parses '(' object* ')' into an rdf:first/rdf:rest list,
// returning its head (rdf:nil for an empty collection).
func (d *Decoder) collection() (owl.Term, error) {
	d.advance() // '('
	var items []owl.Term
	for d.peek().typ != tokenCollEnd {
		item, err := d.object()
		if err != nil {
			return owl.Term{}, err
		}
		items = append(items, item)
	}
	d.advance() // ')'

	if len(items) == 0 {
		return owl.TermFromIRI(owl.RDFNil), nil
	}
	head := d.freshBlank()
	cur := head
	for i, item := range items {
		d.triples = append(d.triples, owl.Triple{Subject: cur, Predicate: owl.RDFFirst, Object: item})
		if i == len(items)-1 {
			d.triples = append(d.triples, owl.Triple{Subject: cur, Predicate: owl.RDFRest, Object: owl.TermFromIRI(owl.RDFNil)})
			break
		}
		next := d.freshBlank()
		d.triples = append(d.triples, owl.Triple{Subject: cur, Predicate: owl.RDFRest, Object: next})
		cur = next
	}
	return head, nil
}
