// Package serialize renders a parsed Ontology back to Turtle source text
// (spec §4.6, §6.5). ToTurtle is a pure function: it reads its argument and
// never mutates it.
package serialize

import (
	"sort"
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/uuid"

	owl "github.com/field33/owlish-sub000"
)

// ToTurtle renders o as Turtle source text.
func ToTurtle(o *owl.Ontology) string {
	w := newWriter(o)
	w.writePrefixes()
	w.writeOntologyDecl()
	w.writeDeclarations()
	w.writeAxioms()
	return w.sb.String()
}

type prefixEntry struct {
	Prefix    string
	Namespace string
}

type writer struct {
	o        *owl.Ontology
	prefixes []prefixEntry
	sb       strings.Builder
}

func newWriter(o *owl.Ontology) *writer {
	entries := []prefixEntry{
		{"rdf", owl.RDFNamespace},
		{"rdfs", owl.RDFSNamespace},
		{"owl", owl.OWLNamespace},
		{"xsd", owl.XSDNamespace},
	}
	seen := stringset.New(owl.RDFNamespace, owl.RDFSNamespace, owl.OWLNamespace, owl.XSDNamespace)
	for p, ns := range o.Prefixes() {
		if seen.Contains(ns) {
			continue
		}
		seen.Add(ns)
		entries = append(entries, prefixEntry{p, ns})
	}
	if iri, ok := o.IRI(); ok {
		ns := iri.String() + "#"
		if !seen.Contains(ns) {
			entries = append(entries, prefixEntry{"", ns})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Prefix) != len(entries[j].Prefix) {
			return len(entries[i].Prefix) < len(entries[j].Prefix)
		}
		return entries[i].Prefix < entries[j].Prefix
	})
	return &writer{o: o, prefixes: entries}
}

func (w *writer) writePrefixes() {
	for _, e := range w.prefixes {
		w.sb.WriteString("@prefix " + e.Prefix + ": <" + e.Namespace + "> .\n")
	}
	w.sb.WriteString("\n")
}

func (w *writer) writeOntologyDecl() {
	iri, ok := w.o.IRI()
	if !ok {
		return
	}
	w.sb.WriteString(w.abbreviate(iri) + " rdf:type owl:Ontology .\n\n")
}

// abbreviate picks the longest matching namespace prefix for iri, falling
// back to a bracketed absolute IRI (spec §4.6 "IRIs are abbreviated using
// the longest matching prefix").
func (w *writer) abbreviate(iri owl.IRI) string {
	s := iri.String()
	best := -1
	var bestEntry prefixEntry
	for _, e := range w.prefixes {
		if e.Namespace == "" || !strings.HasPrefix(s, e.Namespace) {
			continue
		}
		if len(s) == len(e.Namespace) {
			continue
		}
		if len(e.Namespace) > best {
			best = len(e.Namespace)
			bestEntry = e
		}
	}
	if best < 0 {
		return "<" + s + ">"
	}
	local := s[len(bestEntry.Namespace):]
	return bestEntry.Prefix + ":" + local
}

func (w *writer) resource(r owl.ResourceId) string {
	if r.IsBlank {
		return "_:" + r.Blank
	}
	return w.abbreviate(r.IRI)
}

func (w *writer) literalOrIRI(v owl.LiteralOrIRI) string {
	if v.IsIRI {
		return w.abbreviate(v.IRI)
	}
	return w.literal(v.Literal)
}

func (w *writer) literal(l owl.Literal) string {
	switch l.Kind {
	case owl.LiteralString:
		return quote(l.Text)
	case owl.LiteralLangString:
		return quote(l.Text) + "@" + l.Lang
	case owl.LiteralBool:
		if l.Bool {
			return "true"
		}
		return "false"
	case owl.LiteralDateTime:
		return quote(l.Text) + "^^xsd:dateTime"
	case owl.LiteralNumber:
		if l.Datatype == nil {
			return l.Numeric
		}
		switch l.Datatype.String() {
		case owl.XSDInteger.String(), owl.XSDDecimal.String():
			return l.Numeric
		default:
			return quote(l.Numeric) + "^^" + w.abbreviate(*l.Datatype)
		}
	case owl.LiteralRaw:
		if l.Datatype == nil {
			return quote(l.Text)
		}
		return quote(l.Text) + "^^" + w.abbreviate(*l.Datatype)
	default:
		return quote(l.Text)
	}
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (w *writer) collection(items []string) string {
	if len(items) == 0 {
		return "()"
	}
	return "( " + strings.Join(items, " ") + " )"
}

// bracket renders a typed anonymous node `[ a TYPE ; p1 v1 ; p2 v2 ]`,
// indented by four spaces per nesting level (spec §4.6 item 5).
func (w *writer) bracket(level int, typeIRI string, pairs [][2]string) string {
	ind := strings.Repeat("    ", level+1)
	var b strings.Builder
	b.WriteString("[ a " + typeIRI)
	for _, p := range pairs {
		b.WriteString(" ;\n" + ind + p[0] + " " + p[1])
	}
	b.WriteString(" ]")
	return b.String()
}

// plainBracket renders an untyped single-predicate anonymous node, used for
// owl:withRestrictions facet members (which carry no rdf:type triple).
func (w *writer) plainBracket(pred, val string) string {
	return "[ " + pred + " " + val + " ]"
}

func (w *writer) objPropExpr(e owl.ObjectPropertyExpr) string {
	if e.IsInverse {
		return w.plainBracket("owl:inverseOf", w.abbreviate(e.Property.AsIRI()))
	}
	return w.abbreviate(e.Property.AsIRI())
}

func (w *writer) classExpr(c *owl.ClassExpression, level int) string {
	if c == nil {
		return "owl:Thing"
	}
	switch c.Kind {
	case owl.ClassExprIRI:
		return w.abbreviate(c.ClassIRI.AsIRI())
	case owl.ClassExprIntersectionOf:
		return w.bracket(level, "owl:Class", [][2]string{{"owl:intersectionOf", w.collection(w.classList(c.Operands, level+1))}})
	case owl.ClassExprUnionOf:
		return w.bracket(level, "owl:Class", [][2]string{{"owl:unionOf", w.collection(w.classList(c.Operands, level+1))}})
	case owl.ClassExprComplementOf:
		return w.bracket(level, "owl:Class", [][2]string{{"owl:complementOf", w.classExpr(c.Operand, level+1)}})
	case owl.ClassExprOneOf:
		items := make([]string, len(c.Individuals))
		for i, ind := range c.Individuals {
			items[i] = w.abbreviate(ind.AsIRI())
		}
		return w.bracket(level, "owl:Class", [][2]string{{"owl:oneOf", w.collection(items)}})
	case owl.ClassExprObjectSomeValuesFrom:
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
			{"owl:someValuesFrom", w.classExpr(c.Filler, level+1)},
		})
	case owl.ClassExprObjectAllValuesFrom:
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
			{"owl:allValuesFrom", w.classExpr(c.Filler, level+1)},
		})
	case owl.ClassExprObjectHasValue:
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
			{"owl:hasValue", w.literalOrIRI(*c.Value)},
		})
	case owl.ClassExprObjectHasSelf:
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
			{"owl:hasSelf", "true"},
		})
	case owl.ClassExprObjectMinCardinality, owl.ClassExprObjectMaxCardinality, owl.ClassExprObjectExactCardinality:
		return w.cardinalityExpr(c, level)
	case owl.ClassExprDataSomeValuesFrom:
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.DataProperty.AsIRI())},
			{"owl:someValuesFrom", w.datatypeExpr(c.DataFiller, level+1)},
		})
	default:
		return "owl:Thing"
	}
}

// cardinalityExpr serialises qualified vs. unqualified based on whether
// OnClass is present (spec §4.6 item 5, §8 scenario E).
func (w *writer) cardinalityExpr(c *owl.ClassExpression, level int) string {
	var unquant, quant string
	switch c.Kind {
	case owl.ClassExprObjectMinCardinality:
		unquant, quant = "owl:minCardinality", "owl:minQualifiedCardinality"
	case owl.ClassExprObjectMaxCardinality:
		unquant, quant = "owl:maxCardinality", "owl:maxQualifiedCardinality"
	default:
		unquant, quant = "owl:cardinality", "owl:qualifiedCardinality"
	}
	n := quote(strconv.Itoa(c.Cardinality)) + "^^xsd:nonNegativeInteger"
	if c.OnClass == nil {
		return w.bracket(level, "owl:Restriction", [][2]string{
			{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
			{unquant, n},
		})
	}
	return w.bracket(level, "owl:Restriction", [][2]string{
		{"owl:onProperty", w.abbreviate(c.ObjectProperty.AsIRI())},
		{"owl:onClass", w.classExpr(c.OnClass, level+1)},
		{quant, n},
	})
}

func (w *writer) classList(ops []*owl.ClassExpression, level int) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = w.classExpr(o, level)
	}
	return out
}

func (w *writer) datatypeExpr(d *owl.DatatypeExpression, level int) string {
	if d == nil {
		return "rdfs:Literal"
	}
	switch d.Kind {
	case owl.DatatypeExprIRI:
		return w.abbreviate(d.Datatype.AsIRI())
	case owl.DatatypeExprRestriction:
		facets := make([]string, len(d.Facets))
		for i, f := range d.Facets {
			facets[i] = w.plainBracket(w.abbreviate(f.Property), w.literal(f.Value))
		}
		return w.bracket(level, "rdfs:Datatype", [][2]string{
			{"owl:onDatatype", w.abbreviate(d.Datatype.AsIRI())},
			{"owl:withRestrictions", w.collection(facets)},
		})
	case owl.DatatypeExprComplementOf:
		return w.bracket(level, "rdfs:Datatype", [][2]string{{"owl:complementOf", w.datatypeExpr(d.Operand, level+1)}})
	case owl.DatatypeExprIntersectionOf:
		return w.bracket(level, "rdfs:Datatype", [][2]string{{"owl:intersectionOf", w.collection(w.datatypeList(d.Operands, level+1))}})
	case owl.DatatypeExprUnionOf:
		return w.bracket(level, "rdfs:Datatype", [][2]string{{"owl:unionOf", w.collection(w.datatypeList(d.Operands, level+1))}})
	case owl.DatatypeExprOneOf:
		items := make([]string, len(d.Literals))
		for i, l := range d.Literals {
			items[i] = w.literal(l)
		}
		return w.bracket(level, "rdfs:Datatype", [][2]string{{"owl:oneOf", w.collection(items)}})
	default:
		return "rdfs:Literal"
	}
}

func (w *writer) datatypeList(ops []*owl.DatatypeExpression, level int) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = w.datatypeExpr(o, level)
	}
	return out
}

// writeDeclarations emits declarations grouped by kind (spec §4.6 item 3),
// in recognition order within each group.
func (w *writer) writeDeclarations() {
	groups := []struct {
		kind     owl.DeclarationKind
		category string
	}{
		{owl.DeclarationClass, "owl:Class"},
		{owl.DeclarationNamedIndividual, "owl:NamedIndividual"},
		{owl.DeclarationObjectProperty, "owl:ObjectProperty"},
		{owl.DeclarationDataProperty, "owl:DatatypeProperty"},
		{owl.DeclarationAnnotationProperty, "owl:AnnotationProperty"},
		{owl.DeclarationDatatype, "rdfs:Datatype"},
	}
	any := false
	for _, g := range groups {
		for _, d := range w.o.Declarations() {
			if d.Kind != g.kind {
				continue
			}
			w.sb.WriteString(w.abbreviate(d.IRI) + " rdf:type " + g.category + " .\n")
			any = true
		}
	}
	if any {
		w.sb.WriteString("\n")
	}
}

// freshBlank synthesizes a collision-free blank-node label for reifying an
// annotated axiom, since the source ontology is not guaranteed to have
// reserved one (spec §4.6 round-trip contract only requires the
// *re-parsed* ontology be structurally equal, not that blank labels match).
func freshBlank() string {
	return "_:ann" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// reify emits the owl:Axiom reification for (subj, pred, obj) and its
// annotations, per spec §4.5's reification idiom, only when annotations are
// present.
func (w *writer) reify(subj, pred, obj string, annotations []owl.Annotation) {
	if len(annotations) == 0 {
		return
	}
	label := freshBlank()
	w.sb.WriteString(label + " a owl:Axiom ;\n")
	w.sb.WriteString("    owl:annotatedSource " + subj + " ;\n")
	w.sb.WriteString("    owl:annotatedProperty " + pred + " ;\n")
	w.sb.WriteString("    owl:annotatedTarget " + obj)
	for _, ann := range annotations {
		w.sb.WriteString(" ;\n    " + w.abbreviate(ann.Property.AsIRI()) + " " + w.literalOrIRI(ann.Value))
	}
	w.sb.WriteString(" .\n")
}

func (w *writer) triple(subj, pred, obj string, annotations []owl.Annotation) {
	w.sb.WriteString(subj + " " + pred + " " + obj + " .\n")
	w.reify(subj, pred, obj, annotations)
}

// axiomGroups orders axiom kinds into sections: domain/range axioms, the
// other property axioms, SubClassOf, the remaining class axioms,
// ClassAssertion, AnnotationAssertion, Same/DifferentIndividuals,
// data-property assertions, object-property assertions. SubClassOf axioms
// are therefore written before class assertions, not after them. Axioms
// within a group keep their original recognition order.
func axiomGroups() [][]owl.AxiomKind {
	return [][]owl.AxiomKind{
		{owl.AxiomAnnotationPropertyDomain, owl.AxiomAnnotationPropertyRange,
			owl.AxiomDataPropertyDomain, owl.AxiomDataPropertyRange,
			owl.AxiomObjectPropertyDomain, owl.AxiomObjectPropertyRange},
		{owl.AxiomSubAnnotationPropertyOf, owl.AxiomSubDataPropertyOf, owl.AxiomSubObjectPropertyOf,
			owl.AxiomEquivalentObjectProperties, owl.AxiomEquivalentDataProperties,
			owl.AxiomDisjointObjectProperties, owl.AxiomInverseObjectProperties,
			owl.AxiomSymmetricObjectProperty, owl.AxiomAsymmetricObjectProperty,
			owl.AxiomReflexiveObjectProperty, owl.AxiomIrreflexiveObjectProperty,
			owl.AxiomFunctionalObjectProperty, owl.AxiomFunctionalDataProperty,
			owl.AxiomInverseFunctionalObjectProperty, owl.AxiomTransitiveObjectProperty},
		{owl.AxiomSubClassOf},
		{owl.AxiomEquivalentClasses, owl.AxiomDisjointClasses, owl.AxiomDatatypeDefinition, owl.AxiomHasKey},
		{owl.AxiomClassAssertion},
		{owl.AxiomAnnotationAssertion},
		{owl.AxiomSameIndividual, owl.AxiomDifferentIndividuals},
		{owl.AxiomDataPropertyAssertion, owl.AxiomNegativeDataPropertyAssertion},
		{owl.AxiomObjectPropertyAssertion, owl.AxiomNegativeObjectPropertyAssertion},
	}
}

func (w *writer) writeAxioms() {
	for _, group := range axiomGroups() {
		wanted := map[owl.AxiomKind]bool{}
		for _, k := range group {
			wanted[k] = true
		}
		wrote := false
		for _, a := range w.o.Axioms() {
			if !wanted[a.Kind] {
				continue
			}
			w.emitAxiom(a)
			wrote = true
		}
		if wrote {
			w.sb.WriteString("\n")
		}
	}
}

func (w *writer) emitAxiom(a owl.Axiom) {
	switch a.Kind {
	case owl.AxiomAnnotationAssertion:
		w.triple(w.resource(a.AnnotationSubject), w.abbreviate(a.AnnotationProperty.AsIRI()), w.literalOrIRI(a.AnnotationValue), a.Annotations)
	case owl.AxiomAnnotationPropertyDomain:
		w.triple(w.abbreviate(a.AnnotationProperty.AsIRI()), "rdfs:domain", w.abbreviate(a.AnnotationDomainRange), a.Annotations)
	case owl.AxiomAnnotationPropertyRange:
		w.triple(w.abbreviate(a.AnnotationProperty.AsIRI()), "rdfs:range", w.abbreviate(a.AnnotationDomainRange), a.Annotations)
	case owl.AxiomSubAnnotationPropertyOf:
		w.triple(w.abbreviate(a.SubAnnotationProperty.AsIRI()), "rdfs:subPropertyOf", w.abbreviate(a.AnnotationProperty.AsIRI()), a.Annotations)

	case owl.AxiomSubObjectPropertyOf:
		if len(a.Chain) > 1 {
			items := make([]string, len(a.Chain))
			for i, e := range a.Chain {
				items[i] = w.objPropExpr(e)
			}
			w.triple(w.objPropExpr(a.SuperObjectProperty), "owl:propertyChainAxiom", w.collection(items), a.Annotations)
			return
		}
		w.triple(w.objPropExpr(a.SubObjectProperty), "rdfs:subPropertyOf", w.objPropExpr(a.SuperObjectProperty), a.Annotations)
	case owl.AxiomSubDataPropertyOf:
		w.triple(w.abbreviate(a.SubDataProperty.AsIRI()), "rdfs:subPropertyOf", w.abbreviate(a.SuperDataProperty.AsIRI()), a.Annotations)
	case owl.AxiomEquivalentObjectProperties:
		w.triple(w.abbreviate(a.ObjectProperties[0].AsIRI()), "owl:equivalentProperty", w.abbreviate(a.ObjectProperties[1].AsIRI()), a.Annotations)
	case owl.AxiomEquivalentDataProperties:
		w.triple(w.abbreviate(a.DataProperties[0].AsIRI()), "owl:equivalentProperty", w.abbreviate(a.DataProperties[1].AsIRI()), a.Annotations)
	case owl.AxiomDisjointObjectProperties:
		w.triple(w.abbreviate(a.ObjectProperties[0].AsIRI()), "owl:propertyDisjointWith", w.abbreviate(a.ObjectProperties[1].AsIRI()), a.Annotations)
	case owl.AxiomInverseObjectProperties:
		w.triple(w.objPropExpr(a.InverseFirst), "owl:inverseOf", w.objPropExpr(a.InverseSecond), a.Annotations)

	case owl.AxiomObjectPropertyDomain:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "rdfs:domain", w.classExpr(a.ClassDomain, 0), a.Annotations)
	case owl.AxiomObjectPropertyRange:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "rdfs:range", w.classExpr(a.ClassRange, 0), a.Annotations)
	case owl.AxiomDataPropertyDomain:
		w.triple(w.abbreviate(a.DataProperty.AsIRI()), "rdfs:domain", w.classExpr(a.ClassDomain, 0), a.Annotations)
	case owl.AxiomDataPropertyRange:
		w.triple(w.abbreviate(a.DataProperty.AsIRI()), "rdfs:range", w.datatypeExpr(a.DataRange, 0), a.Annotations)

	case owl.AxiomSymmetricObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:SymmetricProperty", a.Annotations)
	case owl.AxiomAsymmetricObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:AsymmetricProperty", a.Annotations)
	case owl.AxiomReflexiveObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:ReflexiveProperty", a.Annotations)
	case owl.AxiomIrreflexiveObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:IrreflexiveProperty", a.Annotations)
	case owl.AxiomFunctionalObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:FunctionalProperty", a.Annotations)
	case owl.AxiomFunctionalDataProperty:
		w.triple(w.abbreviate(a.DataProperty.AsIRI()), "a", "owl:FunctionalProperty", a.Annotations)
	case owl.AxiomInverseFunctionalObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:InverseFunctionalProperty", a.Annotations)
	case owl.AxiomTransitiveObjectProperty:
		w.triple(w.abbreviate(a.ObjectProperty.AsIRI()), "a", "owl:TransitiveProperty", a.Annotations)

	case owl.AxiomSubClassOf:
		w.triple(w.classExpr(a.SubClass, 0), "rdfs:subClassOf", w.classExpr(a.SuperClass, 0), a.Annotations)
	case owl.AxiomEquivalentClasses:
		w.triple(w.classExpr(a.Classes[0], 0), "owl:equivalentClass", w.classExpr(a.Classes[1], 0), a.Annotations)
	case owl.AxiomDisjointClasses:
		w.triple(w.classExpr(a.Classes[0], 0), "owl:disjointWith", w.classExpr(a.Classes[1], 0), a.Annotations)
	case owl.AxiomDatatypeDefinition:
		w.triple(w.abbreviate(a.Datatype.AsIRI()), "owl:equivalentClass", w.datatypeExpr(a.DatatypeExpression, 0), a.Annotations)
	case owl.AxiomHasKey:
		props := make([]string, 0, len(a.ObjectProperties)+len(a.DataProperties))
		for _, p := range a.ObjectProperties {
			props = append(props, w.abbreviate(p.AsIRI()))
		}
		for _, p := range a.DataProperties {
			props = append(props, w.abbreviate(p.AsIRI()))
		}
		w.triple(w.classExpr(a.Class, 0), "owl:hasKey", w.collection(props), a.Annotations)

	case owl.AxiomClassAssertion:
		w.triple(w.resource(a.Individual), "a", w.classExpr(a.Class, 0), a.Annotations)

	case owl.AxiomSameIndividual:
		w.chain(a.Individuals, "owl:sameAs", a.Annotations)
	case owl.AxiomDifferentIndividuals:
		if len(a.Individuals) == 2 {
			w.chain(a.Individuals, "owl:differentFrom", a.Annotations)
			return
		}
		w.allDifferent(a.Individuals, a.Annotations)

	case owl.AxiomDataPropertyAssertion:
		w.triple(w.resource(a.AssertionSource), w.abbreviate(a.DataProperty.AsIRI()), w.literal(a.AssertionValue), a.Annotations)
	case owl.AxiomObjectPropertyAssertion:
		w.triple(w.resource(a.AssertionSource), w.abbreviate(a.ObjectProperty.AsIRI()), w.resource(a.AssertionTarget), a.Annotations)

	case owl.AxiomNegativeDataPropertyAssertion:
		w.negativeAssertion(w.resource(a.AssertionSource), w.abbreviate(a.DataProperty.AsIRI()), "owl:targetValue", w.literal(a.AssertionValue))
	case owl.AxiomNegativeObjectPropertyAssertion:
		w.negativeAssertion(w.resource(a.AssertionSource), w.abbreviate(a.ObjectProperty.AsIRI()), "owl:targetIndividual", w.resource(a.AssertionTarget))
	}
}

// chain emits pairwise triples ids[0] pred ids[1], ids[1] pred ids[2], ...
// Reification (if annotated) attaches only to the first pair.
func (w *writer) chain(ids []owl.ResourceId, pred string, annotations []owl.Annotation) {
	for i := 0; i+1 < len(ids); i++ {
		ann := []owl.Annotation(nil)
		if i == 0 {
			ann = annotations
		}
		w.triple(w.resource(ids[i]), pred, w.resource(ids[i+1]), ann)
	}
}

// allDifferent emits the owl:AllDifferent/owl:distinctMembers group form
// for more than two individuals (spec §4.5, mirroring allDifferentPattern).
func (w *writer) allDifferent(ids []owl.ResourceId, annotations []owl.Annotation) {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = w.resource(id)
	}
	label := freshBlank()
	w.sb.WriteString(label + " a owl:AllDifferent ;\n")
	w.sb.WriteString("    owl:distinctMembers " + w.collection(items))
	for _, ann := range annotations {
		w.sb.WriteString(" ;\n    " + w.abbreviate(ann.Property.AsIRI()) + " " + w.literalOrIRI(ann.Value))
	}
	w.sb.WriteString(" .\n")
}

// negativeAssertion emits the owl:NegativePropertyAssertion reified block
// (spec §4.5). It takes no annotations, so annotations on this axiom kind
// are not written.
func (w *writer) negativeAssertion(subj, prop, targetPred, target string) {
	label := freshBlank()
	w.sb.WriteString(label + " a owl:NegativePropertyAssertion ;\n")
	w.sb.WriteString("    owl:sourceIndividual " + subj + " ;\n")
	w.sb.WriteString("    owl:assertionProperty " + prop + " ;\n")
	w.sb.WriteString("    " + targetPred + " " + target + " .\n")
}
