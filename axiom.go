package owl

// AxiomKind enumerates every axiom shape the collector recognises (spec §3
// Axiom). The list and grouping follow the OWL 2 structural specification's
// own axiom categories: annotation axioms, property axioms, class axioms,
// assertions, and the generic axioms (DatatypeDefinition, HasKey).
type AxiomKind int

const (
	AxiomAnnotationAssertion AxiomKind = iota
	AxiomAnnotationPropertyDomain
	AxiomAnnotationPropertyRange
	AxiomSubAnnotationPropertyOf

	AxiomSubObjectPropertyOf
	AxiomSubDataPropertyOf
	AxiomEquivalentObjectProperties
	AxiomEquivalentDataProperties
	AxiomInverseObjectProperties
	AxiomDisjointObjectProperties
	AxiomObjectPropertyDomain
	AxiomObjectPropertyRange
	AxiomDataPropertyDomain
	AxiomDataPropertyRange
	AxiomSymmetricObjectProperty
	AxiomAsymmetricObjectProperty
	AxiomReflexiveObjectProperty
	AxiomIrreflexiveObjectProperty
	AxiomFunctionalObjectProperty
	AxiomInverseFunctionalObjectProperty
	AxiomTransitiveObjectProperty
	AxiomFunctionalDataProperty

	AxiomSubClassOf
	AxiomEquivalentClasses
	AxiomDisjointClasses

	AxiomDatatypeDefinition

	AxiomClassAssertion
	AxiomSameIndividual
	AxiomDifferentIndividuals
	AxiomObjectPropertyAssertion
	AxiomNegativeObjectPropertyAssertion
	AxiomDataPropertyAssertion
	AxiomNegativeDataPropertyAssertion

	AxiomHasKey
)

// ObjectPropertyExpr is a named object property or its syntactic inverse
// (owl:ObjectInverseOf). It appears wherever OWL 2 allows an object
// property *expression* rather than a bare IRI: sub/super in
// SubObjectPropertyOf, both sides of InverseObjectProperties, and the links
// of a property chain.
type ObjectPropertyExpr struct {
	IsInverse bool
	Property  ObjectPropertyIRI
}

func NewObjectPropertyExpr(p ObjectPropertyIRI) ObjectPropertyExpr {
	return ObjectPropertyExpr{Property: p}
}

func NewInverseObjectPropertyExpr(p ObjectPropertyIRI) ObjectPropertyExpr {
	return ObjectPropertyExpr{IsInverse: true, Property: p}
}

func (e ObjectPropertyExpr) Equal(other ObjectPropertyExpr) bool {
	return e.IsInverse == other.IsInverse && e.Property.AsIRI().Equal(other.Property.AsIRI())
}

// Axiom is the tagged-variant type covering all 34 OWL 2 axiom shapes (spec
// §3). As with ClassExpression, only the fields relevant to Kind are
// populated; Annotations is common to every variant.
type Axiom struct {
	Kind        AxiomKind
	Annotations []Annotation

	// Reifications lists the RDF nodes (blank or IRI) that reified this
	// axiom via owl:Axiom/owl:annotatedSource/.../owl:annotatedTarget (spec
	// §3, §4.4 insert_reification). Populated only for IRI reifiers plus any
	// blank-node reifiers the collector retained.
	Reifications []ResourceId

	// AnnotationAssertion, AnnotationPropertyDomain/Range, SubAnnotationPropertyOf
	AnnotationProperty    AnnotationPropertyIRI
	SubAnnotationProperty AnnotationPropertyIRI
	AnnotationSubject     ResourceId
	AnnotationValue       LiteralOrIRI
	AnnotationDomainRange IRI

	// SubObjectPropertyOf: Chain has one element for a plain sub-property
	// axiom, more for a property chain (owl:propertyChainAxiom).
	Chain              []ObjectPropertyExpr
	SubObjectProperty  ObjectPropertyExpr
	SuperObjectProperty ObjectPropertyExpr

	SubDataProperty   DataPropertyIRI
	SuperDataProperty DataPropertyIRI

	ObjectProperties []ObjectPropertyIRI // Equivalent/Disjoint ObjectProperties, HasKey
	DataProperties   []DataPropertyIRI   // Equivalent/Disjoint DataProperties, HasKey

	InverseFirst  ObjectPropertyExpr // InverseObjectProperties
	InverseSecond ObjectPropertyExpr

	ObjectProperty ObjectPropertyIRI // Domain/Range/characteristic axioms
	DataProperty   DataPropertyIRI   // Domain/Range/FunctionalDataProperty

	ClassDomain *ClassExpression    // ObjectPropertyDomain, DataPropertyDomain
	ClassRange  *ClassExpression    // ObjectPropertyRange
	DataRange   *DatatypeExpression // DataPropertyRange

	SubClass   *ClassExpression // SubClassOf
	SuperClass *ClassExpression

	Classes []*ClassExpression // EquivalentClasses, DisjointClasses, HasKey's class

	Datatype           DatatypeIRI // DatatypeDefinition
	DatatypeExpression *DatatypeExpression

	Class      *ClassExpression // ClassAssertion, HasKey
	Individual ResourceId       // ClassAssertion

	Individuals []ResourceId // SameIndividual, DifferentIndividuals

	AssertionSource ResourceId // (Negative)Object/DataPropertyAssertion
	AssertionTarget ResourceId // ObjectPropertyAssertion target individual
	AssertionValue  Literal    // DataPropertyAssertion target literal
}

// Subject returns the IRI the axiom is naturally keyed by, for collector
// lookups such as "find axioms already recorded about this entity" (spec
// §4.4 axiom index). It answers false whenever the axiom has no single IRI
// subject: DisjointClasses (an n-ary axiom with no primary subject) and any
// axiom whose subject is a blank node or a property expression rather than
// a bare IRI.
func (a Axiom) Subject() (IRI, bool) {
	switch a.Kind {
	case AxiomAnnotationAssertion:
		if a.AnnotationSubject.IsBlank {
			return IRI{}, false
		}
		return a.AnnotationSubject.IRI, true
	case AxiomAnnotationPropertyDomain, AxiomAnnotationPropertyRange:
		return a.AnnotationProperty.AsIRI(), true
	case AxiomSubAnnotationPropertyOf:
		return a.SubAnnotationProperty.AsIRI(), true
	case AxiomSubObjectPropertyOf:
		if len(a.Chain) != 1 || a.SubObjectProperty.IsInverse {
			return IRI{}, false
		}
		return a.SubObjectProperty.Property.AsIRI(), true
	case AxiomSubDataPropertyOf:
		return a.SubDataProperty.AsIRI(), true
	case AxiomObjectPropertyDomain, AxiomObjectPropertyRange,
		AxiomSymmetricObjectProperty, AxiomAsymmetricObjectProperty,
		AxiomReflexiveObjectProperty, AxiomIrreflexiveObjectProperty,
		AxiomFunctionalObjectProperty, AxiomInverseFunctionalObjectProperty,
		AxiomTransitiveObjectProperty:
		return a.ObjectProperty.AsIRI(), true
	case AxiomDataPropertyDomain, AxiomDataPropertyRange, AxiomFunctionalDataProperty:
		return a.DataProperty.AsIRI(), true
	case AxiomSubClassOf:
		if a.SubClass == nil || a.SubClass.Kind != ClassExprIRI {
			return IRI{}, false
		}
		return a.SubClass.ClassIRI.AsIRI(), true
	case AxiomDatatypeDefinition:
		return a.Datatype.AsIRI(), true
	case AxiomClassAssertion:
		if a.Individual.IsBlank {
			return IRI{}, false
		}
		return a.Individual.IRI, true
	case AxiomObjectPropertyAssertion, AxiomNegativeObjectPropertyAssertion,
		AxiomDataPropertyAssertion, AxiomNegativeDataPropertyAssertion:
		if a.AssertionSource.IsBlank {
			return IRI{}, false
		}
		return a.AssertionSource.IRI, true
	default:
		return IRI{}, false
	}
}
