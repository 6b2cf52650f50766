package owl

import "bitbucket.org/creachadair/stringset"

// Namespace bases for the vocabularies the mapper recognises without a
// Declaration or a known(...) parser option.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF/RDFS terms.
var (
	RDFType  = MustIRI(RDFNamespace + "type")
	RDFFirst = MustIRI(RDFNamespace + "first")
	RDFRest  = MustIRI(RDFNamespace + "rest")
	RDFNil   = MustIRI(RDFNamespace + "nil")

	RDFSSubClassOf = MustIRI(RDFSNamespace + "subClassOf")
	RDFSDomain     = MustIRI(RDFSNamespace + "domain")
	RDFSRange      = MustIRI(RDFSNamespace + "range")
	RDFSLabel      = MustIRI(RDFSNamespace + "label")
	RDFSComment    = MustIRI(RDFSNamespace + "comment")
	RDFSDatatype   = MustIRI(RDFSNamespace + "Datatype")
	RDFSSubPropertyOf = MustIRI(RDFSNamespace + "subPropertyOf")
)

// OWL class/declaration terms.
var (
	OWLOntology           = MustIRI(OWLNamespace + "Ontology")
	OWLClass              = MustIRI(OWLNamespace + "Class")
	OWLThing              = MustIRI(OWLNamespace + "Thing")
	OWLObjectProperty      = MustIRI(OWLNamespace + "ObjectProperty")
	OWLDatatypeProperty    = MustIRI(OWLNamespace + "DatatypeProperty")
	OWLAnnotationProperty  = MustIRI(OWLNamespace + "AnnotationProperty")
	OWLNamedIndividual     = MustIRI(OWLNamespace + "NamedIndividual")
	OWLDatatype            = MustIRI(OWLNamespace + "Datatype")
	OWLRestriction          = MustIRI(OWLNamespace + "Restriction")
	OWLAxiom                = MustIRI(OWLNamespace + "Axiom")
)

// OWL class-expression construction predicates.
var (
	OWLIntersectionOf = MustIRI(OWLNamespace + "intersectionOf")
	OWLUnionOf        = MustIRI(OWLNamespace + "unionOf")
	OWLComplementOf   = MustIRI(OWLNamespace + "complementOf")
	OWLOneOf          = MustIRI(OWLNamespace + "oneOf")
	OWLOnProperty     = MustIRI(OWLNamespace + "onProperty")
	OWLSomeValuesFrom = MustIRI(OWLNamespace + "someValuesFrom")
	OWLAllValuesFrom  = MustIRI(OWLNamespace + "allValuesFrom")
	OWLHasValue       = MustIRI(OWLNamespace + "hasValue")
	OWLHasSelf        = MustIRI(OWLNamespace + "hasSelf")

	OWLCardinality            = MustIRI(OWLNamespace + "cardinality")
	OWLMinCardinality         = MustIRI(OWLNamespace + "minCardinality")
	OWLMaxCardinality         = MustIRI(OWLNamespace + "maxCardinality")
	OWLQualifiedCardinality    = MustIRI(OWLNamespace + "qualifiedCardinality")
	OWLMinQualifiedCardinality = MustIRI(OWLNamespace + "minQualifiedCardinality")
	OWLMaxQualifiedCardinality = MustIRI(OWLNamespace + "maxQualifiedCardinality")
	OWLOnClass                = MustIRI(OWLNamespace + "onClass")
	OWLOnDataRange             = MustIRI(OWLNamespace + "onDataRange")

	OWLOnDatatype       = MustIRI(OWLNamespace + "onDatatype")
	OWLWithRestrictions = MustIRI(OWLNamespace + "withRestrictions")
)

// OWL property-characteristic and axiom predicates.
var (
	OWLInverseOf             = MustIRI(OWLNamespace + "inverseOf")
	OWLEquivalentClass        = MustIRI(OWLNamespace + "equivalentClass")
	OWLEquivalentProperty      = MustIRI(OWLNamespace + "equivalentProperty")
	OWLDisjointWith            = MustIRI(OWLNamespace + "disjointWith")
	OWLPropertyDisjointWith    = MustIRI(OWLNamespace + "propertyDisjointWith")
	OWLSameAs                  = MustIRI(OWLNamespace + "sameAs")
	OWLDifferentFrom           = MustIRI(OWLNamespace + "differentFrom")
	OWLAllDifferent            = MustIRI(OWLNamespace + "AllDifferent")
	OWLDistinctMembers         = MustIRI(OWLNamespace + "distinctMembers")
	OWLHasKey                  = MustIRI(OWLNamespace + "hasKey")

	OWLSymmetricProperty           = MustIRI(OWLNamespace + "SymmetricProperty")
	OWLAsymmetricProperty          = MustIRI(OWLNamespace + "AsymmetricProperty")
	OWLReflexiveProperty           = MustIRI(OWLNamespace + "ReflexiveProperty")
	OWLIrreflexiveProperty         = MustIRI(OWLNamespace + "IrreflexiveProperty")
	OWLFunctionalProperty          = MustIRI(OWLNamespace + "FunctionalProperty")
	OWLInverseFunctionalProperty   = MustIRI(OWLNamespace + "InverseFunctionalProperty")
	OWLTransitiveProperty          = MustIRI(OWLNamespace + "TransitiveProperty")
	OWLPropertyChainAxiom          = MustIRI(OWLNamespace + "propertyChainAxiom")

	OWLNegativePropertyAssertion = MustIRI(OWLNamespace + "NegativePropertyAssertion")
	OWLSourceIndividual          = MustIRI(OWLNamespace + "sourceIndividual")
	OWLAssertionProperty         = MustIRI(OWLNamespace + "assertionProperty")
	OWLTargetIndividual          = MustIRI(OWLNamespace + "targetIndividual")
	OWLTargetValue               = MustIRI(OWLNamespace + "targetValue")

	OWLAnnotatedSource   = MustIRI(OWLNamespace + "annotatedSource")
	OWLAnnotatedProperty = MustIRI(OWLNamespace + "annotatedProperty")
	OWLAnnotatedTarget   = MustIRI(OWLNamespace + "annotatedTarget")
)

// XSD facet predicates usable inside an owl:withRestrictions list (spec §3
// "Facet").
var (
	XSDMinInclusive   = MustIRI(XSDNamespace + "minInclusive")
	XSDMaxInclusive   = MustIRI(XSDNamespace + "maxInclusive")
	XSDMinExclusive   = MustIRI(XSDNamespace + "minExclusive")
	XSDMaxExclusive   = MustIRI(XSDNamespace + "maxExclusive")
	XSDMinLength      = MustIRI(XSDNamespace + "minLength")
	XSDMaxLength      = MustIRI(XSDNamespace + "maxLength")
	XSDLength         = MustIRI(XSDNamespace + "length")
	XSDPattern        = MustIRI(XSDNamespace + "pattern")
	XSDTotalDigits    = MustIRI(XSDNamespace + "totalDigits")
	XSDFractionDigits = MustIRI(XSDNamespace + "fractionDigits")
)

var datatypeFacets = []IRI{
	XSDMinInclusive, XSDMaxInclusive, XSDMinExclusive, XSDMaxExclusive,
	XSDMinLength, XSDMaxLength, XSDLength, XSDPattern, XSDTotalDigits, XSDFractionDigits,
}

// XSD datatypes recognised directly by the literal layer (spec §4.1).
var (
	XSDString             = MustIRI(XSDNamespace + "string")
	XSDInteger             = MustIRI(XSDNamespace + "integer")
	XSDDecimal             = MustIRI(XSDNamespace + "decimal")
	XSDFloat                = MustIRI(XSDNamespace + "float")
	XSDDouble               = MustIRI(XSDNamespace + "double")
	XSDBoolean              = MustIRI(XSDNamespace + "boolean")
	XSDDateTime             = MustIRI(XSDNamespace + "dateTime")
	XSDNonNegativeInteger   = MustIRI(XSDNamespace + "nonNegativeInteger")
)

// wellKnownAnnotationProperties is consulted when a predicate has no
// Declaration and was not supplied via known(...): rdfs:label and
// rdfs:comment are always treated as annotation properties (spec §4.5).
var wellKnownAnnotationProperties = stringset.New(RDFSLabel.String(), RDFSComment.String())

func isWellKnownAnnotationProperty(iri IRI) bool {
	return wellKnownAnnotationProperties.Contains(iri.String())
}
