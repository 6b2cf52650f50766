package owl

// Annotation is the triple (property, value, nested) from spec §3.
// Annotations may themselves carry annotations; in practice nesting depth
// stays shallow (a handful of levels at most), so no explicit bound is
// enforced here.
type Annotation struct {
	Property    AnnotationPropertyIRI
	Value       LiteralOrIRI
	Annotations []Annotation
}

func NewAnnotation(property AnnotationPropertyIRI, value LiteralOrIRI, nested []Annotation) Annotation {
	return Annotation{Property: property, Value: value, Annotations: nested}
}

// Equal compares two annotations structurally, including nested annotations
// in recognition order (spec §8 invariant 4 treats annotation lists as
// multisets of nested-annotation equality at the top level, but preserves
// order within a single axiom's annotation list per spec §3).
func (a Annotation) Equal(other Annotation) bool {
	if !a.Property.AsIRI().Equal(other.Property.AsIRI()) {
		return false
	}
	if !a.Value.Equal(other.Value) {
		return false
	}
	if len(a.Annotations) != len(other.Annotations) {
		return false
	}
	for i := range a.Annotations {
		if !a.Annotations[i].Equal(other.Annotations[i]) {
			return false
		}
	}
	return true
}
