package owl

// ResourceId identifies an RDF node that may stand as a reification subject:
// either an IRI or a blank-node label (spec §3). Blank-node identity is
// scoped to a single parse invocation.
type ResourceId struct {
	IsBlank bool
	IRI     IRI
	Blank   string
}

func ResourceIdFromIRI(i IRI) ResourceId      { return ResourceId{IRI: i} }
func ResourceIdFromBlank(b string) ResourceId { return ResourceId{IsBlank: true, Blank: b} }

func (r ResourceId) String() string {
	if r.IsBlank {
		return "_:" + r.Blank
	}
	return r.IRI.String()
}

func (r ResourceId) Equal(other ResourceId) bool {
	if r.IsBlank != other.IsBlank {
		return false
	}
	if r.IsBlank {
		return r.Blank == other.Blank
	}
	return r.IRI.Equal(other.IRI)
}
