package owl

// VarKind restricts what a pattern variable may bind to (spec §4.3).
type VarKind int

const (
	VarAny VarKind = iota
	VarIRI
	VarBlank
	VarIRIOrBlank
	VarLiteral
)

func (k VarKind) accepts(t Term) bool {
	switch k {
	case VarAny:
		return true
	case VarIRI:
		return t.Kind == TermIRI
	case VarBlank:
		return t.Kind == TermBlank
	case VarIRIOrBlank:
		return t.Kind == TermIRI || t.Kind == TermBlank
	case VarLiteral:
		return t.Kind == TermLiteral
	default:
		return false
	}
}

// Slot is one position (subject, predicate, or object) of a TripleTemplate:
// either a concrete value to match literally, or a named variable of a
// given kind.
type Slot struct {
	Fixed *Term
	Var   string
	Kind  VarKind
}

// FixedSlot matches only triples whose term at this position equals t.
func FixedSlot(t Term) Slot { return Slot{Fixed: &t} }

// VarSlot binds whatever matches at this position to name, subject to kind.
func VarSlot(name string, kind VarKind) Slot { return Slot{Var: name, Kind: kind} }

// TripleTemplate is one template position within a Pattern (spec §4.3).
type TripleTemplate struct {
	Subject   Slot
	Predicate Slot
	Object    Slot
}

// Pattern names a multi-triple recognition rule: a sequence of templates
// that, once all satisfied by some set of triples, fire Handler with the
// accumulated bindings (spec §4.3, §4.5).
type Pattern struct {
	Name      string
	Templates []TripleTemplate
	Handler   func(c *OntologyCollector, s *MatchState)
}

// MatchState accumulates bindings for one in-progress (or just-finished)
// attempt to satisfy a Pattern.
type MatchState struct {
	Bindings  map[string]Term
	Satisfied []bool
	Pattern   *Pattern
}

func newMatchState(p *Pattern) *MatchState {
	return &MatchState{
		Bindings:  map[string]Term{},
		Satisfied: make([]bool, len(p.Templates)),
		Pattern:   p,
	}
}

// Finished reports whether every template of the pattern has been
// satisfied.
func (s *MatchState) Finished() bool {
	for _, ok := range s.Satisfied {
		if !ok {
			return false
		}
	}
	return true
}

// Bound returns the term bound to a pattern variable, or the zero Term and
// false if it was never bound (e.g. the variable's template never
// participated, which cannot happen once Finished() is true).
func (s *MatchState) Bound(name string) (Term, bool) {
	t, ok := s.Bindings[name]
	return t, ok
}

func cloneBindings(b map[string]Term) map[string]Term {
	nb := make(map[string]Term, len(b)+1)
	for k, v := range b {
		nb[k] = v
	}
	return nb
}

// matchSlot tests term against slot under bindings, mutating bindings in
// place on success. A fixed slot requires exact equality. A variable slot
// requires the kind constraint to accept term, and either has no existing
// binding (in which case one is recorded) or an existing binding equal to
// term. The same value is also forbidden from appearing under a different
// variable already bound in this state (spec §4.3 step 1).
func matchSlot(slot Slot, term Term, bindings map[string]Term) bool {
	if slot.Fixed != nil {
		return slot.Fixed.Equal(term)
	}
	if !slot.Kind.accepts(term) {
		return false
	}
	if existing, ok := bindings[slot.Var]; ok {
		return existing.Equal(term)
	}
	for v, val := range bindings {
		if v != slot.Var && val.Equal(term) {
			return false
		}
	}
	bindings[slot.Var] = term
	return true
}

func matchTemplate(tmpl TripleTemplate, t Triple, bindings map[string]Term) (map[string]Term, bool) {
	nb := cloneBindings(bindings)
	if !matchSlot(tmpl.Subject, t.Subject, nb) {
		return nil, false
	}
	if !matchSlot(tmpl.Predicate, TermFromIRI(t.Predicate), nb) {
		return nil, false
	}
	if !matchSlot(tmpl.Object, t.Object, nb) {
		return nil, false
	}
	return nb, true
}

// Matcher drives any number of Patterns over a triple stream, maintaining
// per-pattern active MatchStates (spec §4.3). Triples are never consumed:
// every pattern sees every triple, and multiple patterns (or multiple
// in-progress states of the same pattern) may match the same triple.
type Matcher struct {
	patterns []*Pattern
	active   map[string][]*MatchState
}

func NewMatcher(patterns []*Pattern) *Matcher {
	m := &Matcher{patterns: patterns, active: make(map[string][]*MatchState, len(patterns))}
	for _, p := range patterns {
		m.active[p.Name] = nil
	}
	return m
}

// Feed advances every pattern's active states against one triple, firing
// handlers for any newly-finished state, then seeds a fresh state per
// pattern in case this triple starts a new match (spec §4.3 steps 1-3).
func (m *Matcher) Feed(t Triple, c *OntologyCollector) {
	for _, p := range m.patterns {
		var kept []*MatchState
		for _, st := range m.active[p.Name] {
			working := st.Bindings
			changed := false
			for i, tmpl := range p.Templates {
				if st.Satisfied[i] {
					continue
				}
				if nb, ok := matchTemplate(tmpl, t, working); ok {
					working = nb
					st.Satisfied[i] = true
					changed = true
				}
			}
			if changed {
				st.Bindings = working
			}
			if st.Finished() {
				p.Handler(c, st)
			} else {
				kept = append(kept, st)
			}
		}
		m.active[p.Name] = kept

		for i, tmpl := range p.Templates {
			ns := newMatchState(p)
			if nb, ok := matchTemplate(tmpl, t, ns.Bindings); ok {
				ns.Bindings = nb
				ns.Satisfied[i] = true
				if ns.Finished() {
					p.Handler(c, ns)
				} else {
					m.active[p.Name] = append(m.active[p.Name], ns)
				}
			}
		}
	}
}
