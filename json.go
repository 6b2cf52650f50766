package owl

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo implements json.MarshalerTo for IRI, writing it as a bare
// JSON string. Every typed IRI wrapper (ClassIRI, ObjectPropertyIRI, ...)
// forwards here, so all of them round-trip as the same plain string on the
// wire (spec §6.4, the cache value store.Put writes).
func (i IRI) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteToken(jsontext.String(i.value))
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom for IRI.
func (i *IRI) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("failed to read IRI token: %w", err)
	}
	if tok.Kind() != '"' {
		return fmt.Errorf("expected string for IRI, got %c", tok.Kind())
	}
	if tok.String() == "" {
		// the zero IRI of an unset typed field, as MarshalJSONTo writes it
		*i = IRI{}
		return nil
	}
	parsed, err := NewIRI(tok.String())
	if err != nil {
		return fmt.Errorf("invalid IRI %q: %w", tok.String(), err)
	}
	*i = parsed
	return nil
}

func (c ClassIRI) MarshalJSON() ([]byte, error)     { return json.Marshal(c.iri) }
func (c *ClassIRI) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &c.iri) }

func (c ObjectPropertyIRI) MarshalJSON() ([]byte, error)     { return json.Marshal(c.iri) }
func (c *ObjectPropertyIRI) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &c.iri) }

func (c DataPropertyIRI) MarshalJSON() ([]byte, error)     { return json.Marshal(c.iri) }
func (c *DataPropertyIRI) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &c.iri) }

func (c AnnotationPropertyIRI) MarshalJSON() ([]byte, error) { return json.Marshal(c.iri) }
func (c *AnnotationPropertyIRI) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.iri)
}

func (c DatatypeIRI) MarshalJSON() ([]byte, error)     { return json.Marshal(c.iri) }
func (c *DatatypeIRI) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &c.iri) }

func (c IndividualIRI) MarshalJSON() ([]byte, error)     { return json.Marshal(c.iri) }
func (c *IndividualIRI) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &c.iri) }

// ontologyWire is the on-disk shape of an Ontology: a flat object exposing
// what Ontology's own accessors expose. It exists only as the transport for
// MarshalJSONTo/UnmarshalJSONFrom below, since Ontology's fields are
// unexported and therefore invisible to reflection-based marshaling.
type ontologyWire struct {
	IRI          *IRI              `json:"iri,omitempty"`
	Prefixes     map[string]string `json:"prefixes,omitempty"`
	Declarations []Declaration     `json:"declarations,omitempty"`
	Axioms       []Axiom           `json:"axioms,omitempty"`
}

// MarshalJSONTo implements json.MarshalerTo for Ontology. store.Put uses
// this to produce the cache value for a parsed ontology.
func (o *Ontology) MarshalJSONTo(enc *jsontext.Encoder) error {
	wire := ontologyWire{
		Prefixes:     o.prefixes,
		Declarations: o.declarations,
		Axioms:       o.axioms,
	}
	if o.hasIRI {
		wire.IRI = &o.iri
	}
	return json.MarshalEncode(enc, wire)
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom for Ontology. store.Get
// uses this to reconstitute a cached ontology.
func (o *Ontology) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	var wire ontologyWire
	if err := json.UnmarshalDecode(dec, &wire); err != nil {
		return fmt.Errorf("failed to unmarshal ontology: %w", err)
	}
	o.prefixes = wire.Prefixes
	if o.prefixes == nil {
		o.prefixes = map[string]string{}
	}
	o.declarations = wire.Declarations
	o.axioms = wire.Axioms
	if wire.IRI != nil {
		o.iri = *wire.IRI
		o.hasIRI = true
	}
	return nil
}
