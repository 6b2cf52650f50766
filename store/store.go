// Package store provides a content-addressed cache for parsed ontologies,
// backed by SQLite or PostgreSQL. Parsing identical Turtle source text is
// memoized: the cache key is a hash of the source text, the cached value is
// the JSON-marshaled Ontology.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/go-json-experiment/json"

	"github.com/field33/owlish-sub000"
)

// OntologyStore caches parsed ontologies keyed by a hash of their Turtle
// source text.
type OntologyStore struct {
	db      *sql.DB
	ownsDB  bool
	dialect dialect

	upsertStmt *sql.Stmt
	selectStmt *sql.Stmt
}

// HashSource computes the cache key for a piece of Turtle source text.
func HashSource(turtle string) string {
	sum := sha256.Sum256([]byte(turtle))
	return hex.EncodeToString(sum[:])
}

// Get looks up a previously cached ontology by source hash. The second
// return value is false on a cache miss.
func (s *OntologyStore) Get(sourceHash string) (*owl.Ontology, bool, error) {
	var data []byte
	err := s.selectStmt.QueryRow(sourceHash).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ontology store failed to look up %q: %w", sourceHash, err)
	}

	var o owl.Ontology
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, false, fmt.Errorf("ontology store failed to unmarshal cached entry: %w", err)
	}
	return &o, true, nil
}

// Put caches an ontology under the given source hash, replacing any entry
// already stored under that key.
func (s *OntologyStore) Put(sourceHash string, o *owl.Ontology) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("ontology store failed to marshal ontology: %w", err)
	}

	iri := ""
	if i, ok := o.IRI(); ok {
		iri = i.String()
	}

	if _, err := s.upsertStmt.Exec(sourceHash, iri, data); err != nil {
		return fmt.Errorf("ontology store failed to execute upsert: %w", err)
	}
	return nil
}

// ParseCached parses turtle via parse, consulting the store first and
// populating it on a miss.
func (s *OntologyStore) ParseCached(turtle string, options owl.ParserOptions, parse func(string, owl.ParserOptions) (*owl.Ontology, error)) (*owl.Ontology, error) {
	key := HashSource(turtle)
	if cached, ok, err := s.Get(key); err != nil {
		log.Printf("OntologyStore lookup failed, reparsing: %v", err)
	} else if ok {
		return cached, nil
	}

	o, err := parse(turtle, options)
	if err != nil {
		return nil, err
	}
	if err := s.Put(key, o); err != nil {
		log.Printf("OntologyStore failed to cache parsed ontology: %v", err)
	}
	return o, nil
}

func (s *OntologyStore) initSchemaAndStatements() error {
	if _, err := s.db.Exec(s.dialect.createTableSQL()); err != nil {
		return fmt.Errorf("failed to create ontologies table: %w", err)
	}
	if _, err := s.db.Exec(s.dialect.createIndexSQL()); err != nil {
		return fmt.Errorf("failed to create iri index: %w", err)
	}

	upsertStmt, err := s.db.Prepare(s.dialect.upsertSQL())
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	s.upsertStmt = upsertStmt

	selectStmt, err := s.db.Prepare(s.dialect.selectSQL())
	if err != nil {
		return fmt.Errorf("failed to prepare select statement: %w", err)
	}
	s.selectStmt = selectStmt

	return nil
}

// Close releases prepared statements and, if this store opened the
// connection itself, closes it too.
func (s *OntologyStore) Close() error {
	if s.upsertStmt != nil {
		s.upsertStmt.Close()
	}
	if s.selectStmt != nil {
		s.selectStmt.Close()
	}
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
