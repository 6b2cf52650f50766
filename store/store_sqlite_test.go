package store

import (
	"database/sql"
	"testing"
)

func TestOntologyStoreSQLite(t *testing.T) {
	runStoreSuite(t, func() (*OntologyStore, error) {
		return NewOntologyStoreSQLite(":memory:")
	})
}

func TestNewOntologyStoreSQLite(t *testing.T) {
	s, err := NewOntologyStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if s.db == nil {
		t.Fatal("database connection is nil")
	}
	if !s.ownsDB {
		t.Error("expected store to own the database connection")
	}
}

func TestOntologyStoreSQLiteFromDB(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := &OntologyStore{db: db, ownsDB: false, dialect: sqliteDialect{}}
	if err := s.initSchemaAndStatements(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if s.ownsDB {
		t.Error("expected store to NOT own the database connection")
	}

	want := sampleOntology(t)
	if err := s.Put("k", want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok, err := s.Get("k"); err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}

	// Closing the store must not close a connection it doesn't own.
	s.Close()
	if err := db.Ping(); err != nil {
		t.Errorf("database should still be usable after store.Close(): %v", err)
	}
}

func TestHashSourceIsStableAndDistinguishesInputs(t *testing.T) {
	a := HashSource("ex:Dog a owl:Class .")
	b := HashSource("ex:Dog a owl:Class .")
	c := HashSource("ex:Cat a owl:Class .")
	if a != b {
		t.Errorf("HashSource is not stable for identical input: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("HashSource collided for distinct input")
	}
}
