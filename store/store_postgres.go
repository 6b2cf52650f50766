package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// NewOntologyStorePostgreSQL opens a PostgreSQL-backed ontology cache,
// accepting a standard PostgreSQL connection string.
func NewOntologyStorePostgreSQL(connStr string) (*OntologyStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(4)

	s := &OntologyStore{
		db:      db,
		ownsDB:  true,
		dialect: postgresDialect{},
	}
	if err := s.initSchemaAndStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema for PostgreSQL: %w", err)
	}
	return s, nil
}

// NewOntologyStorePostgreSQLFromDB builds a store from an existing
// connection; the caller retains ownership and must close it separately.
func NewOntologyStorePostgreSQLFromDB(db *sql.DB) (*OntologyStore, error) {
	s := &OntologyStore{
		db:      db,
		ownsDB:  false,
		dialect: postgresDialect{},
	}
	if err := s.initSchemaAndStatements(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema for PostgreSQL: %w", err)
	}
	return s, nil
}
