package store

import (
	"database/sql"
	"fmt"
	"sort"
	"sync/atomic"

	_ "modernc.org/sqlite" // SQLite driver
)

// Counter for generating unique in-memory database names.
var inMemoryDBCounter atomic.Uint64

// config holds configuration options for a SQLite-backed OntologyStore.
type config struct {
	pragmas map[string]string
}

// StoreOption configures an OntologyStore at construction time.
type StoreOption func(*config)

// WithPragma sets a specific SQLite PRAGMA statement, overriding any default
// value for the given key. For example: WithPragma("synchronous", "NORMAL").
func WithPragma(key, value string) StoreOption {
	return func(c *config) {
		if c.pragmas == nil {
			c.pragmas = make(map[string]string)
		}
		c.pragmas[key] = value
	}
}

func defaultConfig() *config {
	return &config{
		pragmas: map[string]string{
			"journal_mode": "WAL",
			"synchronous":  "NORMAL",
			"cache_size":   "-64000",
			"temp_store":   "MEMORY",
			"busy_timeout": "5000",
			"foreign_keys": "OFF",
		},
	}
}

// NewOntologyStoreSQLite opens (creating if necessary) a SQLite-backed
// ontology cache. Pass ":memory:" to get a private in-memory database.
func NewOntologyStoreSQLite(dbPath string, opts ...StoreOption) (*OntologyStore, error) {
	if dbPath == ":memory:" {
		id := inMemoryDBCounter.Add(1)
		dbPath = fmt.Sprintf("file:owlishstore_%d?mode=memory&cache=shared", id)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(4)

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	keys := make([]string, 0, len(cfg.pragmas))
	for k := range cfg.pragmas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := cfg.pragmas[key]
		pragmaSQL := fmt.Sprintf("PRAGMA %s=%s", key, value)
		if _, err := db.Exec(pragmaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragmaSQL, err)
		}
	}

	s := &OntologyStore{
		db:      db,
		ownsDB:  true,
		dialect: sqliteDialect{},
	}
	if err := s.initSchemaAndStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}
