package glycobase

import (
	"fmt"

	"github.com/Bribak/glycobase/internal/store"
)

// Engine owns the SQLite reference store and the in-memory snapshot the
// Analyzer scans. The snapshot is loaded once at construction and never
// mutated; call Reload after importing new data.
type Engine struct {
	store    *store.Store
	analyzer *Analyzer
	opts     []Option
}

// New creates an Engine backed by a SQLite database at dbPath, migrates the
// schema, and loads the reference table into memory.
func New(dbPath string, opts ...Option) (*Engine, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("glycobase: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("glycobase: migrate: %w", err)
	}

	e := &Engine{store: s, opts: opts}
	if err := e.Reload(); err != nil {
		s.Close()
		return nil, err
	}
	return e, nil
}

// Close releases the Engine's database resources.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Store returns the underlying Store for direct access.
func (e *Engine) Store() *Store {
	return e.store
}

// Analyzer returns the analysis view over the current snapshot.
func (e *Engine) Analyzer() *Analyzer {
	return e.analyzer
}

// Reload rebuilds the snapshot from the store, in table order. Analyzers
// handed out before the call keep reading the snapshot they were built on.
func (e *Engine) Reload() error {
	rows, err := e.store.AllGlycans()
	if err != nil {
		return fmt.Errorf("glycobase: load snapshot: %w", err)
	}
	records := make([]Record, len(rows))
	for i, g := range rows {
		records[i] = Record{Glycan: g.Glycan, Species: g.Species, Kingdom: g.Kingdom}
	}
	e.analyzer = NewAnalyzer(records, e.opts...)
	return nil
}
