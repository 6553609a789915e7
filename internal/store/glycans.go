package store

import (
	"fmt"
)

// Glycan is one row of the reference table: an IUPAC-condensed structure
// string plus the taxonomy it was observed in. The kingdom and species
// fields may each carry several labels in one string.
type Glycan struct {
	ID      int64
	Glycan  string
	Species string
	Kingdom string
}

// InsertGlycan inserts a glycan record, updating the taxonomy fields if the
// structure is already present. Returns the row ID.
func (s *Store) InsertGlycan(g *Glycan) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO glycans (glycan, species, kingdom) VALUES (?, ?, ?)
		 ON CONFLICT(glycan) DO UPDATE SET species = excluded.species, kingdom = excluded.kingdom`,
		g.Glycan, g.Species, g.Kingdom,
	)
	if err != nil {
		return 0, fmt.Errorf("insert glycan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert glycan: last id: %w", err)
	}
	g.ID = id
	return id, nil
}

// AllGlycans returns every glycan record in table order.
func (s *Store) AllGlycans() ([]*Glycan, error) {
	rows, err := s.db.Query("SELECT id, glycan, species, kingdom FROM glycans ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("all glycans: %w", err)
	}
	defer rows.Close()

	var glycans []*Glycan
	for rows.Next() {
		g := &Glycan{}
		if err := rows.Scan(&g.ID, &g.Glycan, &g.Species, &g.Kingdom); err != nil {
			return nil, fmt.Errorf("all glycans: scan: %w", err)
		}
		glycans = append(glycans, g)
	}
	return glycans, rows.Err()
}

// CountGlycans returns the number of glycan records.
func (s *Store) CountGlycans() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM glycans").Scan(&n); err != nil {
		return 0, fmt.Errorf("count glycans: %w", err)
	}
	return n, nil
}
