package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ImportCSV loads glycan records from CSV data. The first row must be a
// header naming a "glycan" column; "species" and "kingdom" columns are
// optional and matched case-insensitively in any order. Extra columns are
// ignored. Rows whose glycan field is empty are skipped. Returns the number
// of rows imported.
//
// The whole import runs in one transaction so a malformed row leaves the
// table untouched.
func (s *Store) ImportCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows shorter than the header are tolerated

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("import csv: read header: %w", err)
	}

	glycanCol, speciesCol, kingdomCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "glycan":
			glycanCol = i
		case "species":
			speciesCol = i
		case "kingdom":
			kingdomCol = i
		}
	}
	if glycanCol < 0 {
		return 0, fmt.Errorf("import csv: header has no glycan column")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import csv: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO glycans (glycan, species, kingdom) VALUES (?, ?, ?)
		 ON CONFLICT(glycan) DO UPDATE SET species = excluded.species, kingdom = excluded.kingdom`,
	)
	if err != nil {
		return 0, fmt.Errorf("import csv: prepare: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("import csv: read row: %w", err)
		}
		if glycanCol >= len(row) || strings.TrimSpace(row[glycanCol]) == "" {
			continue
		}
		if _, err := stmt.Exec(
			strings.TrimSpace(row[glycanCol]),
			fieldAt(row, speciesCol),
			fieldAt(row, kingdomCol),
		); err != nil {
			return 0, fmt.Errorf("import csv: insert row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import csv: commit: %w", err)
	}
	return count, nil
}

// fieldAt returns row[col], or "" when the column is absent or the row is
// too short.
func fieldAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
