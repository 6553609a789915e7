// Package glycobase computes occurrence statistics over a reference table of
// annotated glycan structures: IUPAC-condensed strings labeled with the
// kingdom and species they were observed in.
//
// # Pipeline
//
// The reference table lives in SQLite and is loaded once into an immutable
// in-memory snapshot. Every analysis call filters the snapshot by taxonomy
// and scans the matching glycan strings; nothing is mutated, so concurrent
// analysis calls are safe.
//
// # Usage
//
// Create an Engine over an imported database and ask its Analyzer:
//
//	e, err := glycobase.New("glycans.db")
//	if err != nil { ... }
//	defer e.Close()
//
//	a := e.Analyzer()
//	main, side, err := a.MainVsSide("GlcNAc", glycobase.All())
//	profile, err := a.CharacterizeContext("Gal", glycobase.ModeSugarBond, glycobase.All())
//
// Library users without a database can build an [Analyzer] directly from
// records with [NewAnalyzer].
//
// # Analysis API
//
// [Analyzer.MainVsSide] counts how often a glycoletter (monosaccharide or
// bond symbol) sits on the main chain versus inside a bracketed side branch.
// [Analyzer.CharacterizeContext] reports the partner symbols most frequently
// co-occurring with a glycoletter across the filtered population, under one
// of three modes: [ModeBond], [ModeSugar], or [ModeSugarBond].
package glycobase
