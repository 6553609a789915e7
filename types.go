package glycobase

import "github.com/Bribak/glycobase/internal/store"

// Public type aliases for internal store types used in the Engine API.
// These are Go type aliases (=) — identical to the internal types at compile
// time, so external consumers can name them without importing internal/store.

type Store = store.Store
type Glycan = store.Glycan

// Record is one glycan of the in-memory snapshot the Analyzer scans.
type Record struct {
	Glycan  string // IUPAC-condensed structure string
	Species string // species labels, possibly several in one string
	Kingdom string // kingdom labels, possibly several in one string
}

// Taxonomy ranks accepted by Filter. Any rank other than RankKingdom is
// matched against the species field.
const (
	RankKingdom = "Kingdom"
	RankSpecies = "Species"
)

// TaxaAll is the sentinel Filter value selecting every record.
const TaxaAll = "All"

// Filter restricts analysis to records whose taxonomy field contains Value
// as a case-sensitive substring. A Value of TaxaAll matches everything.
type Filter struct {
	Rank  string
	Value string
}

// All returns the unrestricted filter.
func All() Filter {
	return Filter{Rank: RankKingdom, Value: TaxaAll}
}

// Mode selects which field of a bond triple is matched against the query
// glycoletter, and which field is tallied as its partner.
type Mode string

const (
	// ModeBond matches the bond field and tallies the source sugar:
	// which monosaccharides make this bond.
	ModeBond Mode = "bond"
	// ModeSugar matches the source sugar and tallies the target sugar:
	// which monosaccharides this sugar pairs with.
	ModeSugar Mode = "sugar"
	// ModeSugarBond matches the source sugar and tallies the bond:
	// which bonds this sugar makes.
	ModeSugarBond Mode = "sugarbond"
)

// ContextProfile is the microenvironment of a glycoletter: partner symbols
// and their frequencies, aligned by index, sorted by descending count.
type ContextProfile struct {
	Label    string
	Partners []string
	Counts   []int
}
