package glycobase

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Bribak/glycobase/glycan"
)

// ErrInvalidMode is returned by CharacterizeContext for an unrecognized Mode.
var ErrInvalidMode = errors.New("invalid context mode")

// minPartnerCount is the tally a partner must strictly exceed to appear in a
// ContextProfile.
const minPartnerCount = 10

// Analyzer runs branch and context statistics over a fixed set of records.
// It holds no mutable state, so a single Analyzer may be shared across
// goroutines.
type Analyzer struct {
	records []Record
	extract func(string) []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBondExtractor replaces the default bond extraction routine. The
// function must return "sugarA*bond*sugarB" triples for a glycan string.
func WithBondExtractor(fn func(glycan string) []string) Option {
	return func(a *Analyzer) {
		a.extract = fn
	}
}

// NewAnalyzer builds an Analyzer over records. The slice is not copied;
// callers must not mutate it afterwards.
func NewAnalyzer(records []Record, opts ...Option) *Analyzer {
	a := &Analyzer{
		records: records,
		extract: glycan.ExtractBonds,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// glycans returns the structure strings of records passing f, in table order.
func (a *Analyzer) glycans(f Filter) []string {
	var out []string
	for _, rec := range a.records {
		if f.Value != TaxaAll {
			field := rec.Species
			if f.Rank == RankKingdom {
				field = rec.Kingdom
			}
			if !strings.Contains(field, f.Value) {
				continue
			}
		}
		out = append(out, rec.Glycan)
	}
	return out
}

// MainVsSide counts occurrences of glycoletter on the main chain versus
// inside a bracketed side branch, summed across all records passing f.
//
// glycoletter is compiled as a regular expression; callers wanting literal
// matching of symbols containing metacharacters (such as parenthesized
// bonds) must escape them with regexp.QuoteMeta first. An occurrence is a
// side-branch hit when the text between it and the previous occurrence start
// (or the string start) opens a bracket without closing one. Bracket balance
// of the input is a precondition, not validated here.
func (a *Analyzer) MainVsSide(glycoletter string, f Filter) (main, side int, err error) {
	re, err := regexp.Compile(glycoletter)
	if err != nil {
		return 0, 0, fmt.Errorf("main vs side: compile %q: %w", glycoletter, err)
	}

	for _, g := range a.glycans(f) {
		init := 0
		for _, m := range re.FindAllStringIndex(g, -1) {
			between := g[init:m[0]]
			if strings.Contains(between, "[") && !strings.Contains(between, "]") {
				side++
			} else {
				main++
			}
			// The cursor advances to the match start, not past it, so the
			// matched text itself is rescanned in the next segment.
			init = m[0]
		}
	}
	return main, side, nil
}

// CharacterizeContext tallies the partner symbols co-occurring with
// glycoletter in bond triples across all records passing f. The triple field
// matched and the field tallied depend on mode; matching is by exact
// equality, not substring. Partners are sorted by descending count, ties in
// order of first appearance, and only counts strictly greater than
// minPartnerCount are kept.
func (a *Analyzer) CharacterizeContext(glycoletter string, mode Mode, f Filter) (*ContextProfile, error) {
	var keyField, partnerField int
	var label string
	switch mode {
	case ModeBond:
		keyField, partnerField = 1, 0
		label = fmt.Sprintf("Observed monosaccharides making bond %s", glycoletter)
	case ModeSugar:
		keyField, partnerField = 0, 2
		label = fmt.Sprintf("Observed monosaccharides paired with %s", glycoletter)
	case ModeSugarBond:
		keyField, partnerField = 0, 1
		label = fmt.Sprintf("Observed bonds made by %s", glycoletter)
	default:
		return nil, fmt.Errorf("characterize context: %w: %q", ErrInvalidMode, mode)
	}

	// Ordered tally: counts per partner plus first-appearance order, so the
	// stable sort below breaks frequency ties deterministically.
	counts := make(map[string]int)
	var order []string
	for _, g := range a.glycans(f) {
		for _, triple := range a.extract(g) {
			fields := strings.Split(triple, "*")
			if len(fields) != 3 || fields[keyField] != glycoletter {
				continue
			}
			partner := fields[partnerField]
			if _, seen := counts[partner]; !seen {
				order = append(order, partner)
			}
			counts[partner]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	profile := &ContextProfile{
		Label: fmt.Sprintf("%s (%s = %s)", label, f.Rank, f.Value),
	}
	for _, partner := range order {
		if counts[partner] > minPartnerCount {
			profile.Partners = append(profile.Partners, partner)
			profile.Counts = append(profile.Counts, counts[partner])
		}
	}
	return profile, nil
}
