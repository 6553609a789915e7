package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Bribak/glycobase"
	"github.com/spf13/cobra"
)

var (
	flagKingdom string
	flagSpecies string
	flagMode    string
	flagLiteral bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Query the glycan reference table",
	Long:  "Run branch and context statistics against an imported reference table.",
}

func init() {
	statsCmd.PersistentFlags().StringVar(&flagKingdom, "kingdom", "", "restrict to records whose kingdom contains this substring")
	statsCmd.PersistentFlags().StringVar(&flagSpecies, "species", "", "restrict to records whose species contains this substring")

	branchesCmd.Flags().BoolVar(&flagLiteral, "literal", false, "match the glycoletter literally instead of as a regular expression")
	contextCmd.Flags().StringVar(&flagMode, "mode", "bond", "context mode: bond|sugar|sugarbond")

	statsCmd.AddCommand(branchesCmd)
	statsCmd.AddCommand(contextCmd)
}

var branchesCmd = &cobra.Command{
	Use:   "branches <glycoletter>",
	Short: "Count main-chain versus side-branch occurrences of a glycoletter",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranches,
}

func runBranches(cmd *cobra.Command, args []string) error {
	filter, err := taxonomyFilter()
	if err != nil {
		return err
	}

	glycoletter := args[0]
	if flagLiteral {
		glycoletter = regexp.QuoteMeta(glycoletter)
	}

	a, err := openAnalyzer()
	if err != nil {
		return err
	}

	main, side, err := a.MainVsSide(glycoletter, filter)
	if err != nil {
		return err
	}

	return outputResult(CLIResult{
		Command: "branches",
		Results: CLIBranchFrequency{
			Glycoletter: args[0],
			Main:        main,
			Side:        side,
			Total:       main + side,
		},
	})
}

var contextCmd = &cobra.Command{
	Use:   "context <glycoletter>",
	Short: "Report the partner symbols most frequently co-occurring with a glycoletter",
	Args:  cobra.ExactArgs(1),
	RunE:  runContext,
}

func runContext(cmd *cobra.Command, args []string) error {
	filter, err := taxonomyFilter()
	if err != nil {
		return err
	}

	a, err := openAnalyzer()
	if err != nil {
		return err
	}

	profile, err := a.CharacterizeContext(args[0], glycobase.Mode(flagMode), filter)
	if err != nil {
		return err
	}

	result := CLIContextProfile{Label: profile.Label, Partners: []CLIPartner{}}
	for i, partner := range profile.Partners {
		result.Partners = append(result.Partners, CLIPartner{
			Symbol: partner,
			Count:  profile.Counts[i],
		})
	}
	return outputResult(CLIResult{Command: "context", Results: result})
}

// taxonomyFilter builds the analysis filter from the --kingdom and --species
// flags. With neither flag the full table is analyzed.
func taxonomyFilter() (glycobase.Filter, error) {
	if flagKingdom != "" && flagSpecies != "" {
		return glycobase.Filter{}, fmt.Errorf("--kingdom and --species are mutually exclusive")
	}
	switch {
	case flagKingdom != "":
		return glycobase.Filter{Rank: glycobase.RankKingdom, Value: flagKingdom}, nil
	case flagSpecies != "":
		return glycobase.Filter{Rank: glycobase.RankSpecies, Value: flagSpecies}, nil
	default:
		return glycobase.All(), nil
	}
}

// openAnalyzer opens the engine over the --db database and returns its
// analysis view. The database must already exist.
func openAnalyzer() (*glycobase.Analyzer, error) {
	dbPath := resolveDBPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found: %s (run 'glycobase import' first)", dbPath)
	}
	e, err := glycobase.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// The snapshot is in memory; the connection is not needed past this point.
	defer e.Close()
	return e.Analyzer(), nil
}
