package main

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Bribak/glycobase/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagFormat string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "glycobase",
	Short:         "Branch and context statistics over an annotated glycan table",
	Long:          "Glycobase imports annotated glycan structures into a SQLite reference table and reports main-chain versus side-branch frequencies and glycoletter microenvironments.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfig(cmd); err != nil {
			return err
		}
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default: glycans.db)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .glycobase.yaml if present)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
}

var flagForce bool

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import glycan records into the reference table",
	Long:  "Loads a CSV with glycan, species, and kingdom columns into the SQLite reference table. Re-running on an unchanged file is a no-op unless --force is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagForce, "force", false, "re-import even if the source file is unchanged")
}

func runImport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(content))

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if !flagForce {
		stored, err := s.GetMetadata("source_hash")
		if err != nil {
			return fmt.Errorf("checking source hash: %w", err)
		}
		if stored == hash {
			fmt.Fprintf(os.Stderr, "Unchanged: %s\n", args[0])
			return nil
		}
	}

	n, err := s.ImportCSV(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	if err := s.SetMetadata("source_hash", hash); err != nil {
		return fmt.Errorf("storing source hash: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d glycans from %s in %s\n",
		n, args[0], time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "Database: %s\n", resolveDBPath())
	return nil
}

// openStore opens the store at the --db path, creating the database file if
// it does not exist yet.
func openStore() (*store.Store, error) {
	dbPath := resolveDBPath()
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return s, nil
}

// resolveDBPath returns the database path from the --db flag or the default.
func resolveDBPath() string {
	if flagDB != "" {
		return flagDB
	}
	return filepath.Join(".", "glycans.db")
}
