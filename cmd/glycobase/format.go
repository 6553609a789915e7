package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// outputResult writes result to stdout in the format selected by --format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case CLIBranchFrequency:
		formatBranchFrequencyText(w, v)
	case CLIContextProfile:
		formatContextProfileText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// formatBranchFrequencyText prints main/side counts as aligned columns.
func formatBranchFrequencyText(w io.Writer, freq CLIBranchFrequency) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GLYCOLETTER\tMAIN\tSIDE\tTOTAL")
	fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", freq.Glycoletter, freq.Main, freq.Side, freq.Total)
	tw.Flush()
}

// formatContextProfileText prints the label followed by partner counts.
func formatContextProfileText(w io.Writer, profile CLIContextProfile) {
	fmt.Fprintln(w, profile.Label)
	if len(profile.Partners) == 0 {
		fmt.Fprintln(w, "(no partners above threshold)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PARTNER\tCOUNT")
	for _, p := range profile.Partners {
		fmt.Fprintf(tw, "%s\t%d\n", p.Symbol, p.Count)
	}
	tw.Flush()
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
