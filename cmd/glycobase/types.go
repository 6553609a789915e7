package main

// CLIResult is the top-level JSON envelope for all stats commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIBranchFrequency is the JSON shape of a main-vs-side count.
type CLIBranchFrequency struct {
	Glycoletter string `json:"glycoletter"`
	Main        int    `json:"main"`
	Side        int    `json:"side"`
	Total       int    `json:"total"`
}

// CLIPartner is one partner symbol with its tally.
type CLIPartner struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// CLIContextProfile is the JSON shape of a glycoletter microenvironment.
type CLIContextProfile struct {
	Label    string       `json:"label"`
	Partners []CLIPartner `json:"partners"`
}
