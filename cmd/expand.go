package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stetinam/rfdim/internal/rfdim"
)

// expandCmd decodes range strings into explicit residues.
var expandCmd = &cobra.Command{
	Use:   "expand [ranges]",
	Short: "Expand range strings into their explicit residues",
	Long: `Decode one or more '/'-joined range strings (as found in CONTIGS
or INPAINT_SEQ) and print every residue they cover, one per line.
Malformed or inverted ranges are rejected.`,
	Example: "  rfdim expand \"A5-7/A10-10\"",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runExpand,
}

func runExpand(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		spans, err := rfdim.ParseRanges(arg)
		if err != nil {
			return err
		}
		for _, key := range rfdim.ExpandSpans(spans) {
			fmt.Println(key)
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(expandCmd)
}
