package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stetinam/rfdim/internal/rfdim"
)

// packCmd is the inverse of expand: residues in, range string out.
var packCmd = &cobra.Command{
	Use:   "pack [residues]",
	Short: "Compress residues into a range string",
	Long: `Parse residue selection terms (bare residues like A5 or ranges
like A5-12) and print the minimal '/'-joined range string covering them.
The inverse of expand.`,
	Example: "  rfdim pack A5 A6 A7 A10",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	keys, err := rfdim.ParseSelection(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(rfdim.FormatRanges(rfdim.EncodeSpans(keys)))
	return nil
}

func init() {
	RootCmd.AddCommand(packCmd)
}
