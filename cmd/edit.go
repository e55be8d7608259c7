package cmd

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stetinam/rfdim/config"
	"github.com/stetinam/rfdim/internal/rfdim"
)

var (
	editFromScript string
	editFromSave   string
	editSession    string
)

// editCmd opens the interactive editing session on a structure.
var editCmd = &cobra.Command{
	Use:   "edit [structure.pdb]",
	Short: "Interactively mark residues of a structure as frozen or flexible",
	Long: `Load a PDB structure and walk through an editing session: select
residues by range expressions (e.g. A5-12,B3) and assign each selection a
freeze state. BT freezes backbone and amino-acid type, B freezes the
backbone only, N releases the residues. Saving writes the CONTIGS and
INPAINT_SEQ strings to a text file for an RFdiffusion run.

Initial states can come from a batch script or a previous save file via
--from-script/--from-save, or from a session snapshot via --session. With
--session the snapshot is also rewritten when the session ends.`,
	Example:               "  rfdim edit design1.pdb --from-script run.sbatch --out design2",
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run:                   runEdit,
}

// runEdit loads the structure, preseeds states and drives the session on
// the terminal's stdin/stdout.
func runEdit(cmd *cobra.Command, args []string) {
	cfg := config.New()

	st, states := loadStructure(args[0], cfg)
	preseed(states)

	session := rfdim.NewSession(st, states, os.Stdin, os.Stdout)
	if out := viper.GetString("out"); out != "" {
		session.SavePath = out
	}
	if err := session.Run(); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}

	if editSession != "" {
		if err := rfdim.WriteSnapshot(editSession, rfdim.NewSnapshot(st, states)); err != nil {
			log.Fatal().Err(err).Msg("writing session snapshot")
		}
	}
}

// loadStructure reads a PDB file, applies the chain whitelist and builds
// the all-flexible state map over its residues.
func loadStructure(path string, cfg config.Config) (*rfdim.Structure, *rfdim.StateMap) {
	st, err := rfdim.ReadStructure(path)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure")
	}

	st.Restrict(cfg.Chains)
	if len(st.Chains) == 0 {
		log.Fatal().Strs("chains", cfg.Chains).Msg("no chains left after whitelist")
	}
	return st, rfdim.NewStateMap(st.Residues())
}

// preseed applies initial states from a snapshot, batch script or save
// file, when one was requested.
func preseed(states *rfdim.StateMap) {
	switch {
	case editSession != "":
		snap, err := rfdim.ReadSnapshot(editSession)
		if errors.Is(err, os.ErrNotExist) {
			// a fresh snapshot path: start empty, write it on exit
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("reading session snapshot")
		}
		applySettings(states, snap.Settings())
	case editFromScript != "":
		loadInto(states, editFromScript)
	case editFromSave != "":
		loadInto(states, editFromSave)
	}
}

// loadInto extracts settings from a script or save file into the map.
func loadInto(states *rfdim.StateMap, path string) {
	settings, _, err := rfdim.LoadSettings(path)
	if err != nil {
		log.Fatal().Err(err).Msg("loading settings")
	}
	applySettings(states, settings)
}

func applySettings(states *rfdim.StateMap, s rfdim.Settings) {
	if err := states.Apply(s.Contigs, s.InpaintSeq); err != nil {
		log.Fatal().Err(err).Msg("applying settings")
	}
}

// set flags
func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editFromScript, "from-script", "", "batch script to read initial CONTIGS/INPAINT_SEQ from")
	editCmd.Flags().StringVar(&editFromSave, "from-save", "", "previous save file to read initial settings from")
	editCmd.Flags().StringVar(&editSession, "session", "", "TOML snapshot to resume from and rewrite on exit")
	editCmd.Flags().StringP("out", "o", "", "default filename for saving settings")

	viper.BindPFlag("out", editCmd.Flags().Lookup("out"))
}
