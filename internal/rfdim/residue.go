// Package rfdim holds the residue annotation model behind the rfdim
// commands: a per-residue freeze-state map over a loaded protein
// structure and the range codec that turns it into the CONTIGS and
// INPAINT_SEQ strings RFdiffusion consumes.
package rfdim

import (
	"fmt"
	"sort"
	"strings"
)

// ResidueKey identifies one residue in a loaded structure by its chain
// identifier and residue sequence number.
type ResidueKey struct {
	Chain string
	Num   int
}

// String returns the selection form of the key, e.g. "A52".
func (k ResidueKey) String() string {
	return fmt.Sprintf("%s%d", k.Chain, k.Num)
}

// less orders keys by chain identifier, then residue number. This is the
// order chains and residues appear in exported range strings.
func (k ResidueKey) less(o ResidueKey) bool {
	if k.Chain != o.Chain {
		return k.Chain < o.Chain
	}
	return k.Num < o.Num
}

// sortKeys sorts residue keys in place into export order.
func sortKeys(keys []ResidueKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
}

// FreezeState is the per-residue annotation controlling how much of the
// residue is preserved by the downstream structure-generation run.
type FreezeState int

const (
	// NotFrozen residues are free: RFdiffusion may rebuild both their
	// backbone and their sequence. Every residue starts out NotFrozen.
	NotFrozen FreezeState = iota

	// BackboneFrozen residues keep their backbone coordinates but not
	// their amino-acid identity. They appear in both CONTIGS and
	// INPAINT_SEQ.
	BackboneFrozen

	// FullyFrozen residues keep backbone and amino-acid identity. They
	// appear in CONTIGS only.
	FullyFrozen
)

// freeze-state tokens as typed during an editing session
const (
	tokenFully    = "bt"
	tokenBackbone = "b"
	tokenFlexible = "n"
)

// String returns the session token for the state ("BT", "B" or "N").
func (s FreezeState) String() string {
	switch s {
	case FullyFrozen:
		return "BT"
	case BackboneFrozen:
		return "B"
	}
	return "N"
}

// Description is the long form shown in session prompts and summaries.
func (s FreezeState) Description() string {
	switch s {
	case FullyFrozen:
		return "backbone + type frozen"
	case BackboneFrozen:
		return "backbone only frozen"
	}
	return "not frozen"
}

// Frozen reports whether the state preserves the residue's backbone,
// ie whether the residue belongs in CONTIGS.
func (s FreezeState) Frozen() bool {
	return s == FullyFrozen || s == BackboneFrozen
}

// ParseFreezeState maps a session token ("bt", "b", "n", any case) to its
// FreezeState. An unrecognized token is an error.
func ParseFreezeState(token string) (FreezeState, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case tokenFully:
		return FullyFrozen, nil
	case tokenBackbone:
		return BackboneFrozen, nil
	case tokenFlexible:
		return NotFrozen, nil
	}
	return NotFrozen, fmt.Errorf("unknown freeze state %q: want BT, B or N", token)
}
