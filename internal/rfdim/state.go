package rfdim

import (
	"github.com/rs/zerolog/log"
)

// StateMap tracks one FreezeState per residue of a loaded structure.
// Residues default to NotFrozen and are mutated in place while editing;
// exporting reads the map without changing it.
type StateMap struct {
	states map[ResidueKey]FreezeState
}

// NewStateMap builds a state map over the given residues, all NotFrozen.
func NewStateMap(keys []ResidueKey) *StateMap {
	states := make(map[ResidueKey]FreezeState, len(keys))
	for _, k := range keys {
		states[k] = NotFrozen
	}
	return &StateMap{states: states}
}

// Len is the number of residues tracked.
func (m *StateMap) Len() int {
	return len(m.states)
}

// State returns the freeze state of a residue, or false when the residue
// is not part of the loaded structure.
func (m *StateMap) State(key ResidueKey) (FreezeState, bool) {
	s, ok := m.states[key]
	return s, ok
}

// Set overwrites the state of exactly the given residues, leaving every
// other residue unchanged. Keys outside the loaded structure are skipped.
// Returns how many residues were updated.
func (m *StateMap) Set(keys []ResidueKey, state FreezeState) int {
	updated := 0
	for _, k := range keys {
		if _, ok := m.states[k]; !ok {
			continue
		}
		m.states[k] = state
		updated++
	}

	log.Debug().
		Int("selected", len(keys)).
		Int("updated", updated).
		Str("state", state.String()).
		Msg("set residue states")
	return updated
}

// Reset returns every residue to NotFrozen.
func (m *StateMap) Reset() {
	for k := range m.states {
		m.states[k] = NotFrozen
	}
}

// Counts is the per-state residue tally shown in session summaries.
type Counts struct {
	Fully    int
	Backbone int
	Flexible int
}

// Counts tallies residues by freeze state.
func (m *StateMap) Counts() Counts {
	var c Counts
	for _, s := range m.states {
		switch s {
		case FullyFrozen:
			c.Fully++
		case BackboneFrozen:
			c.Backbone++
		default:
			c.Flexible++
		}
	}
	return c
}

// keysIn collects the residues currently in any of the given states.
func (m *StateMap) keysIn(want ...FreezeState) []ResidueKey {
	var keys []ResidueKey
	for k, s := range m.states {
		for _, w := range want {
			if s == w {
				keys = append(keys, k)
				break
			}
		}
	}
	sortKeys(keys)
	return keys
}

// Export compresses the map into its two range strings: contigs covers
// every frozen residue (fully or backbone-only), inpaint covers the
// backbone-only residues. Exporting twice without edits yields identical
// strings.
func (m *StateMap) Export() (contigs, inpaint string) {
	contigs = FormatRanges(EncodeSpans(m.keysIn(FullyFrozen, BackboneFrozen)))
	inpaint = FormatRanges(EncodeSpans(m.keysIn(BackboneFrozen)))
	return contigs, inpaint
}

// Apply is the inverse of Export: every residue is reset to NotFrozen,
// residues named by contigs become FullyFrozen, and those also named by
// inpaint are demoted to BackboneFrozen. Residues outside the loaded
// structure are ignored. Both strings are parsed before any mutation, so
// a malformed string leaves the map exactly as it was.
func (m *StateMap) Apply(contigs, inpaint string) error {
	contigSpans, err := ParseRanges(contigs)
	if err != nil {
		return err
	}
	inpaintSpans, err := ParseRanges(inpaint)
	if err != nil {
		return err
	}

	m.Reset()
	m.Set(ExpandSpans(contigSpans), FullyFrozen)

	// only demote residues contigs already covers
	for _, k := range ExpandSpans(inpaintSpans) {
		if s, ok := m.states[k]; ok && s == FullyFrozen {
			m.states[k] = BackboneFrozen
		}
	}
	return nil
}
