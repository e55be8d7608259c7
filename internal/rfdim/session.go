package rfdim

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Session is the interactive editing loop: a linear walk through
// choose-initial-settings, then a main menu that opens the residue
// editor, prints or saves the current settings, and exits. Input and
// output are plain reader/writer so the loop runs identically under a
// terminal and under tests.
type Session struct {
	structure *Structure
	states    *StateMap

	in  *bufio.Scanner
	out io.Writer

	// pending is the residue selection awaiting a state token, the
	// session's stand-in for a click-selection.
	pending []ResidueKey

	// SavePath is the filename suggested on save. Empty means ask.
	SavePath string
}

// NewSession wires an editing session over a loaded structure.
func NewSession(s *Structure, m *StateMap, in io.Reader, out io.Writer) *Session {
	return &Session{
		structure: s,
		states:    m,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// printf writes user-facing session text. The session writer is the UI;
// diagnostics go through the logger instead.
func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and reads one trimmed input line. ok is false on EOF,
// which every loop treats as exit.
func (s *Session) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// Run drives the whole session: initial settings, then the main menu.
// It returns nil on a clean exit, including exit via EOF.
func (s *Session) Run() error {
	s.printf("Loaded %s: %d chains, %d residues\n",
		s.structure.Path, len(s.structure.Chains), s.states.Len())

	if !s.chooseInitial() {
		return nil
	}
	s.mainMenu()
	return nil
}

// chooseInitial is the choose-initial-settings mode. Returns false when
// the user exits here.
func (s *Session) chooseInitial() bool {
	for {
		s.printf("\nChoose initial settings:\n")
		s.printf("  1. load from a script file (.sbatch, .sh, ...)\n")
		s.printf("  2. load from a saved file\n")
		s.printf("  3. start with empty settings\n")
		s.printf("  5. exit\n")

		choice, ok := s.readLine("> ")
		if !ok {
			return false
		}

		switch choice {
		case "1", "2":
			path, ok := s.readLine("file path: ")
			if !ok {
				return false
			}
			if path == "" {
				s.printf("no filename given, starting with empty settings\n")
				return true
			}
			s.loadSettings(path)
			return true
		case "3":
			s.printf("starting with empty settings\n")
			return true
		case "5":
			return false
		default:
			s.printf("invalid choice %q\n", choice)
		}
	}
}

// mainMenu is the top-level interactive-edit/save mode loop.
func (s *Session) mainMenu() {
	for {
		s.printf("\nMain menu:\n")
		s.printf("  1. interactive editing\n")
		s.printf("  2. show current settings\n")
		s.printf("  3. save settings to file\n")
		s.printf("  4. load settings from file\n")
		s.printf("  5. exit\n")

		choice, ok := s.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			if !s.edit() {
				return
			}
		case "2":
			s.showSettings()
		case "3":
			s.save()
		case "4":
			path, ok := s.readLine("filename to load: ")
			if !ok {
				return
			}
			if path != "" {
				s.loadSettings(path)
			}
		case "5":
			return
		default:
			s.printf("invalid choice %q\n", choice)
		}
	}
}

// edit is the interactive-edit mode: selection expressions stage
// residues, state tokens assign them. Returns false when input ended,
// true when the user left edit mode with q/done.
func (s *Session) edit() bool {
	s.printf("\nEditing. Select residues (e.g. A5-12,B3), then assign a state:\n")
	s.printf("  bt = backbone + type frozen\n")
	s.printf("  b  = backbone only frozen\n")
	s.printf("  n  = not frozen\n")
	s.printf("  q  = leave editing\n")

	// state tokens dispatch through this table; anything else is read
	// as a selection expression
	assign := map[string]FreezeState{
		tokenFully:    FullyFrozen,
		tokenBackbone: BackboneFrozen,
		tokenFlexible: NotFrozen,
	}

	for {
		line, ok := s.readLine("edit> ")
		if !ok {
			return false
		}
		token := strings.ToLower(line)

		switch token {
		case "":
			continue
		case "q", "done":
			s.pending = nil
			return true
		}

		if state, ok := assign[token]; ok {
			s.assign(state)
			continue
		}
		s.selectResidues(line)
	}
}

// selectResidues stages the residues named by a selection expression.
// A malformed expression leaves the previous selection in place.
func (s *Session) selectResidues(expr string) {
	keys, err := ParseSelection(expr)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}

	loaded := keys[:0]
	for _, k := range keys {
		if _, ok := s.states.State(k); ok {
			loaded = append(loaded, k)
		}
	}
	if len(loaded) == 0 {
		s.printf("no residues of the loaded structure match %q\n", expr)
		s.pending = nil
		return
	}

	s.pending = loaded
	if len(loaded) == 1 {
		cur, _ := s.states.State(loaded[0])
		s.printf("selected %s, currently %s\n", loaded[0], cur.Description())
		return
	}
	s.printf("selected %d residues (%s)\n", len(loaded), FormatRanges(EncodeSpans(loaded)))
}

// assign applies a state to the pending selection, then clears it so the
// next assignment needs a fresh selection.
func (s *Session) assign(state FreezeState) {
	if len(s.pending) == 0 {
		s.printf("error: empty selection, select residues first\n")
		return
	}

	updated := s.states.Set(s.pending, state)
	s.printf("updated %d residue(s) to %s\n", updated, state.Description())
	s.pending = nil
}

// showSettings prints the current export strings and per-state tally.
func (s *Session) showSettings() {
	contigs, inpaint := s.states.Export()
	counts := s.states.Counts()

	s.printf("\nCONTIGS=%q\n", contigs)
	s.printf("INPAINT_SEQ=%q\n", inpaint)
	s.printf("%d fully frozen, %d backbone only, %d not frozen\n",
		counts.Fully, counts.Backbone, counts.Flexible)
}

// save exports the current settings to a text file.
func (s *Session) save() {
	path := s.SavePath
	if path == "" {
		typed, ok := s.readLine("filename to save: ")
		if !ok || typed == "" {
			s.printf("no filename given, not saved\n")
			return
		}
		path = typed
	}

	contigs, inpaint := s.states.Export()
	written, err := WriteSettings(path, Settings{Contigs: contigs, InpaintSeq: inpaint})
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.printf("settings saved to %s\n", written)
}

// loadSettings replaces the current states with those extracted from a
// script or save file. Any failure leaves the states untouched.
func (s *Session) loadSettings(path string) {
	settings, read, err := LoadSettings(path)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	if err := s.states.Apply(settings.Contigs, settings.InpaintSeq); err != nil {
		s.printf("error: %v\n", err)
		return
	}

	s.printf("loaded settings from %s\n", read)
	s.showSettings()
}
