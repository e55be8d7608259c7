package rfdim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// outputExt is appended to save filenames given without an extension.
const outputExt = ".txt"

// Assignment lines as they appear in save files and sbatch scripts. The
// same patterns match both, so one extractor serves script files, prior
// save files and anything else that embeds the two quoted strings.
var (
	contigsRegex = regexp.MustCompile(`CONTIGS="([^"]*)"`)
	inpaintRegex = regexp.MustCompile(`INPAINT_SEQ="([^"]*)"`)
)

// Settings are the two range strings a save file or batch script carries.
type Settings struct {
	Contigs    string
	InpaintSeq string
}

// ExtractSettings scans arbitrary text for CONTIGS="..." and
// INPAINT_SEQ="..." assignments. CONTIGS must be present; a missing
// INPAINT_SEQ means no backbone-only residues. Both strings are
// validated before being returned, so a caller can Apply them directly.
func ExtractSettings(r io.Reader) (Settings, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, err
	}

	m := contigsRegex.FindSubmatch(content)
	if m == nil {
		return Settings{}, fmt.Errorf(`no CONTIGS="..." assignment found`)
	}
	s := Settings{Contigs: string(m[1])}

	if m := inpaintRegex.FindSubmatch(content); m != nil {
		s.InpaintSeq = string(m[1])
	}

	if _, err := ParseRanges(s.Contigs); err != nil {
		return Settings{}, fmt.Errorf("CONTIGS: %w", err)
	}
	if _, err := ParseRanges(s.InpaintSeq); err != nil {
		return Settings{}, fmt.Errorf("INPAINT_SEQ: %w", err)
	}
	return s, nil
}

// LoadSettings extracts settings from a file, trying the path as given
// and then with ".txt" appended. Returns the path that was actually read.
func LoadSettings(path string) (Settings, string, error) {
	candidates := []string{path}
	if !strings.HasSuffix(path, outputExt) {
		candidates = append(candidates, path+outputExt)
	}

	var lastErr error
	for _, p := range candidates {
		fh, err := os.Open(p)
		if err != nil {
			lastErr = err
			continue
		}
		s, err := ExtractSettings(fh)
		fh.Close()
		if err != nil {
			return Settings{}, "", fmt.Errorf("%s: %w", p, err)
		}

		log.Debug().Str("path", p).Msg("loaded settings")
		return s, p, nil
	}
	return Settings{}, "", lastErr
}

// WriteSettings writes the two quoted range strings to a text file,
// appending ".txt" when the name doesn't already end in it and creating
// parent directories as needed. Returns the path written.
func WriteSettings(path string, s Settings) (string, error) {
	if !strings.HasSuffix(path, outputExt) {
		path += outputExt
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	content := fmt.Sprintf("CONTIGS=%q\nINPAINT_SEQ=%q\n", s.Contigs, s.InpaintSeq)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}

	log.Debug().Str("path", path).Msg("wrote settings")
	return path, nil
}
