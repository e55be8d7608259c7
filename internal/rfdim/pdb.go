package rfdim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

// aminoThreeToOne maps three letter amino acid codes to their single
// letter representation. ATOM records whose residue name is not in this
// map (waters, ligands, nucleotides) are not part of the protein and are
// skipped.
var aminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// Chain is one protein chain of a loaded structure: its identifier, the
// ascending residue sequence numbers seen in ATOM records, and the
// one-letter sequence in that order.
type Chain struct {
	ID       string
	Residues []int
	Seq      []byte
}

// Bounds is the covered residue range of the chain. The range may have
// gaps; Residues is authoritative.
func (c *Chain) Bounds() (start, end int) {
	if len(c.Residues) == 0 {
		return 0, 0
	}
	return c.Residues[0], c.Residues[len(c.Residues)-1]
}

// Structure is the protein content of one PDB file: its path and chains
// in ascending identifier order.
type Structure struct {
	Path   string
	Chains []*Chain
}

// Residues returns every residue key of the structure in export order.
func (s *Structure) Residues() []ResidueKey {
	var keys []ResidueKey
	for _, c := range s.Chains {
		for _, num := range c.Residues {
			keys = append(keys, ResidueKey{Chain: c.ID, Num: num})
		}
	}
	return keys
}

// Chain returns the chain with the given identifier, or nil.
func (s *Structure) Chain(id string) *Chain {
	for _, c := range s.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Restrict drops chains whose identifier is not in the whitelist. An
// empty whitelist keeps everything.
func (s *Structure) Restrict(chains []string) {
	if len(chains) == 0 {
		return
	}

	allowed := make(map[string]bool, len(chains))
	for _, id := range chains {
		allowed[strings.ToUpper(strings.TrimSpace(id))] = true
	}

	kept := s.Chains[:0]
	for _, c := range s.Chains {
		if allowed[c.ID] {
			kept = append(kept, c)
		}
	}
	s.Chains = kept
}

// openStructure opens a structure file for reading. "-" reads stdin.
// Gzipped input is detected by the gzip magic number or a .gz suffix, so
// .pdb.gz and .ent.gz work without being told apart.
func openStructure(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{gr, fh}, nil
	}

	return struct {
		io.Reader
		io.Closer
	}{br, fh}, nil
}

// ReadStructure loads the protein residues of a PDB file. Only the first
// model of a multi-model entry is read. A structure with no protein
// residues at all is an error: there is nothing to annotate.
func ReadStructure(path string) (*Structure, error) {
	rc, err := openStructure(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, err := parseStructure(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.Path = path

	total := 0
	for _, c := range s.Chains {
		total += len(c.Residues)
	}
	log.Debug().
		Str("path", path).
		Int("chains", len(s.Chains)).
		Int("residues", total).
		Msg("loaded structure")
	return s, nil
}

// parseStructure is a single pass over PDB records. ATOM lines carry one
// atom each, so a residue spans many lines; a residue is recorded once,
// when its sequence number first appears on its chain.
func parseStructure(r io.Reader) (*Structure, error) {
	chains := make(map[string]*Chain)
	lastSeen := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 6 {
			continue
		}

		record := strings.TrimSpace(line[0:6])
		if record == "ENDMDL" {
			// NMR entries repeat every chain per model
			break
		}
		if record != "ATOM" || len(line) < 27 {
			continue
		}

		// fixed PDB columns: residue name 18-20, chain 22, number 23-26
		resName := strings.TrimSpace(line[17:20])
		single, ok := aminoThreeToOne[resName]
		if !ok {
			continue
		}

		chainID := strings.ToUpper(strings.TrimSpace(line[21:22]))
		if chainID == "" {
			continue
		}

		num, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			continue
		}

		chain, ok := chains[chainID]
		if !ok {
			chain = &Chain{ID: chainID}
			chains[chainID] = chain
			lastSeen[chainID] = num - 1
		}
		if num == lastSeen[chainID] {
			continue
		}
		lastSeen[chainID] = num
		chain.Residues = append(chain.Residues, num)
		chain.Seq = append(chain.Seq, single)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(chains) == 0 {
		return nil, fmt.Errorf("no protein residues found")
	}

	s := &Structure{}
	for _, c := range chains {
		sort.Ints(c.Residues)
		s.Chains = append(s.Chains, c)
	}
	sort.Slice(s.Chains, func(i, j int) bool { return s.Chains[i].ID < s.Chains[j].ID })
	return s, nil
}
