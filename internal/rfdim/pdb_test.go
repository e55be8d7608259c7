package rfdim

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// atomLine renders one ATOM record with the fixed PDB columns the parser
// reads: residue name, chain identifier and residue sequence number.
func atomLine(serial int, atom, resName, chain string, num int) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %s%4d      11.104  13.207  10.000  1.00  0.00           C",
		serial, atom, resName, chain, num)
}

// pdbFixture is a two-chain entry: A1-A3 plus a water and a ligand that
// the parser must skip, then B7.
func pdbFixture() string {
	lines := []string{
		"HEADER    TEST PROTEIN                            01-JAN-20   XXXX",
		atomLine(1, " N", "MET", "A", 1),
		atomLine(2, " CA", "MET", "A", 1),
		atomLine(3, " N", "GLY", "A", 2),
		atomLine(4, " CA", "GLY", "A", 2),
		atomLine(5, " N", "ALA", "A", 3),
		"TER       6      ALA A   3",
		"HETATM    7  O   HOH A 101      10.000  10.000  10.000  1.00  0.00           O",
		atomLine(8, " C1", "LIG", "A", 201),
		atomLine(9, " N", "TRP", "B", 7),
	}
	return strings.Join(lines, "\n") + "\n"
}

func Test_parseStructure(t *testing.T) {
	s, err := parseStructure(strings.NewReader(pdbFixture()))
	if err != nil {
		t.Fatalf("parseStructure() error = %v", err)
	}

	if len(s.Chains) != 2 {
		t.Fatalf("len(Chains) = %v, want 2", len(s.Chains))
	}

	a := s.Chain("A")
	if a == nil {
		t.Fatal("Chain(A) = nil")
	}
	if !reflect.DeepEqual(a.Residues, []int{1, 2, 3}) {
		t.Errorf("chain A residues = %v, want [1 2 3]", a.Residues)
	}
	if string(a.Seq) != "MGA" {
		t.Errorf("chain A seq = %q, want %q", a.Seq, "MGA")
	}

	b := s.Chain("B")
	if b == nil || !reflect.DeepEqual(b.Residues, []int{7}) {
		t.Errorf("chain B residues = %v, want [7]", b.Residues)
	}

	want := []ResidueKey{{"A", 1}, {"A", 2}, {"A", 3}, {"B", 7}}
	if got := s.Residues(); !reflect.DeepEqual(got, want) {
		t.Errorf("Residues() = %v, want %v", got, want)
	}
}

// only the first model of an NMR entry contributes residues
func Test_parseStructure_multiModel(t *testing.T) {
	content := strings.Join([]string{
		"MODEL        1",
		atomLine(1, " CA", "MET", "A", 1),
		"ENDMDL",
		"MODEL        2",
		atomLine(2, " CA", "MET", "A", 1),
		atomLine(3, " CA", "GLY", "A", 2),
		"ENDMDL",
	}, "\n")

	s, err := parseStructure(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parseStructure() error = %v", err)
	}
	if got := s.Chain("A").Residues; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("chain A residues = %v, want [1]", got)
	}
}

func Test_parseStructure_noProtein(t *testing.T) {
	content := "HETATM    1  O   HOH A 101      10.000  10.000  10.000  1.00  0.00           O\n"
	if _, err := parseStructure(strings.NewReader(content)); err == nil {
		t.Error("parseStructure() error = nil, want no-protein error")
	}
}

func Test_ReadStructure(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "test.pdb")
	if err := os.WriteFile(plain, []byte(pdbFixture()), 0644); err != nil {
		t.Fatal(err)
	}

	zipped := filepath.Join(dir, "test.pdb.gz")
	fh, err := os.Create(zipped)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(pdbFixture())); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	fh.Close()

	tests := []struct {
		name string
		path string
	}{
		{"plain text", plain},
		{"gzip compressed", zipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadStructure(tt.path)
			if err != nil {
				t.Fatalf("ReadStructure() error = %v", err)
			}
			if len(s.Residues()) != 4 {
				t.Errorf("len(Residues()) = %v, want 4", len(s.Residues()))
			}
			if s.Path != tt.path {
				t.Errorf("Path = %q, want %q", s.Path, tt.path)
			}
		})
	}

	if _, err := ReadStructure(filepath.Join(dir, "missing.pdb")); err == nil {
		t.Error("ReadStructure(missing) error = nil, want not-found")
	}
}

func Test_Structure_Restrict(t *testing.T) {
	s, err := parseStructure(strings.NewReader(pdbFixture()))
	if err != nil {
		t.Fatal(err)
	}

	s.Restrict([]string{"b"})
	if len(s.Chains) != 1 || s.Chains[0].ID != "B" {
		t.Errorf("Chains after Restrict = %v, want [B]", s.Chains)
	}

	// empty whitelist keeps everything
	s2, _ := parseStructure(strings.NewReader(pdbFixture()))
	s2.Restrict(nil)
	if len(s2.Chains) != 2 {
		t.Errorf("Chains after empty Restrict = %v, want 2 chains", len(s2.Chains))
	}
}
