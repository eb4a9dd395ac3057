package cmmn_test

import (
	"testing"

	. "github.com/andrew-torda/molstruct/pdb/cmmn"
)

var resIDs = []struct {
	chain string
	seq   int
	icode string
	want  string
}{
	{"A", 12, "", "A.12"},
	{"A", 12, "B", "A.12B"},
	{"", -3, "", ".-3"},
	{"Z", 0, "", "Z.0"},
	{"1", 1, "", "1.1"},
	{"", 11, "", ".11"},
}

func TestResidueID(t *testing.T) {
	for _, r := range resIDs {
		if got := ResidueID(r.chain, r.seq, r.icode); got != r.want {
			t.Error("got", got, "want", r.want)
		}
	}
}

func TestDictHelpers(t *testing.T) {
	d := Dict{
		Models: []ModelDict{
			{Number: 1, Atoms: []AtomRecord{{Serial: 1}, {Serial: 2}}},
			{Number: 3, Atoms: []AtomRecord{{Serial: 1}},
				Residues: []ResidueRecord{{ID: "A1", Atoms: []int{0}}, {ID: "A2", Missing: true}}},
		},
	}
	if d.NAtoms() != 3 {
		t.Error("NAtoms got", d.NAtoms())
	}
	if !d.HasMissing() {
		t.Error("should have missing residue")
	}
	m := d.Model(3)
	if m == nil || m.Number != 3 {
		t.Fatal("model 3 not found")
	}
	if d.Model(2) != nil {
		t.Error("there is no model 2")
	}
	if ats := m.ResidueAtoms(&m.Residues[0]); len(ats) != 1 || ats[0].Serial != 1 {
		t.Error("ResidueAtoms", ats)
	}
	m.Number = 4 // pointer into the dict
	if d.Models[1].Number != 4 {
		t.Error("Model should point into the slice")
	}
}
