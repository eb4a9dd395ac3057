package rec_test

import (
	"strings"
	"testing"

	. "github.com/andrew-torda/molstruct/pdb/rec"
	"github.com/pkg/errors"
)

const atomLine = "ATOM      1  N   VAL A  11       3.696  33.898  63.219  1.00 21.50           N  "

func TestParseAtom(t *testing.T) {
	recs, err := Parse(atomLine)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatal("want 1 record, got", len(recs))
	}
	r := recs[0]
	if r.Name != "ATOM" || r.Line != 1 {
		t.Error("name/line", r.Name, r.Line)
	}
	strs := []struct{ f, want string }{
		{FName, "N"}, {FResName, "VAL"}, {FChainID, "A"}, {FElement, "N"},
	}
	for _, s := range strs {
		if got := r.Str(s.f); got != s.want {
			t.Errorf("%s got %q want %q", s.f, got, s.want)
		}
	}
	if r.Int(FSerial) != 1 || r.Int(FResSeq) != 11 {
		t.Error("ints", r.Int(FSerial), r.Int(FResSeq))
	}
	if r.Float(FX) != 3.696 || r.Float(FY) != 33.898 || r.Float(FZ) != 63.219 {
		t.Error("coords", r.Float(FX), r.Float(FY), r.Float(FZ))
	}
	if r.Float(FOccupancy) != 1 || r.Float(FTempFactor) != 21.5 {
		t.Error("occupancy/b")
	}
	if r.Has(FAltLoc) || r.Has(FICode) || r.Has(FCharge) {
		t.Error("blank fields should be absent")
	}
}

func TestParseSkips(t *testing.T) {
	text := "\n\nNONSENSE this is not a record\r\nJRNL        AUTH   SOMEBODY\n   \nEND\r\n"
	recs, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Name != "END" || recs[0].Line != 6 {
		t.Error("expected just END on line 6, got", recs)
	}
	recs, err = Parse("FOO       1")
	if err != nil || len(recs) != 0 {
		t.Error("unknown keyword should give nothing", recs, err)
	}
}

func TestShortLine(t *testing.T) {
	recs, err := Parse("ATOM      5  CA  GLY B   3      -1.000   2.000   3.5")
	if err != nil {
		t.Fatal(err)
	}
	r := recs[0]
	if r.Float(FZ) != 3.5 || r.Has(FOccupancy) || r.Has(FElement) {
		t.Error("short line read wrong", r.Vals)
	}
	recs, err = Parse("MODEL        2")
	if err != nil || recs[0].Int(FSerial) != 2 {
		t.Error("model serial", recs, err)
	}
}

var badLines = []struct {
	line  string
	field string
	blank bool
}{
	{"ATOM          N   VAL A  11       3.696  33.898  63.219", FSerial, true},
	{"ATOM      1  N   VAL A  11       3.6x6  33.898  63.219", FX, false},
	{"ATOM      1  N   VAL A  11       3.696  33.898", FZ, true},
	{"ATOM      1  N   VAL A  1x       3.696  33.898  63.219", FResSeq, false},
	{"MODEL", FSerial, true},
	{"MODEL     abcd", FSerial, false},
	{"CONECT    1    x", Bonded[0], false},
}

func TestFormatErrors(t *testing.T) {
	for _, b := range badLines {
		text := "HEADER    SOMETHING\n" + b.line
		recs, err := Parse(text)
		if recs != nil {
			t.Error("partial result on error", b.line)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%q: want FormatError, got %v", b.line, err)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Error("FormatError should be ErrFormat")
		}
		if fe.Line != 2 || fe.Field != b.field {
			t.Errorf("%q: line %d field %s", b.line, fe.Line, fe.Field)
		}
		if errors.Is(err, ErrBlank) != b.blank {
			t.Errorf("%q: blank should be %v", b.line, b.blank)
		}
		if !strings.Contains(err.Error(), "Line: 2") {
			t.Error("message lacks line number:", err)
		}
	}
}

func TestLenientRemark(t *testing.T) {
	lines := []struct {
		line  string
		isRes bool
	}{
		{"REMARK 465   M RES C SSSEQI", false},
		{"REMARK 465     MET A     1", true},
		{"REMARK 465   2 GLY B    12A", true},
		{"REMARK   3   R VALUE            (WORKING SET) : 0.193", false},
	}
	for _, l := range lines {
		recs, err := Parse(l.line)
		if err != nil {
			t.Fatal(l.line, err)
		}
		r := recs[0]
		if got := r.Has(FResName) && r.Has(FResSeq); got != l.isRes {
			t.Errorf("%q: residue line %v, want %v", l.line, got, l.isRes)
		}
	}
	recs, _ := Parse("REMARK 465   2 GLY B    12A")
	r := recs[0]
	if r.Int(FRemarkNum) != 465 || r.Int(FModel) != 2 || r.Str(FChainID) != "B" ||
		r.Int(FResSeq) != 12 || r.Str(FICode) != "A" || r.Str(FResName) != "GLY" {
		t.Error("465 fields", r.Vals)
	}
}

func TestLine(t *testing.T) {
	vals := Values{
		FSerial: {I: 1}, FName: {S: "N"}, FResName: {S: "VAL"}, FChainID: {S: "A"},
		FResSeq: {I: 11}, FX: {F: 3.696}, FY: {F: 33.898}, FZ: {F: 63.219},
		FOccupancy: {F: 1}, FTempFactor: {F: 21.5}, FElement: {S: "N"},
	}
	got, err := V33.Line("ATOM", vals)
	if err != nil {
		t.Fatal(err)
	}
	if got != atomLine {
		t.Errorf("\ngot  %q\nwant %q", got, atomLine)
	}
	if len(got) != LineLen {
		t.Error("line length", len(got))
	}
	vals[FName] = Value{S: "HD11"}
	got, _ = V33.Line("ATOM", vals)
	if got[12:16] != "HD11" {
		t.Error("four letter name", got[12:16])
	}
}

func TestLineOverflow(t *testing.T) {
	over := []struct {
		rec  string
		vals Values
	}{
		{"ATOM", Values{FSerial: {I: 100000}}},
		{"ATOM", Values{FX: {F: -1000.5}}},
		{"ATOM", Values{FChainID: {S: "AB"}}},
		{"MODEL", Values{FSerial: {I: 10000}}},
	}
	for _, o := range over {
		if _, err := V33.Line(o.rec, o.vals); !errors.Is(err, ErrColumnOverflow) {
			t.Errorf("%v: want overflow, got %v", o.vals, err)
		}
	}
	if _, err := V33.Line("NOSUCH", nil); err == nil {
		t.Error("unknown record should fail")
	}
}

// TestLineParse checks that what Line writes, Parse reads back.
func TestLineParse(t *testing.T) {
	vals := Values{FSerial: {I: 12}, Bonded[0]: {I: 13}, Bonded[1]: {I: 99999}}
	line, err := V33.Line("CONECT", vals)
	if err != nil {
		t.Fatal(err)
	}
	recs, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	r := recs[0]
	if r.Int(FSerial) != 12 || r.Int(Bonded[0]) != 13 || r.Int(Bonded[1]) != 99999 || r.Has(Bonded[2]) {
		t.Error("CONECT round trip", r.Vals)
	}
}
