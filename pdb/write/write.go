// Package write turns the intermediate representation back into pdb
// text.
package write

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/molstruct/pdb/cmmn"
	"github.com/andrew-torda/molstruct/pdb/dict"
	"github.com/andrew-torda/molstruct/pdb/rec"
)

// writer collects lines. After the first error it does nothing, so we
// only have to check once at the end.
type writer struct {
	dl  rec.Dialect
	sb  strings.Builder
	err error
}

func (w *writer) line(name string, vals rec.Values) {
	if w.err != nil {
		return
	}
	s, err := w.dl.Line(name, vals)
	if err != nil {
		w.err = err
		return
	}
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

// Serialize writes d in the V33 layout.
func Serialize(d *cmmn.Dict) (string, error) { return SerializeWith(d, rec.V33) }

// SerializeWith writes d using dialect dl. On error nothing is returned
// but the error.
func SerializeWith(d *cmmn.Dict, dl rec.Dialect) (string, error) {
	w := &writer{dl: dl}
	w.header(d)
	w.continued("TITLE", d.Title)
	w.continued("KEYWDS", strings.Join(d.Keywords, ", "))
	w.continued("EXPDTA", d.Technique)
	w.continued("SOURCE", source(d))
	w.remarks(d)
	w.models(d)
	w.conects(d)
	w.line("END", nil)
	if w.err != nil {
		return "", w.err
	}
	return w.sb.String(), nil
}

func (w *writer) header(d *cmmn.Dict) {
	if d.Classification == "" && d.Code == "" && d.DepositionDate.IsZero() {
		return
	}
	vals := rec.Values{
		rec.FClassification: {S: d.Classification},
		rec.FIDCode:         {S: d.Code},
	}
	if !d.DepositionDate.IsZero() {
		vals[rec.FDepDate] = rec.Value{S: strings.ToUpper(d.DepositionDate.Format(dict.DateLayout))}
	}
	w.line("HEADER", vals)
}

func source(d *cmmn.Dict) string {
	var parts []string
	if d.Organism != "" {
		parts = append(parts, "ORGANISM_SCIENTIFIC: "+d.Organism+";")
	}
	if d.ExpressionSystem != "" {
		parts = append(parts, "EXPRESSION_SYSTEM: "+d.ExpressionSystem+";")
	}
	return strings.Join(parts, " ")
}

// wrap breaks text into pieces no longer than first for the first
// line and rest after that, at spaces. A word longer than a line is cut.
func wrap(text string, first, rest int) []string {
	var lines []string
	width, cur := first, ""
	flush := func() {
		lines = append(lines, cur)
		cur, width = "", rest
	}
	for _, word := range strings.Fields(text) {
		if cur != "" && len(cur)+1+len(word) > width {
			flush()
		}
		for cur == "" && len(word) > width {
			cur, word = word[:width], word[width:]
			flush()
		}
		if cur == "" {
			cur = word
		} else {
			cur += " " + word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// continued writes a record that may go over several lines, like TITLE.
// Continuation lines start with a space. Nothing is written for empty
// text.
func (w *writer) continued(name, text string) {
	width := w.dl.Width(name, rec.FText)
	for i, s := range wrap(text, width, width-1) {
		vals := rec.Values{rec.FText: {S: s}}
		if i > 0 {
			vals[rec.FContinuation] = rec.Value{I: i + 1}
			vals[rec.FText] = rec.Value{S: " " + s}
		}
		w.line(name, vals)
	}
}

// fmtFree writes a number for free text. It uses prec decimals unless
// that would lose something.
func fmtFree(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if v, _ := strconv.ParseFloat(s, 64); v != f {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

func (w *writer) remark(n int, text string) {
	vals := rec.Values{rec.FRemarkNum: {I: n}}
	if text != "" {
		vals[rec.FText] = rec.Value{S: text}
	}
	w.line("REMARK", vals)
}

var missingPreamble = []string{
	"",
	"MISSING RESIDUES",
	"THE FOLLOWING RESIDUES WERE NOT LOCATED IN THE",
	"EXPERIMENT. (M=MODEL NUMBER; RES=RESIDUE NAME; C=CHAIN",
	"IDENTIFIER; SSSEQ=SEQUENCE NUMBER; I=INSERTION CODE.)",
	"",
	"  M RES C SSSEQI",
}

func (w *writer) remarks(d *cmmn.Dict) {
	if d.Resolution != 0 {
		w.remark(2, "")
		w.remark(2, "RESOLUTION. "+fmtFree(d.Resolution, 2)+" ANGSTROMS.")
	}
	if d.RFactor != 0 {
		w.remark(3, "")
		w.remark(3, "  R VALUE            (WORKING SET) : "+fmtFree(d.RFactor, 3))
	}
	if !d.HasMissing() {
		return
	}
	for _, s := range missingPreamble {
		w.remark(465, s)
	}
	multi := len(d.Models) > 1
	for _, m := range d.Models {
		for _, r := range m.Residues {
			if !r.Missing {
				continue
			}
			vals := rec.Values{
				rec.FRemarkNum: {I: 465},
				rec.FResName:   {S: r.Name},
				rec.FChainID:   {S: r.ChainID},
				rec.FResSeq:    {I: r.ResSeq},
				rec.FICode:     {S: r.ICode},
			}
			if multi {
				vals[rec.FModel] = rec.Value{I: m.Number}
			}
			w.line("REMARK", vals)
		}
	}
}

func atomVals(a *cmmn.AtomRecord) rec.Values {
	return rec.Values{
		rec.FSerial:     {I: a.Serial},
		rec.FName:       {S: a.Name},
		rec.FAltLoc:     {S: a.AltLoc},
		rec.FResName:    {S: a.ResName},
		rec.FChainID:    {S: a.ChainID},
		rec.FResSeq:     {I: a.ResSeq},
		rec.FICode:      {S: a.ICode},
		rec.FX:          {F: a.Xyz.X},
		rec.FY:          {F: a.Xyz.Y},
		rec.FZ:          {F: a.Xyz.Z},
		rec.FOccupancy:  {F: a.Occupancy},
		rec.FTempFactor: {F: a.TempFactor},
		rec.FElement:    {S: a.Element},
		rec.FCharge:     {S: a.Charge},
	}
}

// models writes the atoms, each model between MODEL and ENDMDL.
func (w *writer) models(d *cmmn.Dict) {
	for _, m := range d.Models {
		w.line("MODEL", rec.Values{rec.FSerial: {I: m.Number}})
		for i := range m.Atoms {
			name := "ATOM"
			if m.Atoms[i].Hetero {
				name = "HETATM"
			}
			w.line(name, atomVals(&m.Atoms[i]))
		}
		w.line("ENDMDL", nil)
	}
}

func (w *writer) conects(d *cmmn.Dict) {
	nb := len(rec.Bonded)
	for _, c := range d.Connections {
		for start := 0; start == 0 || start < len(c.Bonded); start += nb {
			vals := rec.Values{rec.FSerial: {I: c.Serial}}
			for j := 0; j < nb && start+j < len(c.Bonded); j++ {
				vals[rec.Bonded[j]] = rec.Value{I: c.Bonded[start+j]}
			}
			w.line("CONECT", vals)
		}
	}
}
