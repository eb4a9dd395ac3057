// 12 Oct 2026
// Package pdbconv has the work behind the pdbconv command: summarising,
// converting and batch converting pdb files.

package pdbconv

import (
	"io"
	"sort"
	"strings"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/andrew-torda/molstruct/pdb"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

// chainIDs collects the distinct chain names over all models.
func chainIDs(p *pdb.Pdb) []string {
	ids := set.NewStringSet()
	for _, m := range p.Models() {
		for _, c := range m.Chains() {
			ids.Append(c.ChainID())
		}
	}
	ret := ids.ToSlice()
	sort.Strings(ret)
	return ret
}

// formula writes element counts like C 12 N 3, sorted by element.
func formula(f map[string]int) string {
	els := lo.Keys(f)
	sort.Strings(els)
	parts := lo.Map(els, func(el string, _ int) string {
		return el + " " + itoa(f[el])
	})
	return strings.Join(parts, " ")
}

// Info writes a summary of p to w. Absent metadata is skipped.
func Info(w io.Writer, p *pdb.Pdb, useColor bool) {
	key := color.New(color.FgCyan, color.Bold)
	if !useColor {
		key.DisableColor()
	}
	line := func(k, v string) {
		if v == "" {
			return
		}
		key.Fprintf(w, "%-18s", k)
		io.WriteString(w, v+"\n")
	}
	line("code", p.Code)
	line("title", p.Title)
	line("classification", p.Classification)
	if !p.DepositionDate.IsZero() {
		line("deposited", p.DepositionDate.Format("2006-01-02"))
	}
	line("technique", p.Technique)
	if p.Resolution != 0 {
		line("resolution", ftoa(p.Resolution)+" Å")
	}
	if p.RFactor != 0 {
		line("r-factor", ftoa(p.RFactor))
	}
	line("organism", p.Organism)
	line("expression system", p.ExpressionSystem)
	line("keywords", strings.Join(p.Keywords, ", "))
	line("models", itoa(len(p.Models())))
	line("chains", strings.Join(chainIDs(p), " "))
	m := p.Model()
	if m == nil {
		return
	}
	all := m.Residues(true).Len()
	present := m.Residues(false).Len()
	line("residues", itoa(present)+" present, "+itoa(all-present)+" missing")
	line("atoms", itoa(m.Atoms().Len()))
	line("formula", formula(m.Atoms().Formula()))
}

// InfoFile reads fname and writes its summary.
func InfoFile(fname string, w io.Writer, useColor bool) error {
	p, err := pdb.Open(fname)
	if err != nil {
		return err
	}
	Info(w, p, useColor)
	return nil
}
