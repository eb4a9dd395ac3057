package rec

import (
	"strconv"
	"strings"
)

// Value holds one field. Only the member matching the field's Kind
// is set.
type Value struct {
	S string
	I int
	F float64
}

// Values are the fields of a line by name. A field that is not there
// was blank or, for lenient fields, unreadable.
type Values map[string]Value

// Record is one line we recognised.
type Record struct {
	Name string // record name, like "ATOM"
	Line int    // line number, from 1
	Vals Values
}

// Has says if field name was present.
func (r *Record) Has(name string) bool {
	_, ok := r.Vals[name]
	return ok
}

// Str returns a string field, "" if absent.
func (r *Record) Str(name string) string { return r.Vals[name].S }

// Int returns an integer field, 0 if absent.
func (r *Record) Int(name string) int { return r.Vals[name].I }

// Float returns a floating point field, 0 if absent.
func (r *Record) Float(name string) float64 { return r.Vals[name].F }

// cols returns columns start to end (1-based, inclusive) of line.
// Short lines are not an error, we just get less back.
func cols(line string, start, end int) string {
	if start > len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start-1 : end]
}

// read interprets the text in a field's columns. ok is false if there
// is nothing there.
func (f *Field) read(raw string) (v Value, ok bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if f.Required {
			return v, false, ErrBlank
		}
		return v, false, nil
	}
	switch f.Kind {
	case Str:
		v.S = s
	case Int:
		v.I, err = strconv.Atoi(s)
	case Float:
		v.F, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		if f.Lenient {
			return Value{}, false, nil
		}
		return Value{}, false, err
	}
	return v, true, nil
}

// Parse takes pdb text apart with the V33 layout.
func Parse(text string) ([]Record, error) { return V33.Parse(text) }

// Parse breaks text into lines and each line into fields. Blank lines
// and records not in the dialect are skipped. The first field that
// cannot be read stops everything and gives a *FormatError.
func (d Dialect) Parse(text string) ([]Record, error) {
	var recs []Record
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := strings.TrimSpace(cols(line, 1, 6))
		fields, known := d[name]
		if !known {
			continue
		}
		r := Record{Name: name, Line: i + 1, Vals: make(Values, len(fields))}
		for j := range fields {
			f := &fields[j]
			raw := cols(line, f.Start, f.End)
			v, ok, err := f.read(raw)
			if err != nil {
				return nil, &FormatError{
					Line: i + 1, Record: name, Field: f.Name,
					Value: raw, Text: line, Err: err}
			}
			if ok {
				r.Vals[f.Name] = v
			}
		}
		recs = append(recs, r)
	}
	return recs, nil
}
