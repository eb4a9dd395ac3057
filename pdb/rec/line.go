package rec

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

func (f *Field) format(v Value) string {
	var s string
	switch f.Kind {
	case Str:
		s = v.S
	case Int:
		s = strconv.Itoa(v.I)
	case Float:
		s = strconv.FormatFloat(v.F, 'f', f.Prec, 64)
	}
	if f.Align == AtomName && len(s) < 4 {
		s = " " + s
	}
	return s
}

// Line puts one line together. Fields not in vals are left blank. The
// line is padded to LineLen. A value wider than its columns gives an
// error wrapping ErrColumnOverflow.
func (d Dialect) Line(name string, vals Values) (string, error) {
	fields, ok := d[name]
	if !ok {
		return "", errors.Errorf("no layout for record %q", name)
	}
	buf := bytes.Repeat([]byte{' '}, LineLen)
	copy(buf, name)
	for i := range fields {
		f := &fields[i]
		v, ok := vals[f.Name]
		if !ok {
			continue
		}
		s := f.format(v)
		w := f.width()
		if len(s) > w {
			return "", errors.Wrapf(ErrColumnOverflow, "%s %s %q in %d columns", name, f.Name, s, w)
		}
		start := f.Start - 1
		if f.Align == Right {
			start += w - len(s)
		}
		copy(buf[start:], s)
	}
	return string(buf), nil
}
