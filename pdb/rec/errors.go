package rec

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrFormat is what every FormatError claims to be, so you can check
// with errors.Is(err, rec.ErrFormat).
var ErrFormat = errors.New("pdb format error")

// ErrBlank is the cause when a required field is empty.
var ErrBlank = errors.New("required field is blank")

// ErrColumnOverflow means a value is too wide for its columns.
var ErrColumnOverflow = errors.New("value does not fit in its columns")

const maxMsgLen = 70

// FormatError saves the line number and the line we could not read.
type FormatError struct {
	Line   int    // 1-based line number
	Record string // like "ATOM"
	Field  string // like "x"
	Value  string // contents of the columns
	Text   string // the whole line
	Err    error  // the underlying cause
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *FormatError) Error() string {
	msg := "Line: " + strconv.Itoa(e.Line) + " " + e.Record + " " + e.Field
	msg += " bad value " + strconv.Quote(e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Text != "" {
		msg += "\nLine starting with\n" + firstPart(e.Text)
	}
	return msg
}

// Is makes errors.Is(err, ErrFormat) work.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func (e *FormatError) Unwrap() error { return e.Err }
