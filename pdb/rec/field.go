// Package rec knows where things are in the fixed columns of a pdb
// file. One table, a Dialect, is used both to take lines apart (Parse)
// and to put them together (Line).
package rec

// Kind is what a field holds.
type Kind byte

const (
	Str Kind = iota
	Int
	Float
)

// Align says where a value goes when it is shorter than its columns.
type Align byte

const (
	Left  Align = iota
	Right       // numbers and residue names
	AtomName    // left, but names shorter than 4 start in the second column
)

// Field is one entry in a record layout. Start and End are the 1-based,
// inclusive columns from the format documentation.
type Field struct {
	Name     string
	Start    int
	End      int
	Kind     Kind
	Align    Align
	Prec     int  // digits after the decimal point when writing floats
	Required bool // blank is an error
	Lenient  bool // unreadable is the same as blank
}

func (f Field) width() int { return f.End - f.Start + 1 }

// Dialect maps record names to their fields.
type Dialect map[string][]Field

func str(name string, start, end int) Field {
	return Field{Name: name, Start: start, End: end}
}
func rstr(name string, start, end int) Field {
	return Field{Name: name, Start: start, End: end, Align: Right}
}
func num(name string, start, end int) Field {
	return Field{Name: name, Start: start, End: end, Kind: Int, Align: Right}
}
func flt(name string, start, end, prec int) Field {
	return Field{Name: name, Start: start, End: end, Kind: Float, Align: Right, Prec: prec}
}
func required(f Field) Field { f.Required = true; return f }
func lenient(f Field) Field  { f.Lenient = true; return f }

// Names of fields that are used from more than one place.
const (
	FClassification = "classification"
	FDepDate        = "depDate"
	FIDCode         = "idCode"
	FContinuation   = "continuation"
	FText           = "text"
	FRemarkNum      = "remarkNum"
	FModel          = "model"
	FSerial         = "serial"
	FName           = "name"
	FAltLoc         = "altLoc"
	FResName        = "resName"
	FChainID        = "chainID"
	FResSeq         = "resSeq"
	FICode          = "iCode"
	FX              = "x"
	FY              = "y"
	FZ              = "z"
	FOccupancy      = "occupancy"
	FTempFactor     = "tempFactor"
	FElement        = "element"
	FCharge         = "charge"
)

// Bonded are the CONECT partner fields, in column order.
var Bonded = []string{"bonded1", "bonded2", "bonded3", "bonded4"}

func atomFields() []Field {
	return []Field{
		required(num(FSerial, 7, 11)),
		{Name: FName, Start: 13, End: 16, Align: AtomName},
		str(FAltLoc, 17, 17),
		rstr(FResName, 18, 20),
		str(FChainID, 22, 22),
		num(FResSeq, 23, 26),
		str(FICode, 27, 27),
		required(flt(FX, 31, 38, 3)),
		required(flt(FY, 39, 46, 3)),
		required(flt(FZ, 47, 54, 3)),
		flt(FOccupancy, 55, 60, 2),
		flt(FTempFactor, 61, 66, 2),
		rstr(FElement, 77, 78),
		str(FCharge, 79, 80),
	}
}

// V33 is the layout of version 3.3 of the wwPDB format, at least for the
// records we use.
var V33 = Dialect{
	"HEADER": {
		str(FClassification, 11, 50),
		str(FDepDate, 51, 59),
		str(FIDCode, 63, 66),
	},
	"TITLE":  {num(FContinuation, 9, 10), str(FText, 11, 80)},
	"KEYWDS": {num(FContinuation, 9, 10), str(FText, 11, 79)},
	"EXPDTA": {num(FContinuation, 9, 10), str(FText, 11, 79)},
	"SOURCE": {num(FContinuation, 8, 10), str(FText, 11, 79)},
	"REMARK": {
		num(FRemarkNum, 8, 10),
		str(FText, 12, 79),
		// REMARK 465 missing residue lines
		lenient(num(FModel, 12, 14)),
		lenient(rstr(FResName, 16, 18)),
		lenient(str(FChainID, 20, 20)),
		lenient(num(FResSeq, 22, 26)),
		lenient(str(FICode, 27, 27)),
	},
	"MODEL":  {required(num(FSerial, 11, 14))},
	"ENDMDL": nil,
	"TER":    nil,
	"END":    nil,
	"ATOM":   atomFields(),
	"HETATM": atomFields(),
	"CONECT": {
		required(num(FSerial, 7, 11)),
		num(Bonded[0], 12, 16),
		num(Bonded[1], 17, 21),
		num(Bonded[2], 22, 26),
		num(Bonded[3], 27, 31),
	},
}

// LineLen is the width of a line, which we pad to when writing.
const LineLen = 80

// Width returns the number of columns of field in record, 0 if the
// record has no such field.
func (d Dialect) Width(record, field string) int {
	for _, f := range d[record] {
		if f.Name == field {
			return f.width()
		}
	}
	return 0
}
