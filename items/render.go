package items

import (
	"io"
	"slices"
	"text/tabwriter"

	"github.com/ezrec/gbzasm/asm"
	"github.com/ezrec/gbzasm/internal"
	"github.com/ezrec/gbzasm/translate"
)

// ANY_QUANTITY marks a trailing code with no quantity byte.
const ANY_QUANTITY = -1

// Record is one code/quantity pair of the byte stream.
type Record struct {
	Address   uint16 // Address of the code byte.
	Code      byte
	Name      string
	Quantity  int  // Quantity byte, or ANY_QUANTITY.
	Duplicate bool // Code already appeared earlier in the stream.
	Misuse    bool // Code takes no quantity but is not followed by 1.
	Invalid   bool // Code is not a legitimate item.
}

// Warnings summarise the records of a report.
type Warnings struct {
	Duplicate bool
	Quantity  bool
	Invalid   bool
}

// Any reports whether any warning was raised.
func (w Warnings) Any() bool {
	return w.Duplicate || w.Quantity || w.Invalid
}

// Report is the rendered form of a program.
type Report struct {
	Records  []Record
	Warnings Warnings
}

// Render walks the program two bytes at a time as code and quantity.
func Render(prog *asm.Program, table *Table) (report *Report) {
	report = &Report{}

	var used [256]bool
	code := prog.Code

	for n, pair := range internal.IterSeqEnumerate(slices.Chunk(code, 2)) {
		i := n * 2
		entry := &table[pair[0]]

		rec := Record{
			Address:  prog.Base + uint16(i),
			Code:     pair[0],
			Name:     entry.Name,
			Quantity: ANY_QUANTITY,
			Invalid:  !entry.Valid,
		}

		if used[rec.Code] {
			rec.Duplicate = true
		} else {
			used[rec.Code] = true
		}

		if !entry.Quantity && i+1 != len(code) && code[i+1] != 1 {
			rec.Misuse = true
		}

		if len(pair) == 2 {
			rec.Quantity = int(pair[1])
		}

		report.Warnings.Duplicate = report.Warnings.Duplicate || rec.Duplicate
		report.Warnings.Quantity = report.Warnings.Quantity || rec.Misuse
		report.Warnings.Invalid = report.Warnings.Invalid || rec.Invalid

		report.Records = append(report.Records, rec)
	}

	return
}

// Label returns the item column of a record.
func (rec *Record) Label() string {
	if rec.Invalid {
		return f("%v (hex:%02X)", rec.Name, rec.Code)
	}
	return rec.Name
}

// Amount returns the quantity column of a record.
func (rec *Record) Amount() string {
	if rec.Quantity == ANY_QUANTITY {
		return f("x[Any qty]")
	}
	return f("x%d (hex:%02X)", rec.Quantity, rec.Quantity)
}

// WriteTo writes the report as two columns followed by any warnings.
func (report *Report) WriteTo(w io.Writer) (total int64, err error) {
	cw := &countWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 8, 2, ' ', 0)

	if len(report.Records) == 0 {
		_, err = translate.Fprint(tw, "Please type in something.\n")
	}

	for _, rec := range report.Records {
		if err != nil {
			break
		}
		_, err = translate.Fprint(tw, "%04x\t%v\t%v\n", rec.Address, rec.Label(), rec.Amount())
	}

	if err == nil {
		err = tw.Flush()
	}

	warn := []struct {
		raised  bool
		message string
	}{
		{report.Warnings.Duplicate, "warning: an item code is used more than once\n"},
		{report.Warnings.Quantity, "warning: an item that cannot stack has a quantity other than 1\n"},
		{report.Warnings.Invalid, "warning: the stream contains invalid item codes\n"},
	}
	for _, item := range warn {
		if err != nil {
			break
		}
		if item.raised {
			_, err = translate.Fprint(cw, item.message)
		}
	}

	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += int64(n)
	return
}
