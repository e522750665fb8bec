package asm

import (
	"fmt"
	"io"
	"iter"
)

// Program is a fully resolved byte stream anchored at a base address.
type Program struct {
	Base   uint16  // Address of the first byte.
	Code   []byte  // Assembled bytes.
	Lines  []int   // Source line that produced each byte.
	Labels []Label // Labels in definition order.
}

type Debug struct {
	LineNo int // Source line, or 0 if the address is outside the program.
	Offset int // Offset of the address into Code.
}

// Debug locates the source line that produced the byte at an address.
func (prog *Program) Debug(address uint16) (dbg Debug) {
	offset := int(address) - int(prog.Base)
	if offset < 0 || offset >= len(prog.Code) {
		return
	}

	dbg = Debug{
		LineNo: prog.Lines[offset],
		Offset: offset,
	}

	return
}

// Bytes iterates the program as address/byte pairs.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(address uint16, value byte) bool) {
		for n, value := range prog.Code {
			if !yield(prog.Base+uint16(n), value) {
				return
			}
		}
	}
}

// Label returns the address of a label.
func (prog *Program) Label(name string) (address uint16, ok bool) {
	for _, label := range prog.Labels {
		if label.Name == name {
			return label.Address, true
		}
	}
	return
}

// Dump writes a hex listing, sixteen bytes per row.
func (prog *Program) Dump(w io.Writer) (err error) {
	for address, value := range prog.Bytes() {
		offset := int(address - prog.Base)
		switch {
		case offset == 0:
			_, err = fmt.Fprintf(w, "%04x:", address)
		case offset%16 == 0:
			_, err = fmt.Fprintf(w, "\n%04x:", address)
		}
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, " %02x", value)
		if err != nil {
			return
		}
	}

	if len(prog.Code) > 0 {
		_, err = fmt.Fprintln(w)
	}

	return
}
