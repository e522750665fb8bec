// Package items renders an assembled byte stream as a list of item codes
// and quantities.
package items

import (
	_ "embed"
	"io"

	"github.com/BurntSushi/toml"
)

//go:embed items.toml
var defaultTable string

// Entry describes a single item code.
type Entry struct {
	Code     int    `toml:"code"`
	Name     string `toml:"name"`
	Valid    bool   `toml:"valid"`    // Code is a legitimate item.
	Quantity bool   `toml:"quantity"` // Item may be held in any quantity.
}

// Table holds an entry for every code value.
type Table [256]Entry

type tableFile struct {
	Item []Entry `toml:"item"`
}

// DefaultTable returns the built-in item table.
func DefaultTable() *Table {
	table, err := decode(defaultTable)
	if err != nil {
		panic(err)
	}
	return table
}

// LoadTable reads an item table in TOML form.
//
// Every code from 0 to 255 must appear exactly once.
func LoadTable(input io.Reader) (table *Table, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return decode(string(data))
}

func decode(data string) (table *Table, err error) {
	var file tableFile

	md, err := toml.Decode(data, &file)
	if err != nil {
		return
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		err = ErrTableKey(undecoded[0].String())
		return
	}

	table = &Table{}
	var seen [256]bool
	for _, entry := range file.Item {
		if entry.Code < 0 || entry.Code >= len(table) {
			err = ErrTableCode(entry.Code)
			return nil, err
		}
		if seen[entry.Code] {
			err = ErrTableDuplicate(entry.Code)
			return nil, err
		}
		seen[entry.Code] = true
		table[entry.Code] = entry
	}

	for _, ok := range seen {
		if !ok {
			return nil, ErrTableIncomplete
		}
	}

	return
}
