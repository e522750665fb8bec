package items

import (
	"errors"

	"github.com/ezrec/gbzasm/translate"
)

var f = translate.From

var (
	ErrTableIncomplete = errors.New(f("item table does not cover every code"))
)

// ErrTableCode is an item table entry with a code outside 0..255.
type ErrTableCode int

func (err ErrTableCode) Error() string {
	return f("item code %d out of range", int(err))
}

// ErrTableDuplicate is an item table code given more than once.
type ErrTableDuplicate int

func (err ErrTableDuplicate) Error() string {
	return f("item code $%02x defined more than once", int(err))
}

// ErrTableKey is an unrecognised key in an item table.
type ErrTableKey string

func (err ErrTableKey) Error() string {
	return f("unknown item table key %v", string(err))
}
