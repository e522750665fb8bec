package asm

import (
	"errors"

	"github.com/ezrec/gbzasm/translate"
)

var f = translate.From

// Kind classifies an assembly failure.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UNKNOWN                   = Kind(0) // unknown
	KIND_MALFORMED_LITERAL         = Kind(1) // malformed literal
	KIND_OPERAND_SHAPE             = Kind(2) // operand shape
	KIND_UNKNOWN_MNEMONIC          = Kind(3) // unknown mnemonic
	KIND_DUPLICATE_LABEL           = Kind(4) // duplicate label
	KIND_EMPTY_LABEL_NAME          = Kind(5) // empty label name
	KIND_UNKNOWN_LABEL             = Kind(6) // unknown label
	KIND_ADDRESS_OVERFLOW          = Kind(7) // address overflow
	KIND_DISPLACEMENT_OUT_OF_RANGE = Kind(8) // displacement out of range
	KIND_ORPHAN_LOCAL_LABEL        = Kind(9) // orphan local label
)

var (
	ErrOperandEmpty    = errors.New(f("empty operand"))
	ErrLabelEmpty      = errors.New(f("empty label name"))
	ErrAddressOverflow = errors.New(f("address beyond $ffff"))
)

// ErrLiteralMalformed is a numeric operand that breaks the literal grammar.
type ErrLiteralMalformed string

func (err ErrLiteralMalformed) Error() string {
	return f("'%v' is not a valid number", string(err))
}

// ErrLiteralRange is a numeric operand that does not fit its field.
type ErrLiteralRange struct {
	Text string
	Bits int
}

func (err ErrLiteralRange) Error() string {
	return f("'%v' is not a %d-bit number", err.Text, err.Bits)
}

// ErrOperandInvalid is a byte or word operand that resolved to nothing.
type ErrOperandInvalid string

func (err ErrOperandInvalid) Error() string {
	return f("invalid operand '%v'", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperandCount is an instruction given the wrong number of operands.
type ErrOperandCount struct {
	Mnemonic string
	Expect   string
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %v", err.Mnemonic, err.Expect)
}

// ErrOperandShape is an operand that is not valid in its position.
type ErrOperandShape struct {
	Mnemonic string
	Operand  string
	Expect   string
}

func (err ErrOperandShape) Error() string {
	return f("%v: '%v' is not %v", err.Mnemonic, err.Operand, err.Expect)
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown instruction %v", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("duplicate label %v", string(err))
}

type ErrLabelUnknown string

func (err ErrLabelUnknown) Error() string {
	return f("label %v is unknown", string(err))
}

type ErrLabelOrphan string

func (err ErrLabelOrphan) Error() string {
	return f("local label %v has no enclosing global label", string(err))
}

// ErrDisplacement is a relative branch that cannot reach its target.
type ErrDisplacement struct {
	From uint16
	To   int
}

func (err ErrDisplacement) Error() string {
	return f("jr displacement too large from $%04x to $%04x", err.From, err.To)
}

// ErrEncoding is an encoder whose reported length disagrees with the bytes
// it emitted.
type ErrEncoding struct {
	Mnemonic string
	Reported int
	Emitted  int
}

func (err ErrEncoding) Error() string {
	return f("%v: encoded %d bytes, reported %d", err.Mnemonic, err.Emitted, err.Reported)
}

// ErrBaseOffset is a base offset that is not a 16-bit hexadecimal number.
type ErrBaseOffset string

func (err ErrBaseOffset) Error() string {
	return f("failed to parse base offset '%v'", string(err))
}

// ErrSyntax locates an assembly error on its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// KindOf returns the classification of an error returned by the assembler.
func KindOf(err error) Kind {
	var (
		malformed ErrLiteralMalformed
		lrange    ErrLiteralRange
		invalid   ErrOperandInvalid
		expr      ErrExpression
		count     ErrOperandCount
		shape     ErrOperandShape
		mnemonic  ErrMnemonicUnknown
		duplicate ErrLabelDuplicate
		unknown   ErrLabelUnknown
		orphan    ErrLabelOrphan
		disp      ErrDisplacement
	)

	switch {
	case err == nil:
		return KIND_UNKNOWN
	case errors.As(err, &malformed), errors.As(err, &lrange),
		errors.As(err, &invalid), errors.As(err, &expr):
		return KIND_MALFORMED_LITERAL
	case errors.As(err, &count), errors.As(err, &shape),
		errors.Is(err, ErrOperandEmpty):
		return KIND_OPERAND_SHAPE
	case errors.As(err, &mnemonic):
		return KIND_UNKNOWN_MNEMONIC
	case errors.As(err, &duplicate):
		return KIND_DUPLICATE_LABEL
	case errors.Is(err, ErrLabelEmpty):
		return KIND_EMPTY_LABEL_NAME
	case errors.As(err, &unknown):
		return KIND_UNKNOWN_LABEL
	case errors.Is(err, ErrAddressOverflow):
		return KIND_ADDRESS_OVERFLOW
	case errors.As(err, &disp):
		return KIND_DISPLACEMENT_OUT_OF_RANGE
	case errors.As(err, &orphan):
		return KIND_ORPHAN_LOCAL_LABEL
	}

	return KIND_UNKNOWN
}
