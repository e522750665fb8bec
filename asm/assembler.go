// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
)

// Assembler is a two-pass assembler for the gbz80 instruction subset.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Constants visible to $(...) expressions.
}

// Predefine defines a new constant or redefines an existing constant.
func (asm *Assembler) Predefine(name string, value string) {
	name = strings.ToLower(name)
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// maxLineLength bounds a single source line; long db and dw lists are
// legal.
const maxLineLength = 1024 * 1024

// compilation holds the state of a single Assemble call.
type compilation struct {
	*Assembler

	base     uint16
	cursor   int    // Address of the next instruction.
	lineno   int    // Line being assembled.
	mnemonic string // Instruction being encoded.
	global   string // Enclosing global label for local labels.

	symbols SymbolTable
	stream  Stream
	origin  []int // Source line of each stream slot.
}

// Assemble assembles source text into a program anchored at base.
//
// The first error aborts assembly and is returned as an *ErrSyntax.
func (asm *Assembler) Assemble(input io.Reader, base uint16) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, maxLineLength)

	var line string
	var lines []string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	c := &compilation{
		Assembler: asm,
		base:      base,
		cursor:    int(base),
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1
		lines = append(lines, line)
		c.lineno = lineno

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		err = c.parseLine(line)
		if err != nil {
			return
		}

		if c.cursor > 0xffff {
			err = ErrAddressOverflow
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The failed read is the line after the last one assembled.
		lineno += 1
		line = ""
		return
	}

	// Final linking of label references.
	for n := range c.stream {
		ref := c.stream[n].Ref
		if ref == nil {
			continue
		}
		err = c.resolve(n)
		if err != nil {
			lineno = ref.LineNo
			line = lines[lineno-1]
			return
		}
	}

	if asm.Verbose {
		log.Printf("%d bytes, %d labels\n", len(c.stream), c.symbols.Len())
	}

	prog = &Program{
		Base:   base,
		Code:   c.stream.Bytes(),
		Lines:  slices.Clone(c.origin),
		Labels: slices.Collect(c.symbols.Labels()),
	}

	return
}

// parseLine runs the first pass over a single source line.
func (c *compilation) parseLine(line string) (err error) {
	labels, words := splitLabels(fields(line))

	for _, word := range labels {
		err = c.defineLabel(word)
		if err != nil {
			return
		}
	}

	if len(words) == 0 {
		return
	}

	field, err := c.expand(operandField(words))
	if err != nil {
		return
	}
	tok := tokenize(words[0], field)

	encode, ok := encoders[tok.Mnemonic]
	if !ok {
		err = ErrMnemonicUnknown(tok.Mnemonic)
		return
	}

	c.mnemonic = tok.Mnemonic
	start := len(c.stream)

	length, err := encode(c, tok.Operands)
	if err != nil {
		return
	}

	if length != len(c.stream)-start {
		err = ErrEncoding{Mnemonic: tok.Mnemonic, Reported: length, Emitted: len(c.stream) - start}
		return
	}

	c.cursor += length

	return
}

// defineLabel records a global (`name:`) or local (`.name`) label at the
// current address.
func (c *compilation) defineLabel(word string) (err error) {
	name := strings.ReplaceAll(word, ":", "")

	local := strings.HasPrefix(name, ".")
	switch {
	case name == "", name == ".":
		err = ErrLabelEmpty
		return
	case local && c.global == "":
		err = ErrLabelOrphan(name)
		return
	case local:
		name = c.global + name
	}

	err = c.symbols.Define(name, uint16(c.cursor))
	if err != nil {
		return
	}

	if !local {
		c.global = name
	}

	if c.Verbose {
		log.Printf("label %v = $%04x\n", name, c.cursor)
	}

	return
}

// resolve replaces the reference in stream slot n with its value.
func (c *compilation) resolve(n int) (err error) {
	entry := &c.stream[n]
	ref := entry.Ref

	address, ok := c.symbols.Lookup(ref.Symbol)
	if !ok {
		if ref.Branch {
			err = ErrLabelUnknown(ref.Symbol)
		} else {
			err = ErrOperandInvalid(ref.Symbol)
		}
		return
	}

	here := int(c.base) + n

	switch {
	case ref.Width == 2:
		entry.Value = byte(address % 256)
		c.stream[n+1].Value = byte(address / 256)
	case ref.Relative():
		var disp int
		disp, err = displacement(here, int(address))
		if err != nil {
			return
		}
		entry.Value = byte(disp)
	default:
		entry.Value = byte(address % 256)
	}

	if c.Verbose {
		log.Printf("link %v = $%04x at $%04x\n", ref.Symbol, address, here)
	}

	entry.Ref = nil

	return
}

// displacement encodes a jr offset stored at address here.
func displacement(here int, target int) (disp int, err error) {
	disp = target - (here + 1)
	if disp < -128 || disp > 127 {
		err = ErrDisplacement{From: uint16(here - 1), To: target}
		return
	}

	if disp < 0 {
		disp += 256
	}

	return
}

// here is the address of the next stream slot.
func (c *compilation) here() int {
	return int(c.base) + len(c.stream)
}

// emit appends resolved bytes.
func (c *compilation) emit(codes ...byte) {
	for _, code := range codes {
		c.stream = append(c.stream, Entry{Value: code})
		c.origin = append(c.origin, c.lineno)
	}
}

// qualify prefixes a local label reference with its enclosing global label.
func (c *compilation) qualify(word string) (symbol string, err error) {
	if !strings.HasPrefix(word, ".") {
		symbol = word
		return
	}

	if c.global == "" {
		err = ErrLabelOrphan(word)
		return
	}

	symbol = c.global + word
	return
}

// reference appends a placeholder for a label, plus a filler slot for words.
func (c *compilation) reference(width int, word string, branch bool) (err error) {
	if isReserved(word) || isIndirect(word) {
		err = ErrOperandShape{Mnemonic: c.mnemonic, Operand: word, Expect: f("a value or label")}
		return
	}

	symbol, err := c.qualify(word)
	if err != nil {
		return
	}

	ref := &Reference{
		Width:  width,
		Symbol: symbol,
		Branch: branch,
		LineNo: c.lineno,
	}
	c.stream = append(c.stream, Entry{Ref: ref})
	c.origin = append(c.origin, c.lineno)

	if width == 2 {
		c.emit(0)
	}

	return
}

// emitByte appends an 8-bit literal or a 1-byte label reference.
func (c *compilation) emitByte(word string) (err error) {
	if word == "" {
		err = ErrOperandEmpty
		return
	}

	value, ok, err := parseNumber(word)
	if err != nil {
		return
	}
	if !ok {
		return c.reference(1, word, false)
	}

	b, err := byteLiteral(word, value)
	if err != nil {
		return
	}
	c.emit(b)

	return
}

// emitWord appends a 16-bit literal or a 2-byte label reference.
func (c *compilation) emitWord(word string, branch bool) (err error) {
	if word == "" {
		err = ErrOperandEmpty
		return
	}

	value, ok, err := parseNumber(word)
	if err != nil {
		return
	}
	if !ok {
		return c.reference(2, word, branch)
	}

	lo, hi, err := wordLiteral(word, value)
	if err != nil {
		return
	}
	c.emit(lo, hi)

	return
}

// emitRelative appends a jr displacement to a literal address or label.
func (c *compilation) emitRelative(word string) (err error) {
	if word == "" {
		err = ErrOperandEmpty
		return
	}

	value, ok, err := parseNumber(word)
	if err != nil {
		return
	}
	if !ok {
		return c.reference(1, word, true)
	}

	if value > 0xffff {
		err = ErrLiteralRange{Text: word, Bits: 16}
		return
	}

	disp, err := displacement(c.here(), value)
	if err != nil {
		return
	}
	c.emit(byte(disp))

	return
}

// isReserved reports whether a word names a register or condition.
func isReserved(word string) bool {
	if _, ok := reg8Map[word]; ok {
		return true
	}
	if _, ok := reg16Map[word]; ok {
		return true
	}
	if _, ok := condMap[word]; ok {
		return true
	}
	return word == "sp"
}
