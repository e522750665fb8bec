package asm

// encoder validates an instruction's operands, appends its bytes and
// returns the number of bytes written.
type encoder func(c *compilation, ops []string) (length int, err error)

// encoders maps mnemonics to their encoders.
var encoders map[string]encoder

func init() {
	encoders = map[string]encoder{
		"db": encodeDb,
		"dw": encodeDw,

		"ld":  encodeLd,
		"ldi": encodeLdHL(0x2a, 0x22),
		"ldd": encodeLdHL(0x3a, 0x32),
		"ldh": encodeLdh,

		"add": encodeAdd,
		"adc": encodeAlu(0x88, 0xce),
		"sub": encodeAlu(aluSub, aluSubImm),
		"sbc": encodeAlu(0x98, 0xde),
		"and": encodeLogic(0x10),
		"xor": encodeLogic(0x18),
		"or":  encodeLogic(0x20),
		"cp":  encodeLogic(0x28),

		"inc": encodeIncDec(0x04, 0x03, 0x33),
		"dec": encodeIncDec(0x05, 0x0b, 0x3b),

		"jr":   encodeJr,
		"jp":   encodeJp,
		"call": encodeCall,
		"ret":  encodeRet,
		"rst":  encodeRst,

		"push": encodeStack(0xc5),
		"pop":  encodeStack(0xc1),

		"nop":  encodeFixed(0x00),
		"scf":  encodeFixed(0x37),
		"ccf":  encodeFixed(0x3f),
		"cpl":  encodeFixed(0x2f),
		"daa":  encodeFixed(0x27),
		"rla":  encodeFixed(0x17),
		"rra":  encodeFixed(0x1f),
		"rlca": encodeFixed(0x07),
		"rrca": encodeFixed(0x0f),
		"halt": encodeFixed(0x76),
		"stop": encodeFixed(0x10, 0x00),
		"ei":   encodeFixed(0xfb),
		"di":   encodeFixed(0xf3),
		"reti": encodeFixed(0xd9),

		"rlc":  encodeShift(0x00),
		"rrc":  encodeShift(0x08),
		"rl":   encodeShift(0x10),
		"rr":   encodeShift(0x18),
		"sla":  encodeShift(0x20),
		"sra":  encodeShift(0x28),
		"swap": encodeShift(0x30),
		"srl":  encodeShift(0x38),

		"bit": encodeBit(0x40),
		"res": encodeBit(0x80),
		"set": encodeBit(0xc0),
	}
}

// Mnemonics returns the supported instruction names.
func Mnemonics() (names []string) {
	for name := range encoders {
		names = append(names, name)
	}
	return
}

const (
	aluSub    = 0x90 // sub r
	aluSubImm = 0xd6 // sub n
	cbPrefix  = 0xcb // Bit, rotate and shift prefix.
)

// none checks that an instruction was written without operands.
func (c *compilation) none(ops []string) (err error) {
	if !empty(ops) {
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("no operands")}
	}
	return
}

// arity checks the operand count of an instruction that needs operands.
func (c *compilation) arity(ops []string, count int) (err error) {
	if len(ops) == count && !empty(ops) {
		return
	}

	switch count {
	case 1:
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("exactly one operand")}
	default:
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("exactly %d operands", count)}
	}
	return
}

func (c *compilation) shape(word string, expect string) error {
	return ErrOperandShape{Mnemonic: c.mnemonic, Operand: word, Expect: expect}
}

func encodeFixed(codes ...byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.none(ops)
		if err != nil {
			return
		}
		c.emit(codes...)
		return len(codes), nil
	}
}

// encodeDb emits one byte per operand.
func encodeDb(c *compilation, ops []string) (length int, err error) {
	for _, op := range ops {
		err = c.emitByte(op)
		if err != nil {
			return
		}
		length++
	}
	return
}

// encodeDw emits one little-endian word per operand.
func encodeDw(c *compilation, ops []string) (length int, err error) {
	for _, op := range ops {
		err = c.emitWord(op, false)
		if err != nil {
			return
		}
		length += 2
	}
	return
}

// encodeLd covers the register, immediate and memory load forms.
func encodeLd(c *compilation, ops []string) (length int, err error) {
	err = c.arity(ops, 2)
	if err != nil {
		return
	}
	dst, src := ops[0], ops[1]

	if d, ok := reg8Map[dst]; ok {
		if s, ok := reg8Map[src]; ok {
			if d == REG8_HL_IND && s == REG8_HL_IND {
				err = c.shape(src, f("a register"))
				return
			}
			c.emit(0x40 + byte(d)*8 + byte(s))
			return 1, nil
		}

		if d == REG8_A {
			if code, ok := loadA[src]; ok {
				c.emit(code)
				return 1, nil
			}
			if isPortC(src) {
				c.emit(0xf2)
				return 1, nil
			}
			if isIndirect(src) {
				c.emit(0xfa)
				err = c.emitWord(unwrap(src), false)
				return 3, err
			}
		}

		if isIndirect(src) {
			err = c.shape(src, f("a register or value"))
			return
		}

		c.emit(0x06 + byte(d)*8)
		err = c.emitByte(src)
		return 2, err
	}

	if src == "a" {
		if code, ok := storeA[dst]; ok {
			c.emit(code)
			return 1, nil
		}
		if isPortC(dst) {
			c.emit(0xe2)
			return 1, nil
		}
		if isIndirect(dst) {
			c.emit(0xea)
			err = c.emitWord(unwrap(dst), false)
			return 3, err
		}
	}

	if dst == "sp" && src == "hl" {
		c.emit(0xf9)
		return 1, nil
	}

	if src == "sp" && isIndirect(dst) {
		c.emit(0x08)
		err = c.emitWord(unwrap(dst), false)
		return 3, err
	}

	if r, ok := reg16SP(dst); ok {
		c.emit(0x01 + byte(r)*16)
		err = c.emitWord(src, false)
		return 3, err
	}

	err = c.shape(dst, f("a load target"))
	return
}

// encodeLdHL encodes ldi and ldd, which only move between a and (hl).
func encodeLdHL(load, store byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.arity(ops, 2)
		if err != nil {
			return
		}

		switch {
		case ops[0] == "a" && ops[1] == "(hl)":
			c.emit(load)
		case ops[0] == "(hl)" && ops[1] == "a":
			c.emit(store)
		default:
			err = c.shape(ops[0]+","+ops[1], f("'a,(hl)' or '(hl),a'"))
			return
		}

		return 1, nil
	}
}

// encodeLdh encodes the high page loads.
func encodeLdh(c *compilation, ops []string) (length int, err error) {
	err = c.arity(ops, 2)
	if err != nil {
		return
	}

	var code byte
	var mem string

	switch {
	case isPortC(ops[0]) && ops[1] == "a":
		c.emit(0xe2)
		return 1, nil
	case ops[0] == "a" && isPortC(ops[1]):
		c.emit(0xf2)
		return 1, nil
	case isIndirect(ops[0]) && ops[1] == "a":
		code, mem = 0xe0, unwrap(ops[0])
	case ops[0] == "a" && isIndirect(ops[1]):
		code, mem = 0xf0, unwrap(ops[1])
	default:
		err = c.shape(ops[0]+","+ops[1], f("'(n),a' or 'a,(n)'"))
		return
	}

	c.emit(code)

	mem = reHighRam.ReplaceAllString(mem, "")
	value, ok, err := parseNumber(mem)
	if err != nil {
		return
	}
	if ok && value >= 0xff00 && value <= 0xffff {
		c.emit(byte(value - 0xff00))
		return 2, nil
	}

	err = c.emitByte(mem)
	return 2, err
}

// encodeAdd handles the 16-bit forms of add, and the a forms via encodeAlu.
func encodeAdd(c *compilation, ops []string) (length int, err error) {
	if len(ops) == 2 {
		switch ops[0] {
		case "hl":
			r, ok := reg16SP(ops[1])
			if !ok {
				err = c.shape(ops[1], f("bc, de, hl or sp"))
				return
			}
			c.emit(0x09 + byte(r)*16)
			return 1, nil
		case "sp":
			c.emit(0xe8)
			err = c.emitByte(ops[1])
			return 2, err
		case "a":
		default:
			err = c.shape(ops[0], f("a, hl or sp"))
			return
		}
	}

	return c.alu(ops, 0x80, 0xc6)
}

// alu encodes `op a,x` or `op x`, where x is an 8-bit register or value.
func (c *compilation) alu(ops []string, base byte, immediate byte) (length int, err error) {
	var src string

	switch len(ops) {
	case 1:
		src = ops[0]
	case 2:
		if ops[0] != "a" {
			err = c.shape(ops[0], f("a"))
			return
		}
		src = ops[1]
	default:
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("one or two operands")}
		return
	}

	if src == "" {
		err = ErrOperandEmpty
		return
	}

	if r, ok := reg8Map[src]; ok {
		c.emit(base + byte(r))
		return 1, nil
	}

	c.emit(immediate)
	err = c.emitByte(src)
	return 2, err
}

func encodeAlu(base byte, immediate byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		return c.alu(ops, base, immediate)
	}
}

// encodeLogic encodes and, xor, or and cp as an offset from sub.
func encodeLogic(offset byte) encoder {
	return encodeAlu(aluSub+offset, aluSubImm+offset)
}

// encodeIncDec encodes inc and dec over 8-bit registers, register pairs
// and sp.
func encodeIncDec(base8 byte, base16 byte, sp byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.arity(ops, 1)
		if err != nil {
			return
		}
		word := ops[0]

		if r, ok := reg8Map[word]; ok {
			c.emit(base8 + byte(r)*8)
			return 1, nil
		}

		if word == "sp" {
			c.emit(sp)
			return 1, nil
		}

		if r, ok := reg16SP(word); ok {
			c.emit(base16 + byte(r)*16)
			return 1, nil
		}

		err = c.shape(word, f("an 8-bit register, register pair or sp"))
		return
	}
}

// condition splits a control transfer into its condition and destination.
func (c *compilation) condition(ops []string) (cond Cond, conditional bool, dest string, err error) {
	switch {
	case len(ops) == 1 && !empty(ops):
		dest = ops[0]
	case len(ops) == 2:
		var ok bool
		cond, ok = condMap[ops[0]]
		if !ok {
			err = c.shape(ops[0], f("nz, z, nc or c"))
			return
		}
		conditional = true
		dest = ops[1]
	default:
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("one or two operands")}
	}

	return
}

func encodeJr(c *compilation, ops []string) (length int, err error) {
	cond, conditional, dest, err := c.condition(ops)
	if err != nil {
		return
	}

	if conditional {
		c.emit(0x20 + byte(cond)*8)
	} else {
		c.emit(0x18)
	}

	err = c.emitRelative(dest)
	return 2, err
}

func encodeJp(c *compilation, ops []string) (length int, err error) {
	cond, conditional, dest, err := c.condition(ops)
	if err != nil {
		return
	}

	switch {
	case conditional:
		c.emit(0xc2 + byte(cond)*8)
	case dest == "hl", dest == "(hl)":
		c.emit(0xe9)
		return 1, nil
	default:
		c.emit(0xc3)
	}

	err = c.emitWord(dest, true)
	return 3, err
}

func encodeCall(c *compilation, ops []string) (length int, err error) {
	cond, conditional, dest, err := c.condition(ops)
	if err != nil {
		return
	}

	if conditional {
		c.emit(0xc4 + byte(cond)*8)
	} else {
		c.emit(0xcd)
	}

	err = c.emitWord(dest, true)
	return 3, err
}

func encodeRet(c *compilation, ops []string) (length int, err error) {
	if len(ops) != 1 {
		err = ErrOperandCount{Mnemonic: c.mnemonic, Expect: f("at most one operand")}
		return
	}

	if empty(ops) {
		c.emit(0xc9)
		return 1, nil
	}

	cond, ok := condMap[ops[0]]
	if !ok {
		err = c.shape(ops[0], f("nz, z, nc or c"))
		return
	}

	c.emit(0xc0 + byte(cond)*8)
	return 1, nil
}

func encodeRst(c *compilation, ops []string) (length int, err error) {
	err = c.arity(ops, 1)
	if err != nil {
		return
	}

	if !reRst.MatchString(ops[0]) {
		err = c.shape(ops[0], f("00h, 08h, 10h, 18h, 20h, 28h, 30h or 38h"))
		return
	}

	vector, _, err := parseNumber(ops[0])
	if err != nil {
		return
	}

	c.emit(0xc7 + byte(vector))
	return 1, nil
}

// encodeStack encodes push and pop.
func encodeStack(base byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.arity(ops, 1)
		if err != nil {
			return
		}

		r, ok := reg16Map[ops[0]]
		if !ok {
			err = c.shape(ops[0], f("bc, de, hl or af"))
			return
		}

		c.emit(base + byte(r)*16)
		return 1, nil
	}
}

// encodeShift encodes the prefixed rotate and shift instructions.
func encodeShift(base byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.arity(ops, 1)
		if err != nil {
			return
		}

		r, ok := reg8Map[ops[0]]
		if !ok {
			err = c.shape(ops[0], f("an 8-bit register"))
			return
		}

		c.emit(cbPrefix, base+byte(r))
		return 2, nil
	}
}

// encodeBit encodes bit, res and set.
func encodeBit(base byte) encoder {
	return func(c *compilation, ops []string) (length int, err error) {
		err = c.arity(ops, 2)
		if err != nil {
			return
		}

		bit, ok, err := parseNumber(ops[0])
		if err != nil {
			return
		}
		if !ok || bit > 7 {
			err = c.shape(ops[0], f("a bit number 0-7"))
			return
		}

		r, ok := reg8Map[ops[1]]
		if !ok {
			err = c.shape(ops[1], f("an 8-bit register"))
			return
		}

		c.emit(cbPrefix, base+byte(bit)*8+byte(r))
		return 2, nil
	}
}
