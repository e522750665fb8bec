package asm

import (
	"regexp"
)

// Reg8 is an 8-bit register operand, in encoding order.
type Reg8 int

const (
	REG8_B      = Reg8(0) // b
	REG8_C      = Reg8(1) // c
	REG8_D      = Reg8(2) // d
	REG8_E      = Reg8(3) // e
	REG8_H      = Reg8(4) // h
	REG8_L      = Reg8(5) // l
	REG8_HL_IND = Reg8(6) // (hl)
	REG8_A      = Reg8(7) // a
)

var reg8Map = map[string]Reg8{
	"b":    REG8_B,
	"c":    REG8_C,
	"d":    REG8_D,
	"e":    REG8_E,
	"h":    REG8_H,
	"l":    REG8_L,
	"(hl)": REG8_HL_IND,
	"a":    REG8_A,
}

// Reg16 is a 16-bit register pair operand, in encoding order.
type Reg16 int

const (
	REG16_BC = Reg16(0) // bc
	REG16_DE = Reg16(1) // de
	REG16_HL = Reg16(2) // hl
	REG16_AF = Reg16(3) // af
)

var reg16Map = map[string]Reg16{
	"bc": REG16_BC,
	"de": REG16_DE,
	"hl": REG16_HL,
	"af": REG16_AF,
}

// Cond is a branch condition, in encoding order.
type Cond int

const (
	COND_NZ = Cond(0) // nz
	COND_Z  = Cond(1) // z
	COND_NC = Cond(2) // nc
	COND_C  = Cond(3) // c
)

var condMap = map[string]Cond{
	"nz": COND_NZ,
	"z":  COND_Z,
	"nc": COND_NC,
	"c":  COND_C,
}

// reg16SP looks up a register pair where the fourth slot is sp, not af.
func reg16SP(word string) (reg Reg16, ok bool) {
	if word == "sp" {
		return REG16_AF, true
	}

	reg, ok = reg16Map[word]
	if reg == REG16_AF {
		ok = false
	}

	return
}

// Memory operands addressed through a register.
var (
	loadA = map[string]byte{
		"(bc)":  0x0a,
		"(de)":  0x1a,
		"(hl+)": 0x2a,
		"(hli)": 0x2a,
		"(hl-)": 0x3a,
		"(hld)": 0x3a,
	}
	storeA = map[string]byte{
		"(bc)":  0x02,
		"(de)":  0x12,
		"(hl+)": 0x22,
		"(hli)": 0x22,
		"(hl-)": 0x32,
		"(hld)": 0x32,
	}
)

var (
	rePortC   = regexp.MustCompile(`^\(((\$|hex::?|0x)?ff00h?\+)?c\)$`)
	reHighRam = regexp.MustCompile(`^(\$|hex::?|0x)?ff00h?\+`)
	reRst     = regexp.MustCompile(`^[0-3][08]h$`)
)

// isPortC matches `(c)` and `($ff00+c)`.
func isPortC(word string) bool {
	return rePortC.MatchString(word)
}

// isIndirect matches a parenthesised memory operand.
func isIndirect(word string) bool {
	return len(word) >= 2 && word[0] == '(' && word[len(word)-1] == ')'
}

// unwrap strips the parentheses from a memory operand.
func unwrap(word string) string {
	return word[1 : len(word)-1]
}
