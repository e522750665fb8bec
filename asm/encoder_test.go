package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoder(t *testing.T) {
	table := []struct {
		line     string
		expected []byte
	}{
		// Loads
		{"ld b, c", []byte{0x41}},
		{"ld a, (hl)", []byte{0x7e}},
		{"ld (hl), a", []byte{0x77}},
		{"LD A, [HL]", []byte{0x7e}},
		{"ld a, 5", []byte{0x3e, 0x05}},
		{"ld (hl), $ff", []byte{0x36, 0xff}},
		{"ld a, (bc)", []byte{0x0a}},
		{"ld a, [de]", []byte{0x1a}},
		{"ld a, (hl+)", []byte{0x2a}},
		{"ld a, (hli)", []byte{0x2a}},
		{"ld a, (hl-)", []byte{0x3a}},
		{"ld a, (hld)", []byte{0x3a}},
		{"ld (bc), a", []byte{0x02}},
		{"ld (de), a", []byte{0x12}},
		{"ld (hl+), a", []byte{0x22}},
		{"ld (hld), a", []byte{0x32}},
		{"ld a, ($c000)", []byte{0xfa, 0x00, 0xc0}},
		{"ld (0xc000), a", []byte{0xea, 0x00, 0xc0}},
		{"ld a, (c)", []byte{0xf2}},
		{"ld ($ff00 + c), a", []byte{0xe2}},
		{"ld bc, 1234h", []byte{0x01, 0x34, 0x12}},
		{"ld de, 0", []byte{0x11, 0x00, 0x00}},
		{"ld hl, %1", []byte{0x21, 0x01, 0x00}},
		{"ld sp, $fffe", []byte{0x31, 0xfe, 0xff}},
		{"ld sp, hl", []byte{0xf9}},
		{"ld ($c000), sp", []byte{0x08, 0x00, 0xc0}},
		{"ldi a, (hl)", []byte{0x2a}},
		{"ldi (hl), a", []byte{0x22}},
		{"ldd a, (hl)", []byte{0x3a}},
		{"ldd (hl), a", []byte{0x32}},
		{"ldh ($80), a", []byte{0xe0, 0x80}},
		{"ldh a, ($ff00+$44)", []byte{0xf0, 0x44}},
		{"ldh a, ($ff44)", []byte{0xf0, 0x44}},
		{"ldh (c), a", []byte{0xe2}},
		{"ldh a, (c)", []byte{0xf2}},

		// Arithmetic and logic
		{"add a, b", []byte{0x80}},
		{"add $10", []byte{0xc6, 0x10}},
		{"add hl, de", []byte{0x19}},
		{"add hl, sp", []byte{0x39}},
		{"add sp, 2", []byte{0xe8, 0x02}},
		{"adc a, c", []byte{0x89}},
		{"adc 1", []byte{0xce, 0x01}},
		{"sub d", []byte{0x92}},
		{"sub a, 3", []byte{0xd6, 0x03}},
		{"sbc a, e", []byte{0x9b}},
		{"sbc 4", []byte{0xde, 0x04}},
		{"and h", []byte{0xa4}},
		{"and $0f", []byte{0xe6, 0x0f}},
		{"xor a", []byte{0xaf}},
		{"xor 1", []byte{0xee, 0x01}},
		{"or l", []byte{0xb5}},
		{"or %1010", []byte{0xf6, 0x0a}},
		{"cp (hl)", []byte{0xbe}},
		{"cp a, 10", []byte{0xfe, 0x0a}},
		{"inc b", []byte{0x04}},
		{"inc a", []byte{0x3c}},
		{"inc (hl)", []byte{0x34}},
		{"inc bc", []byte{0x03}},
		{"inc hl", []byte{0x23}},
		{"inc sp", []byte{0x33}},
		{"dec c", []byte{0x0d}},
		{"dec de", []byte{0x1b}},
		{"dec sp", []byte{0x3b}},

		// Bit operations
		{"rlc b", []byte{0xcb, 0x00}},
		{"rrc c", []byte{0xcb, 0x09}},
		{"rl d", []byte{0xcb, 0x12}},
		{"rr e", []byte{0xcb, 0x1b}},
		{"sla h", []byte{0xcb, 0x24}},
		{"sra l", []byte{0xcb, 0x2d}},
		{"swap a", []byte{0xcb, 0x37}},
		{"srl (hl)", []byte{0xcb, 0x3e}},
		{"bit 3, a", []byte{0xcb, 0x5f}},
		{"res 0, b", []byte{0xcb, 0x80}},
		{"set 7, (hl)", []byte{0xcb, 0xfe}},

		// Stack and control
		{"push bc", []byte{0xc5}},
		{"push af", []byte{0xf5}},
		{"pop hl", []byte{0xe1}},
		{"pop af", []byte{0xf1}},
		{"ret", []byte{0xc9}},
		{"ret nz", []byte{0xc0}},
		{"ret c", []byte{0xd8}},
		{"rst 00h", []byte{0xc7}},
		{"rst 10h", []byte{0xd7}},
		{"rst 38h", []byte{0xff}},
		{"jp $150", []byte{0xc3, 0x50, 0x01}},
		{"jp hl", []byte{0xe9}},
		{"jp (hl)", []byte{0xe9}},
		{"jp nz, $1234", []byte{0xc2, 0x34, 0x12}},
		{"jp c, 0", []byte{0xda, 0x00, 0x00}},
		{"call $4000", []byte{0xcd, 0x00, 0x40}},
		{"call z, $4000", []byte{0xcc, 0x00, 0x40}},
		{"jr 2", []byte{0x18, 0x00}},
		{"jr nz, 0", []byte{0x20, 0xfe}},

		// No operands
		{"nop", []byte{0x00}},
		{"scf", []byte{0x37}},
		{"ccf", []byte{0x3f}},
		{"cpl", []byte{0x2f}},
		{"daa", []byte{0x27}},
		{"rla", []byte{0x17}},
		{"rra", []byte{0x1f}},
		{"rlca", []byte{0x07}},
		{"rrca", []byte{0x0f}},
		{"halt", []byte{0x76}},
		{"stop", []byte{0x10, 0x00}},
		{"ei", []byte{0xfb}},
		{"di", []byte{0xf3}},
		{"reti", []byte{0xd9}},

		// Data
		{"db 1, 2, $ff", []byte{0x01, 0x02, 0xff}},
		{"db 256", []byte{0x00}},
		{"dw $1234, 5", []byte{0x34, 0x12, 0x05, 0x00}},
	}

	for _, tc := range table {
		asm := &Assembler{}
		prog, err := asm.Assemble(strings.NewReader(tc.line), 0)
		if !assert.NoError(t, err, tc.line) {
			continue
		}
		assert.Equal(t, tc.expected, prog.Code, tc.line)
	}
}

func TestEncoder_Errors(t *testing.T) {
	table := []struct {
		line string
		kind Kind
	}{
		{"db 257", KIND_MALFORMED_LITERAL},
		{"ld a, $ffh", KIND_MALFORMED_LITERAL},
		{"dw $10000", KIND_MALFORMED_LITERAL},
		{"ld a, $(nosuch)", KIND_MALFORMED_LITERAL},
		{"ld a", KIND_OPERAND_SHAPE},
		{"ld a, b, c", KIND_OPERAND_SHAPE},
		{"ld a,", KIND_OPERAND_SHAPE},
		{"ld (hl), (hl)", KIND_OPERAND_SHAPE},
		{"ld b, (bc)", KIND_OPERAND_SHAPE},
		{"ld b, sp", KIND_OPERAND_SHAPE},
		{"ld 5, a", KIND_OPERAND_SHAPE},
		{"ldi a, b", KIND_OPERAND_SHAPE},
		{"ldh b, (c)", KIND_OPERAND_SHAPE},
		{"nop 1", KIND_OPERAND_SHAPE},
		{"stop 0", KIND_OPERAND_SHAPE},
		{"push sp", KIND_OPERAND_SHAPE},
		{"pop", KIND_OPERAND_SHAPE},
		{"inc af", KIND_OPERAND_SHAPE},
		{"inc", KIND_OPERAND_SHAPE},
		{"add hl, af", KIND_OPERAND_SHAPE},
		{"add b, c", KIND_OPERAND_SHAPE},
		{"sub b, c", KIND_OPERAND_SHAPE},
		{"and", KIND_OPERAND_SHAPE},
		{"rst 11h", KIND_OPERAND_SHAPE},
		{"rst $10", KIND_OPERAND_SHAPE},
		{"bit 8, a", KIND_OPERAND_SHAPE},
		{"bit x, a", KIND_OPERAND_SHAPE},
		{"set 1, bc", KIND_OPERAND_SHAPE},
		{"swap hl", KIND_OPERAND_SHAPE},
		{"ret p", KIND_OPERAND_SHAPE},
		{"ret z, c", KIND_OPERAND_SHAPE},
		{"jr xx, 0", KIND_OPERAND_SHAPE},
		{"jp", KIND_OPERAND_SHAPE},
		{"jp a", KIND_OPERAND_SHAPE},
		{"call 1, 2, 3", KIND_OPERAND_SHAPE},
		{"frob a", KIND_UNKNOWN_MNEMONIC},
		{"jp nowhere", KIND_UNKNOWN_LABEL},
		{"call nz, nowhere", KIND_UNKNOWN_LABEL},
		{"jr nowhere", KIND_UNKNOWN_LABEL},
		{"ld a, nowhere", KIND_MALFORMED_LITERAL},
		{"dw nowhere", KIND_MALFORMED_LITERAL},
		{"jr $1000", KIND_DISPLACEMENT_OUT_OF_RANGE},
	}

	for _, tc := range table {
		asm := &Assembler{}
		_, err := asm.Assemble(strings.NewReader(tc.line), 0)
		if !assert.Error(t, err, tc.line) {
			continue
		}
		assert.Equal(t, tc.kind, KindOf(err), "%v: %v", tc.line, err)
	}
}

func TestEncoder_LogicOffsets(t *testing.T) {
	assert := assert.New(t)

	// and, xor, or and cp are sub shifted by a fixed offset, for both the
	// register and the immediate forms.
	offsets := map[string]byte{"and": 0x10, "xor": 0x18, "or": 0x20, "cp": 0x28}

	for name, offset := range offsets {
		for reg, index := range reg8Map {
			asm := &Assembler{}
			prog, err := asm.Assemble(strings.NewReader(name+" "+reg), 0)
			assert.NoError(err)
			assert.Equal([]byte{aluSub + offset + byte(index)}, prog.Code, name+" "+reg)
		}

		asm := &Assembler{}
		prog, err := asm.Assemble(strings.NewReader(name+" 7"), 0)
		assert.NoError(err)
		assert.Equal([]byte{aluSubImm + offset, 7}, prog.Code, name)
	}
}

func TestEncoder_RegisterMoves(t *testing.T) {
	assert := assert.New(t)

	for dst, d := range reg8Map {
		for src, s := range reg8Map {
			if d == REG8_HL_IND && s == REG8_HL_IND {
				continue
			}
			line := "ld " + dst + ", " + src
			asm := &Assembler{}
			prog, err := asm.Assemble(strings.NewReader(line), 0)
			assert.NoError(err, line)
			assert.Equal([]byte{0x40 + byte(d)*8 + byte(s)}, prog.Code, line)
		}
	}
}

func TestMnemonics(t *testing.T) {
	assert := assert.New(t)

	names := Mnemonics()
	for _, name := range []string{"ld", "jr", "jp", "call", "ret", "rst", "bit", "stop", "db", "dw"} {
		assert.Contains(names, name)
	}
	assert.Len(names, len(encoders))
}
