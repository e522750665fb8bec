// Package asm implements a two-pass assembler for the gbz80 (Sharp LR35902)
// instruction subset.
//
// The first pass normalises each source line into a mnemonic and its
// operands, records label definitions, and encodes instructions into a byte
// stream in which label references are left as placeholders. The second pass
// resolves every placeholder into an absolute address or a signed relative
// displacement.
//
// Labels are either global (`name:`) or local to the nearest preceding
// global label (`.name`). Numeric operands may be written in decimal,
// hexadecimal (`$ff`, `0xff`, `hex:ff`, `ffh`) or binary (`%101`, `0b101`,
// `bin:101`, `101b`), and `$(...)` operands are evaluated at assembly time.
package asm
