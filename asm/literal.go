package asm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimal = regexp.MustCompile(`^[0-9]+$`)
	reHex     = regexp.MustCompile(`^(\$|hex::?|0x)?([0-9a-f]+)(h)?$`)
	reBin     = regexp.MustCompile(`^(%|bin::?|0b)?([01]+)(b)?$`)
)

// affixed matches a prefix/digits/suffix pattern, and reports whether
// exactly one of prefix or suffix is present.
func affixed(re *regexp.Regexp, word string) (digits string, matched bool, exclusive bool) {
	m := re.FindStringSubmatch(word)
	if m == nil {
		return
	}

	return m[2], true, (m[1] != "") != (m[3] != "")
}

// parseNumber classifies a lower-cased operand.
//
// When ok is false and err is nil the word is not shaped like a number and
// should be read as a label.
func parseNumber(word string) (value int, ok bool, err error) {
	var v64 uint64

	if reDecimal.MatchString(word) {
		v64, err = strconv.ParseUint(word, 10, 32)
		if err != nil {
			err = ErrLiteralMalformed(word)
			return
		}
		return int(v64), true, nil
	}

	hex, hexMatch, hexOnly := affixed(reHex, word)
	if hexOnly {
		v64, err = strconv.ParseUint(hex, 16, 32)
		if err != nil {
			err = ErrLiteralMalformed(word)
			return
		}
		return int(v64), true, nil
	}

	bin, binMatch, binOnly := affixed(reBin, word)
	if binOnly {
		v64, err = strconv.ParseUint(bin, 2, 32)
		if err != nil {
			err = ErrLiteralMalformed(word)
			return
		}
		return int(v64), true, nil
	}

	// A prefix and a suffix together is a broken number, not a label.
	if (hexMatch && hasAffixes(reHex, word)) || (binMatch && hasAffixes(reBin, word)) {
		err = ErrLiteralMalformed(word)
		return
	}

	return
}

func hasAffixes(re *regexp.Regexp, word string) bool {
	m := re.FindStringSubmatch(word)
	return m != nil && m[1] != "" && m[3] != ""
}

// ParseLiteral parses a decimal, hexadecimal or binary literal.
//
// Hexadecimal literals take exactly one of the prefixes `$`, `hex:`, `hex::`,
// `0x` or the suffix `h`. Binary literals take exactly one of `%`, `bin:`,
// `bin::`, `0b` or the suffix `b`. Case is not significant.
func ParseLiteral(text string) (value int, err error) {
	word := strings.ToLower(strings.TrimSpace(text))

	value, ok, err := parseNumber(word)
	if err != nil {
		return
	}
	if !ok {
		err = ErrLiteralMalformed(text)
		return
	}

	return
}

// ParseBase parses a base offset in the hexadecimal literal grammar.
//
// A bare run of hex digits is also accepted.
func ParseBase(text string) (base uint16, err error) {
	word := strings.ToLower(strings.TrimSpace(text))

	digits, matched, exclusive := affixed(reHex, word)
	if !matched || (!exclusive && digits != word) {
		err = ErrBaseOffset(text)
		return
	}

	v64, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		err = ErrBaseOffset(text)
		return
	}

	base = uint16(v64)
	return
}

// byteLiteral range checks a literal destined for a single byte.
//
// 256 is accepted and wraps to zero.
func byteLiteral(word string, value int) (b byte, err error) {
	if value < 0 || value > 256 {
		err = ErrLiteralRange{Text: word, Bits: 8}
		return
	}

	return byte(value), nil
}

// wordLiteral range checks a literal destined for a little-endian word.
func wordLiteral(word string, value int) (lo, hi byte, err error) {
	if value < 0 || value > 0xffff {
		err = ErrLiteralRange{Text: word, Bits: 16}
		return
	}

	return byte(value % 256), byte(value / 256), nil
}
