package asm

import (
	"strings"
)

// Token is a normalised source line: a mnemonic and its operands.
//
// An instruction written without operands has a single empty operand.
type Token struct {
	Mnemonic string
	Operands []string
}

var bracketReplacer = strings.NewReplacer("[", "(", "]", ")")

// fields normalises a source line into whitespace separated words.
//
// Brackets are read as parentheses, case is folded and anything after `;`
// is a comment.
func fields(line string) []string {
	line = strings.ToLower(bracketReplacer.Replace(line))
	line, _, _ = strings.Cut(line, ";")

	return strings.Fields(line)
}

// operandField joins the words after the mnemonic; whitespace inside the
// operand field is insignificant.
func operandField(words []string) string {
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words[1:], "")
}

// tokenize builds a Token from a mnemonic and its operand field.
func tokenize(mnemonic string, field string) Token {
	return Token{
		Mnemonic: mnemonic,
		Operands: strings.Split(field, ","),
	}
}

// Empty reports whether the token was written without operands.
func (tok Token) Empty() bool {
	return empty(tok.Operands)
}

func empty(ops []string) bool {
	return len(ops) == 1 && ops[0] == ""
}

// splitLabels separates the label definitions at the start of a line from
// the instruction words that follow them.
func splitLabels(words []string) (labels []string, rest []string) {
	n := 0
	for n < len(words) && isLabelWord(words[n]) {
		n++
	}
	return words[:n], words[n:]
}

// Normalize converts a source line into a Token, ignoring any label
// definitions at the start of the line.
func Normalize(line string) Token {
	_, words := splitLabels(fields(line))
	if len(words) == 0 {
		return Token{}
	}

	return tokenize(words[0], operandField(words))
}

// isLabelWord reports whether a word defines a label.
func isLabelWord(word string) bool {
	return strings.HasPrefix(word, ".") || strings.Contains(word, ":")
}
