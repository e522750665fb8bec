package asm

import (
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// reParen matches `$(...)` with at most one level of nested parentheses, so
// the `)` closing a memory operand is left alone.
var reParen = regexp.MustCompile(`\$\((?:[^()$]|\([^()$]*\))*\)`)

// parenEval does compile-time $(...) evaluations.
func (c *compilation) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"lineno": starlark.MakeInt(c.lineno),
	}
	for key, str := range c.predefine {
		num, ok, _ := parseNumber(strings.ToLower(str))
		if !ok {
			// Non-numeric predefines are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt(num)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// expand replaces every $(...) in an operand field with its decimal value.
func (c *compilation) expand(text string) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := c.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.Itoa(value)
	})

	return
}
