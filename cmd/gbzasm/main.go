// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/gbzasm/asm"
	"github.com/ezrec/gbzasm/items"
)

func main() {
	var compile string
	var base string
	var output string
	var format string
	var table string
	var verbose bool

	asmr := &asm.Assembler{}

	flag.StringVar(&compile, "c", "-", "source file to assemble")
	flag.StringVar(&base, "b", "0", "base offset, in hexadecimal")
	flag.StringVar(&output, "o", "-", "output file")
	flag.StringVar(&format, "f", "items", "output format: items, hex or bin")
	flag.StringVar(&table, "t", "", "item table .toml file (default built-in)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "predefine NAME=VALUE for $(...) expressions", func(def string) error {
		name, value, _ := strings.Cut(def, "=")
		asmr.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	offset, err := asm.ParseBase(base)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	asmr.Verbose = verbose
	prog, err := asmr.Assemble(inf, offset)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	} else if format == "bin" && term.IsTerminal(int(os.Stdout.Fd())) {
		// Raw bytes are unreadable on a terminal.
		format = "hex"
	}

	switch format {
	case "bin":
		_, err = ouf.Write(prog.Code)
	case "hex":
		err = prog.Dump(ouf)
	case "items":
		tab := items.DefaultTable()
		if len(table) != 0 {
			tab, err = loadTable(table)
			if err != nil {
				log.Fatalf("%v: %v", table, err)
			}
		}
		_, err = items.Render(prog, tab).WriteTo(ouf)
	default:
		log.Fatalf("%v: unknown format %v", os.Args[0], format)
	}

	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}

func loadTable(path string) (table *items.Table, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return items.LoadTable(inf)
}
