// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/qrasm/isa"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"WIDTH":  strconv.Itoa(isa.FRAME_WIDTH),
	"HEIGHT": strconv.Itoa(isa.FRAME_HEIGHT),
}

// reExpression matches a $(...) compile time expression.
var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler parses pixel VM source text. An Assembler holds the equates
// of the run in progress, so it must not be shared between goroutines.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Strict  bool        // If set, operand counts must match the profile arity.
	Macros  bool        // If set, enables comments, equates and $(...) expressions.
	Profile isa.Profile // Profile whose registry validates mnemonics.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate for
// all following runs. Equates only apply when Macros is set.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of an operand word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if asm.Macros {
		equate, ok := asm.Equate[word]
		if ok {
			word = equate
		}
	}

	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOutOfRange{Word: word, Max: asm.Profile.OperandMax()}
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	return
}

// evaluate does compile-time $(...) evaluations.
func (asm *Assembler) evaluate(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 10, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	defer func() {
		if err != nil {
			err = ErrParseExpression{Expr: expr, Err: err}
		}
	}()

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseNumber(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseNumber(st_rc.String())
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrOutOfRange{Word: st_int.String(), Max: asm.Profile.OperandMax()}
		return
	}

	return
}

// expand replaces every $(...) in the line by its decimal value.
func (asm *Assembler) expand(line string) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.evaluate(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// define handles `.equ NAME VALUE`.
func (asm *Assembler) define(args []string) (err error) {
	if len(args) != 2 {
		err = ErrEquateSyntax
		return
	}

	name, value := args[0], args[1]
	_, ok := asm.Equate[name]
	if ok {
		err = ErrEquateDuplicate
		return
	}

	equate, ok := asm.Equate[value]
	if ok {
		value = equate
	}
	asm.Equate[name] = value

	return
}

// parseLine parses a single line of source text. The instruction is
// only valid if ok is set.
func (asm *Assembler) parseLine(reg *isa.Registry, text string, lineno int) (inst Instruction, ok bool, err error) {
	line := text
	if asm.Macros {
		asm.Equate["LINENO"] = strconv.Itoa(lineno)

		line, _, _ = strings.Cut(line, ";")
		line, err = asm.expand(line)
		if err != nil {
			return
		}
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ NAME VALUE
	if asm.Macros && words[0] == ".equ" {
		err = asm.define(words[1:])
		return
	}

	mnemonic, _, err := reg.Lookup(words[0])
	if err != nil {
		return
	}

	operands := make([]int64, 0, len(words)-1)
	for _, word := range words[1:] {
		var value int64
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
		operands = append(operands, value)
	}

	if asm.Strict {
		want := reg.Arity(mnemonic)
		if len(operands) != want {
			err = ErrOperandCount{Mnemonic: mnemonic, Want: want, Got: len(operands)}
			return
		}
	}

	inst = Instruction{
		LineNo:   lineno,
		Words:    words,
		Mnemonic: mnemonic,
		Operands: operands,
	}
	ok = true

	return
}

// Parse parses an input stream into a Program. Any error aborts the
// whole run, and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reg := asm.Profile.Registry()
	if reg == nil {
		err = isa.ErrProfile(asm.Profile.String())
		return
	}

	asm.Equate = nil
	if asm.Macros {
		asm.Equate = maps.Clone(sysEquate)
		maps.Copy(asm.Equate, asm.predefine)
	}

	scanner := bufio.NewScanner(input)

	var instructions []Instruction
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		inst, ok, perr := asm.parseLine(reg, text, lineno)
		if perr != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: perr}
			return
		}
		if ok {
			instructions = append(instructions, inst)
		}
	}

	serr := scanner.Err()
	if serr != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: serr}
		return
	}

	prog = &Program{
		Profile:      asm.Profile,
		Instructions: instructions,
	}

	if asm.Verbose {
		log.Print(spew.Sdump(prog))
	}

	return
}

// Assemble parses the input and encodes it under the assembler's profile.
func (asm *Assembler) Assemble(input io.Reader) (payload string, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	enc := &Encoder{Profile: asm.Profile, Verbose: asm.Verbose}
	payload, err = enc.Encode(prog)

	return
}
