package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/qrasm/isa"
)

// Instruction is a single parsed source line.
type Instruction struct {
	LineNo   int          // Source line number, 1 based.
	Words    []string     // Source words after expression expansion.
	Mnemonic isa.Mnemonic // Operation.
	Operands []int64      // Operands, in source order.
}

// String returns the canonical source text of the instruction.
func (inst Instruction) String() string {
	words := make([]string, 0, 1+len(inst.Operands))
	words = append(words, inst.Mnemonic.String())
	for _, value := range inst.Operands {
		words = append(words, strconv.FormatInt(value, 10))
	}
	return strings.Join(words, " ")
}

// Program is an ordered, immutable list of instructions validated
// against a profile.
type Program struct {
	Profile      isa.Profile
	Instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// String returns the canonical source text of the program.
func (prog *Program) String() string {
	if prog == nil {
		return ""
	}

	lines := make([]string, len(prog.Instructions))
	for n, inst := range prog.Instructions {
		lines[n] = inst.String()
	}
	return strings.Join(lines, "\n")
}
