package isa

import (
	"iter"
)

// Mnemonic is an instruction name of the pixel VM.
type Mnemonic int

//go:generate go tool stringer -type=Mnemonic
const (
	PUSH       = Mnemonic(0)  // Push operand onto the stack.
	POP        = Mnemonic(1)  // Discard the top of the stack.
	DUP        = Mnemonic(2)  // Duplicate the top of the stack.
	ADD        = Mnemonic(3)  // a + b
	SUB        = Mnemonic(4)  // a - b
	MUL        = Mnemonic(5)  // a * b
	DIV        = Mnemonic(6)  // a / b
	SET_COLOUR = Mnemonic(7)  // R G B: Set the drawing colour.
	DRAW_PIXEL = Mnemonic(8)  // X Y: Plot a single pixel.
	DRAW_LINE  = Mnemonic(9)  // X1 Y1 X2 Y2: Horizontal or vertical line.
	DRAW_RECT  = Mnemonic(10) // X Y W H: Filled rectangle.
	JUMP       = Mnemonic(11) // TARGET
	JUMP_EQ    = Mnemonic(12) // A B
	JUMP_NE    = Mnemonic(13) // A B
	HALT       = Mnemonic(14) // Stop execution.
)

// MNEMONIC_COUNT is the number of mnemonics known to any profile.
const MNEMONIC_COUNT = int(HALT) + 1

// arity is the operand count of each mnemonic when every operand is
// carried inline, as the packed hex VM does.
var arity = [MNEMONIC_COUNT]int{
	PUSH:       1,
	SET_COLOUR: 3,
	DRAW_PIXEL: 2,
	DRAW_LINE:  4,
	DRAW_RECT:  4,
	JUMP:       1,
	JUMP_EQ:    2,
	JUMP_NE:    2,
}

// mnemonicMap maps source text names to mnemonics.
var mnemonicMap = func() (names map[string]Mnemonic) {
	names = make(map[string]Mnemonic, MNEMONIC_COUNT)
	for m := range Mnemonics() {
		names[m.String()] = m
	}
	return
}()

// Mnemonics returns an iterator over every known mnemonic.
func Mnemonics() iter.Seq[Mnemonic] {
	return func(yield func(m Mnemonic) bool) {
		for n := range MNEMONIC_COUNT {
			if !yield(Mnemonic(n)) {
				return
			}
		}
	}
}

// parseMnemonic converts a case-sensitive name into a Mnemonic.
func parseMnemonic(name string) (m Mnemonic, ok bool) {
	m, ok = mnemonicMap[name]
	return
}

// Valid returns true if the mnemonic is part of the enumeration.
func (m Mnemonic) Valid() bool {
	return m >= 0 && int(m) < MNEMONIC_COUNT
}

// Arity returns the number of inline operands of the mnemonic in the
// packed hex profile. Use Registry.Arity for a specific profile.
func (m Mnemonic) Arity() int {
	if !m.Valid() {
		return 0
	}
	return arity[m]
}

// Frame buffer dimensions the VM renders into.
const (
	FRAME_WIDTH  = 16
	FRAME_HEIGHT = 16
)
