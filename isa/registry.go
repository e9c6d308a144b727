package isa

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/qrasm/internal"
)

// Opcode is the numeric code of a mnemonic within a profile.
// Zero is never assigned.
type Opcode uint8

// Instruction groups, in opcode order.
var (
	groupCore = []Mnemonic{
		PUSH, POP, DUP,
		ADD, SUB, MUL, DIV,
		SET_COLOUR, DRAW_PIXEL, DRAW_LINE, DRAW_RECT,
	}
	groupJump = []Mnemonic{JUMP, JUMP_EQ, JUMP_NE}
	groupHalt = []Mnemonic{HALT}
)

// stackArity is the operand count of the fixed width binary VM, which
// only fetches inline operands for PUSH and SET_COLOUR. The drawing
// primitives pop their coordinates from the stack.
func stackArity(m Mnemonic) int {
	switch m {
	case PUSH:
		return 1
	case SET_COLOUR:
		return 3
	}
	return 0
}

var registries = [PROFILE_COUNT]*Registry{
	PROFILE_HEX: newRegistry(PROFILE_HEX, Mnemonic.Arity, internal.Concat(
		slices.Values(groupCore),
		slices.Values(groupJump),
		slices.Values(groupHalt),
	)),
	PROFILE_BINARY: newRegistry(PROFILE_BINARY, stackArity, internal.Concat(
		slices.Values(groupCore),
		slices.Values(groupHalt),
	)),
}

// Registry is the immutable mnemonic to opcode table of a profile.
// It is safe for concurrent use.
type Registry struct {
	profile  Profile
	opcode   [MNEMONIC_COUNT]Opcode // Zero if absent from the profile.
	arity    [MNEMONIC_COUNT]int    // Inline operand count.
	mnemonic []Mnemonic             // Indexed by opcode - 1.
}

// newRegistry assigns opcodes 1, 2, 3... in the order of table.
func newRegistry(profile Profile, arity func(Mnemonic) int, table iter.Seq[Mnemonic]) (reg *Registry) {
	reg = &Registry{profile: profile}

	limit := (1 << profile.OpcodeBits()) - 1
	for m := range table {
		if reg.opcode[m] != 0 {
			panic(fmt.Sprintf("isa: %v: %v assigned twice", profile, m))
		}
		reg.mnemonic = append(reg.mnemonic, m)
		if len(reg.mnemonic) > limit {
			panic(fmt.Sprintf("isa: %v: opcode space exhausted at %v", profile, m))
		}
		reg.opcode[m] = Opcode(len(reg.mnemonic))
		reg.arity[m] = arity(m)
	}

	return
}

// Profile returns the encoding profile of the registry.
func (reg *Registry) Profile() Profile {
	return reg.profile
}

// Len returns the number of mnemonics in the registry.
func (reg *Registry) Len() int {
	return len(reg.mnemonic)
}

// Opcode returns the opcode of a mnemonic, failing with ErrMnemonicUnknown
// if the mnemonic is not part of the profile.
func (reg *Registry) Opcode(m Mnemonic) (op Opcode, err error) {
	if m.Valid() {
		op = reg.opcode[m]
	}
	if op == 0 {
		err = ErrMnemonic{Name: m.String(), Profile: reg.profile}
	}
	return
}

// Lookup resolves a source text name to its mnemonic and opcode.
func (reg *Registry) Lookup(name string) (m Mnemonic, op Opcode, err error) {
	m, ok := parseMnemonic(name)
	if !ok {
		err = ErrMnemonic{Name: name, Profile: reg.profile}
		return
	}

	op, err = reg.Opcode(m)
	return
}

// Arity returns the number of inline operands the profile's VM fetches
// after the mnemonic, or zero if the mnemonic is not in the profile.
func (reg *Registry) Arity(m Mnemonic) int {
	if !m.Valid() {
		return 0
	}
	return reg.arity[m]
}

// Mnemonic returns the mnemonic assigned to an opcode.
func (reg *Registry) Mnemonic(op Opcode) (m Mnemonic, ok bool) {
	if op == 0 || int(op) > len(reg.mnemonic) {
		return
	}

	m = reg.mnemonic[op-1]
	ok = true
	return
}

// All returns an iterator over the table in opcode order.
func (reg *Registry) All() iter.Seq2[Mnemonic, Opcode] {
	return func(yield func(m Mnemonic, op Opcode) bool) {
		for n, m := range reg.mnemonic {
			if !yield(m, Opcode(n+1)) {
				return
			}
		}
	}
}
