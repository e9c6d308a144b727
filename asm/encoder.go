package asm

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ezrec/qrasm/isa"
)

// EncoderState is the run state of an Encoder.
type EncoderState int32

//go:generate go tool stringer -linecomment -type=EncoderState
const (
	STATE_IDLE     = EncoderState(0) // idle
	STATE_ENCODING = EncoderState(1) // encoding
)

// Encoder serializes programs into payload strings.
type Encoder struct {
	Profile isa.Profile // Payload layout.
	Verbose bool        // If set, logs every emitted fragment.

	state atomic.Int32
}

// NewEncoder creates a new encoder for a profile.
func NewEncoder(profile isa.Profile) (enc *Encoder) {
	enc = &Encoder{Profile: profile}
	return
}

// State returns the current run state.
func (enc *Encoder) State() EncoderState {
	return EncoderState(enc.state.Load())
}

// Encode serializes a whole program. On any error the payload is empty.
func (enc *Encoder) Encode(prog *Program) (payload string, err error) {
	if !enc.state.CompareAndSwap(int32(STATE_IDLE), int32(STATE_ENCODING)) {
		err = ErrEncoderBusy
		return
	}
	defer enc.state.Store(int32(STATE_IDLE))

	reg := enc.Profile.Registry()
	if reg == nil {
		err = isa.ErrProfile(enc.Profile.String())
		return
	}

	if prog == nil {
		return
	}

	var out strings.Builder
	for _, inst := range prog.Instructions {
		var fragment string
		fragment, err = enc.fragment(reg, inst)
		if err != nil {
			err = &ErrSyntax{LineNo: inst.LineNo, Line: inst.String(), Err: err}
			return
		}
		if enc.Verbose {
			log.Printf("%v: %v => %v\n", inst.LineNo, inst.String(), fragment)
		}
		out.WriteString(fragment)
	}

	payload = out.String()

	return
}

// EncodeInstruction serializes a single instruction.
func (enc *Encoder) EncodeInstruction(inst Instruction) (fragment string, err error) {
	reg := enc.Profile.Registry()
	if reg == nil {
		err = isa.ErrProfile(enc.Profile.String())
		return
	}

	fragment, err = enc.fragment(reg, inst)
	return
}

// fragment encodes an instruction under the encoder's profile.
func (enc *Encoder) fragment(reg *isa.Registry, inst Instruction) (fragment string, err error) {
	op, err := reg.Opcode(inst.Mnemonic)
	if err != nil {
		return
	}

	limit := enc.Profile.OperandMax()
	for _, value := range inst.Operands {
		if value < 0 || value > limit {
			err = ErrOutOfRange{Word: strconv.FormatInt(value, 10), Max: limit}
			return
		}
	}

	switch enc.Profile {
	case isa.PROFILE_HEX:
		fragment = packHex(op, inst.Operands)
	case isa.PROFILE_BINARY:
		fragment = packBinary(op, inst.Operands)
	}

	return
}

// packHex emits one opcode digit, followed by two operand digits, for
// every operand. An instruction without operands is its opcode digit.
func packHex(op isa.Opcode, operands []int64) string {
	if len(operands) == 0 {
		return fmt.Sprintf("%X", op)
	}

	var out strings.Builder
	for _, value := range operands {
		fmt.Fprintf(&out, "%X%02X", op, value)
	}
	return out.String()
}

// packBinary emits an 8-bit opcode, then a 16-bit word per operand.
func packBinary(op isa.Opcode, operands []int64) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%08b", op)
	for _, value := range operands {
		fmt.Fprintf(&out, "%016b", value)
	}
	return out.String()
}
