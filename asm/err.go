package asm

import (
	"errors"

	"github.com/ezrec/qrasm/isa"
	"github.com/ezrec/qrasm/translate"
)

var f = translate.From

var (
	// Taxonomy
	ErrMnemonicUnknown  = isa.ErrMnemonicUnknown
	ErrOperandMalformed = errors.New(f("operand malformed"))
	ErrOperandRange     = errors.New(f("operand out of range"))
	ErrArity            = errors.New(f("operand count mismatch"))

	// Preprocessor errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))

	// Encoder errors
	ErrEncoderBusy = errors.New(f("encoder busy"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrOperandMalformed
}

type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

// Unwrap reports a single taxonomy category: an out of range result is
// ErrOperandRange, anything else is ErrOperandMalformed.
func (err ErrParseExpression) Unwrap() []error {
	if errors.Is(err.Err, ErrOperandRange) {
		return []error{err.Err}
	}
	return []error{ErrOperandMalformed, err.Err}
}

// ErrOutOfRange reports an operand outside 0..Max.
type ErrOutOfRange struct {
	Word string
	Max  int64
}

func (err ErrOutOfRange) Error() string {
	return f("'%v' is outside 0..%v", err.Word, err.Max)
}

func (err ErrOutOfRange) Unwrap() error {
	return ErrOperandRange
}

type ErrOperandCount struct {
	Mnemonic isa.Mnemonic
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %d operands, not %d", err.Mnemonic.String(), err.Want, err.Got)
}

func (err ErrOperandCount) Unwrap() error {
	return ErrArity
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
