// Package isa implements the instruction set registry for the pixel VM.
//
// The VM is a small stack machine with arithmetic, stack manipulation and
// pixel drawing primitives (set colour, draw pixel, draw line, draw rect).
// Its mnemonics form a closed enumeration. Each encoding profile maps a
// subset of them onto numeric opcodes, fixed once when the package is
// initialized.
package isa
