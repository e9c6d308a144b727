// Package asm assembles pixel VM source text into a payload string.
//
// Source is line oriented: a mnemonic followed by whitespace separated
// decimal operands. A ';' starts a comment. The assembler also accepts
// `.equ NAME VALUE` equates and `$(expr)` compile time expressions, which
// are evaluated as Starlark with the integer equates in scope.
//
// The Encoder serializes a parsed Program under one of the isa profiles:
// packed hex, where every operand is framed by its own opcode digit, or
// fixed width binary, with an 8-bit opcode followed by 16-bit operands.
package asm
