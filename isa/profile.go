package isa

import (
	"iter"
)

// Profile selects one of the mutually exclusive payload encodings.
type Profile int

//go:generate go tool stringer -linecomment -type=Profile
const (
	PROFILE_HEX    = Profile(0) // hex
	PROFILE_BINARY = Profile(1) // binary
)

// PROFILE_COUNT is the number of encoding profiles.
const PROFILE_COUNT = int(PROFILE_BINARY) + 1

// Profiles returns an iterator over all profiles.
func Profiles() iter.Seq[Profile] {
	return func(yield func(p Profile) bool) {
		for n := range PROFILE_COUNT {
			if !yield(Profile(n)) {
				return
			}
		}
	}
}

// ParseProfile converts a profile name ("hex" or "binary") into a Profile.
func ParseProfile(name string) (p Profile, err error) {
	for p = range Profiles() {
		if p.String() == name {
			return
		}
	}

	p = PROFILE_HEX
	err = ErrProfile(name)
	return
}

// Valid returns true if the profile is known.
func (p Profile) Valid() bool {
	return p >= 0 && int(p) < PROFILE_COUNT
}

// OpcodeBits returns the width of an encoded opcode.
func (p Profile) OpcodeBits() int {
	switch p {
	case PROFILE_HEX:
		return 4
	case PROFILE_BINARY:
		return 8
	}
	return 0
}

// OperandBits returns the width of a single encoded operand.
func (p Profile) OperandBits() int {
	switch p {
	case PROFILE_HEX:
		return 8
	case PROFILE_BINARY:
		return 16
	}
	return 0
}

// OperandMax returns the largest operand value the profile can encode.
func (p Profile) OperandMax() int64 {
	return (int64(1) << p.OperandBits()) - 1
}

// Registry returns the instruction set registry of the profile, or nil
// if the profile is not valid.
func (p Profile) Registry() *Registry {
	if !p.Valid() {
		return nil
	}
	return registries[p]
}
