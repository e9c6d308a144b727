package isa

import (
	"errors"

	"github.com/ezrec/qrasm/translate"
)

var f = translate.From

var (
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))
	ErrProfileUnknown  = errors.New(f("profile unknown"))
)

// ErrMnemonic reports a name that is not in the active profile.
type ErrMnemonic struct {
	Name    string
	Profile Profile
}

func (err ErrMnemonic) Error() string {
	return f("'%v' is not a %v mnemonic", err.Name, err.Profile.String())
}

func (err ErrMnemonic) Unwrap() error {
	return ErrMnemonicUnknown
}

type ErrProfile string

func (err ErrProfile) Error() string {
	return f("'%v' is not a profile", string(err))
}

func (err ErrProfile) Unwrap() error {
	return ErrProfileUnknown
}
