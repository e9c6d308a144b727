package render

import (
	"errors"

	"github.com/ezrec/qrasm/translate"
)

var f = translate.From

var (
	ErrBaseURLInvalid = errors.New(f("base url invalid"))
	ErrOutputMissing  = errors.New(f("output missing"))
)

type ErrBaseURL string

func (err ErrBaseURL) Error() string {
	return f("'%v' is not an absolute url", string(err))
}

func (err ErrBaseURL) Unwrap() error {
	return ErrBaseURLInvalid
}
