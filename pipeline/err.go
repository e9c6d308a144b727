package pipeline

import (
	"errors"

	"github.com/ezrec/qrasm/translate"
)

var f = translate.From

var (
	ErrSourceMissing = errors.New(f("source missing"))
)

// Stage names a step of a pipeline run.
type Stage string

const (
	STAGE_READ     = Stage("read")
	STAGE_ASSEMBLE = Stage("assemble")
	STAGE_RENDER   = Stage("render")
)

// ErrStage reports the step of the run that failed.
type ErrStage struct {
	Stage Stage
	Err   error
}

func (err ErrStage) Error() string {
	return f("%v: %v", string(err.Stage), err.Err)
}

func (err ErrStage) Unwrap() error {
	return err.Err
}
