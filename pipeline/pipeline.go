// Package pipeline wires a program source, the assembler and a payload
// renderer together.
package pipeline

import (
	"log"
	"strings"

	"github.com/ezrec/qrasm/asm"
	"github.com/ezrec/qrasm/render"
	"github.com/ezrec/qrasm/source"
)

// Pipeline is one assembly run. A failed run never reaches the renderer.
type Pipeline struct {
	Verbose   bool            // If set, logs the run stages.
	Source    source.Reader   // Program text.
	Assembler *asm.Assembler  // Assembler, a default hex assembler if nil.
	Renderer  render.Renderer // Payload consumer, optional.
}

// Run reads, assembles and renders the program, returning the payload.
// On any error the payload is empty.
func (pl *Pipeline) Run() (payload string, err error) {
	defer func() {
		if err != nil {
			payload = ""
		}
	}()

	if pl.Source == nil {
		err = ErrSourceMissing
		return
	}

	text, err := pl.Source.Text()
	if err != nil {
		err = &ErrStage{Stage: STAGE_READ, Err: err}
		return
	}

	assembler := pl.Assembler
	if assembler == nil {
		assembler = &asm.Assembler{Verbose: pl.Verbose}
	}

	payload, err = assembler.Assemble(strings.NewReader(text))
	if err != nil {
		err = &ErrStage{Stage: STAGE_ASSEMBLE, Err: err}
		return
	}

	if pl.Verbose {
		log.Printf("%v: %v digits: %v\n", assembler.Profile, len(payload), payload)
	}

	if pl.Renderer == nil {
		return
	}

	err = pl.Renderer.Render(payload)
	if err != nil {
		err = &ErrStage{Stage: STAGE_RENDER, Err: err}
		return
	}

	return
}
