// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/qrasm/asm"
	"github.com/ezrec/qrasm/isa"
	"github.com/ezrec/qrasm/pipeline"
	"github.com/ezrec/qrasm/render"
	"github.com/ezrec/qrasm/source"
	"github.com/ezrec/qrasm/translate"
)

var f = translate.From

func main() {
	var compile string
	var expr string
	var profileName string
	var output string
	var baseURL string
	var terminal bool
	var link bool
	var strict bool
	var macros bool
	var verbose bool

	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", "source file to assemble, '-' for stdin")
	flag.StringVar(&expr, "e", "", "source text to assemble")
	flag.StringVar(&profileName, "p", isa.PROFILE_HEX.String(), "encoding profile (hex, binary)")
	flag.StringVar(&output, "o", "", "QR code .png file to write")
	flag.StringVar(&baseURL, "u", render.DEFAULT_BASE_URL, "VM base url")
	flag.BoolVar(&terminal, "t", false, "Print the QR code to the terminal")
	flag.BoolVar(&link, "l", false, "Print the VM link")
	flag.BoolVar(&strict, "s", false, "Check operand counts against the profile")
	flag.BoolVar(&macros, "m", false, "Enable ';' comments, .equ and $(...) expressions")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "NAME=VALUE equate for -m, may be repeated", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return errors.New(f("'%v' is not NAME=VALUE", arg))
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(defines) != 0 && !macros {
		atexit.Fatalf("%v: %v", os.Args[0], f("-D requires -m"))
	}

	if verbose {
		log.Printf("locale: %v", translate.Language())
	}

	profile, err := isa.ParseProfile(profileName)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	var src source.Reader
	label := compile
	switch {
	case len(compile) != 0 && len(expr) != 0:
		atexit.Fatalf("%v: %v", os.Args[0], f("-c and -e are exclusive"))
	case len(expr) != 0:
		src = source.Literal(expr)
		label = "-e"
	case len(compile) != 0 && compile != "-":
		src = source.File(compile)
	default:
		src = &source.Stream{Reader: os.Stdin}
		label = "-"
	}

	assembler := &asm.Assembler{
		Profile: profile,
		Strict:  strict,
		Macros:  macros,
		Verbose: verbose,
	}
	for name, value := range defines {
		assembler.Predefine(name, value)
	}

	var renderers render.Multi

	if link {
		renderers = append(renderers, &render.Link{BaseURL: baseURL, Output: os.Stdout})
	}

	if terminal {
		renderers = append(renderers, &render.Terminal{BaseURL: baseURL, Output: os.Stdout})
	}

	// The image is removed again unless the whole run succeeds.
	var done bool
	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() {
			err := ouf.Close()
			if err != nil {
				log.Printf("%v: %v", output, err)
			}
			if !done {
				os.Remove(output)
			}
		})
		renderers = append(renderers, &render.QRCode{BaseURL: baseURL, Output: ouf})
	}

	pl := &pipeline.Pipeline{
		Verbose:   verbose,
		Source:    src,
		Assembler: assembler,
		Renderer:  renderers,
	}

	payload, err := pl.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", label, err)
	}

	fmt.Println(payload)

	done = true
	atexit.Exit(0)
}
