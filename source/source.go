// Package source provides the program text readers used by the assembler
// front ends.
package source

import (
	"io"
	"io/fs"
	"os"
	"strings"
)

// Reader supplies the complete text of a program.
type Reader interface {
	// Text returns the program source.
	Text() (text string, err error)
}

// Literal is program text given directly.
type Literal string

var _ Reader = Literal("")

func (lit Literal) Text() (text string, err error) {
	text = string(lit)
	return
}

// File is the path of a program on the host file system.
type File string

var _ Reader = File("")

func (file File) Text() (text string, err error) {
	data, err := os.ReadFile(string(file))
	if err != nil {
		return
	}

	text = string(data)
	return
}

// FS is a program stored in a file system, such as an embed.FS.
type FS struct {
	FS   fs.FS
	Name string
}

var _ Reader = &FS{}

func (src *FS) Text() (text string, err error) {
	data, err := fs.ReadFile(src.FS, src.Name)
	if err != nil {
		return
	}

	text = string(data)
	return
}

// Stream is program text read once from an io.Reader, such as stdin.
type Stream struct {
	io.Reader
}

var _ Reader = &Stream{}

func (src *Stream) Text() (text string, err error) {
	var out strings.Builder
	_, err = io.Copy(&out, src.Reader)
	if err != nil {
		return
	}

	text = out.String()
	return
}
