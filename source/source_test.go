package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

const program = "SET_COLOUR 255 0 0\nDRAW_RECT 0 0 4 4\nHALT\n"

func TestLiteral(t *testing.T) {
	assert := assert.New(t)

	text, err := Literal(program).Text()
	assert.NoError(err)
	assert.Equal(program, text)
}

func TestFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "square.pix")
	err := os.WriteFile(path, []byte(program), 0o644)
	assert.NoError(err)

	text, err := File(path).Text()
	assert.NoError(err)
	assert.Equal(program, text)

	_, err = File(filepath.Join(t.TempDir(), "missing.pix")).Text()
	assert.True(errors.Is(err, fs.ErrNotExist))
}

func TestFS(t *testing.T) {
	assert := assert.New(t)

	filesys := fstest.MapFS{
		"assets/square.pix": &fstest.MapFile{Data: []byte(program)},
	}

	text, err := (&FS{FS: filesys, Name: "assets/square.pix"}).Text()
	assert.NoError(err)
	assert.Equal(program, text)

	_, err = (&FS{FS: filesys, Name: "assets/circle.pix"}).Text()
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestStream(t *testing.T) {
	assert := assert.New(t)

	text, err := (&Stream{Reader: strings.NewReader(program)}).Text()
	assert.NoError(err)
	assert.Equal(program, text)
}
