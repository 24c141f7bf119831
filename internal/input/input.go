// Package input turns command line arguments into countable entries. Bytes
// are acquired lazily via model.Entry, so a missing or unreadable file is an
// error of that one entry and never stops the others.
package input

import (
	"io"
	"io/fs"
	"iter"
	"os"

	"github.com/vyskocilm/tally/internal/model"
)

// Files returns one entry per path, in argument order. Paths are taken
// verbatim, even when they look like flags. The error element of the
// sequence is always nil here, open and stat failures surface from the
// entry itself.
func Files(paths ...string) iter.Seq2[model.Entry, error] {
	return func(yield func(model.Entry, error) bool) {
		for _, path := range paths {
			if !yield(fileEntry{path: path}, nil) {
				return
			}
		}
	}
}

// Stdin returns a single entry reading the whole standard input stream. Its
// Path is empty, so the report row carries no label.
func Stdin() iter.Seq2[model.Entry, error] {
	return func(yield func(model.Entry, error) bool) {
		yield(stdinEntry{}, nil)
	}
}

// fileEntry implements model.Entry for a named file.
type fileEntry struct {
	path string
}

func (e fileEntry) Path() string {
	return e.path
}

func (e fileEntry) Open() (io.ReadCloser, error) {
	return os.Open(e.path)
}

func (e fileEntry) Stat() (fs.FileInfo, error) {
	return os.Stat(e.path)
}

// stdinEntry implements model.Entry for the standard input stream.
type stdinEntry struct{}

func (stdinEntry) Path() string {
	return ""
}

func (stdinEntry) Open() (io.ReadCloser, error) {
	// the process does not own stdin, keep it open
	return io.NopCloser(os.Stdin), nil
}

func (stdinEntry) Stat() (fs.FileInfo, error) {
	return os.Stdin.Stat()
}
