package model

import (
	"io"
	"io/fs"
)

// Entry abstracts a single countable input - it does not matter if the bytes
// come from a named file or from the standard input stream. It allows to get
// the label, Open the content and do stat.
type Entry interface {
	// Path is the label printed next to the counters. Empty for stdin.
	Path() string
	Open() (io.ReadCloser, error)
	Stat() (fs.FileInfo, error)
}
