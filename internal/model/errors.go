package model

import "errors"

var (
	// ErrNoInput is returned when no file arguments were given and the
	// standard input is a terminal, so there is nothing to count.
	ErrNoInput = errors.New("no files specified")

	// ErrUnsupportedConfigVersion is returned for a config file with a
	// version other than 0.
	ErrUnsupportedConfigVersion = errors.New("unsupported config version")
)
