package model

import "iter"

const (
	StatsInputsTotal  = "/inputs/total"
	StatsErrInputs    = "/inputs/error"
	StatsBinaryInputs = "/inputs/binary"
)

// Stats counts the progress of a single run. Implementations must be safe for
// concurrent updates as inputs are counted in parallel.
type Stats interface {
	IncInputs()
	IncErrInputs()
	IncBinaryInputs()
	Stats() iter.Seq2[string, string]
}
