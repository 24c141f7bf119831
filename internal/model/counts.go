package model

// Counts is the result of one counting pass over a single input. Bytes always
// equals the byte length of the consumed input regardless of the input kind.
// For text inputs Chars is the number of Unicode scalar values, for binary
// inputs it is the number of octets, so both counters advance once per
// iterated unit.
type Counts struct {
	Lines int64
	Words int64
	Chars int64
	Bytes int64
}

// Add merges other into c. It is the aggregation operation used to build the
// total row: commutative, associative and the zero Counts is its identity.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
	c.Bytes += other.Bytes
}

func (c Counts) IsZero() bool {
	return c == Counts{}
}
