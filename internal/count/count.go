// Package count implements the single-pass counting over a classified input.
// Both input kinds share one word-boundary state machine, they differ only in
// the unit iterated - Unicode scalar values for text, octets for binary.
package count

import (
	"iter"

	"github.com/vyskocilm/tally/internal/model"
)

// Accumulate produces the counters for in in one forward pass. Bytes is the
// encoded length of the original buffer, never the number of units.
func Accumulate(in model.Input) model.Counts {
	switch in.Kind() {
	case model.Binary:
		return scan(octets(in.Data()), in.Len())
	default:
		return scan(runes(in.Text()), in.Len())
	}
}

type unit interface {
	~byte | ~rune
}

// scan runs the word-boundary state machine over units. A word is a maximal
// run of units outside the fixed whitespace set {space, tab, CR, LF}; it is
// counted when the run ends, either at whitespace or at the end of input.
// Lines counts newline units only, so a final unterminated line does not
// count.
func scan[T unit](units iter.Seq[T], byteLen int) model.Counts {
	counts := model.Counts{Bytes: int64(byteLen)}
	inWord := false
	for u := range units {
		counts.Chars++
		switch u {
		case '\n':
			counts.Lines++
			if inWord {
				counts.Words++
				inWord = false
			}
		case ' ', '\t', '\r':
			if inWord {
				counts.Words++
				inWord = false
			}
		default:
			inWord = true
		}
	}
	// input ended mid-word
	if inWord {
		counts.Words++
	}
	return counts
}

func runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

func octets(b []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range b {
			if !yield(c) {
				return
			}
		}
	}
}
