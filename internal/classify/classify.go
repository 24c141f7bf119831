// Package classify decides whether a byte buffer is decodable text or opaque
// binary. The policy is best-effort text with a graceful binary fallback, so
// classification is total and never fails, however malformed the bytes are.
package classify

import (
	"unicode/utf8"

	"github.com/vyskocilm/tally/internal/model"
)

// Bytes classifies b under strict UTF-8 semantics. Overlong encodings,
// invalid continuation bytes and surrogate halves all reject the buffer as a
// whole and the original octets are passed through unchanged as Binary.
func Bytes(b []byte) model.Input {
	if utf8.Valid(b) {
		return model.TextInput(string(b))
	}
	return model.BinaryInput(b)
}
