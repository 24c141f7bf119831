package model

// Kind tags the two ways a byte buffer can be consumed by the counting pass.
type Kind int

const (
	// Text means the buffer is valid UTF-8 and is iterated by Unicode
	// scalar values.
	Text Kind = iota + 1
	// Binary means the buffer did not decode as UTF-8 and is iterated
	// byte by byte. This is a recognized fallback, not an error.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Input is a classified byte buffer. It is produced exactly once per input by
// the classify package and consumed exactly once by the counting pass. The
// three-way distinction text/binary/unobtainable is load-bearing: acquisition
// failures never reach Input, they stay ordinary errors on the service layer.
type Input struct {
	kind Kind
	text string
	data []byte
}

// TextInput wraps an already validated UTF-8 string.
func TextInput(s string) Input {
	return Input{kind: Text, text: s}
}

// BinaryInput wraps raw octets unchanged.
func BinaryInput(b []byte) Input {
	return Input{kind: Binary, data: b}
}

func (i Input) Kind() Kind {
	return i.kind
}

// Text returns the decoded scalar sequence. Valid only for Kind() == Text.
func (i Input) Text() string {
	return i.text
}

// Data returns the raw octets. Valid only for Kind() == Binary.
func (i Input) Data() []byte {
	return i.data
}

// Len is the byte length of the original buffer for either kind.
func (i Input) Len() int {
	if i.kind == Text {
		return len(i.text)
	}
	return len(i.data)
}
