// Package report renders counting results. One line per input: the selected
// counters in the fixed order lines, words, chars, bytes, each preceded by a
// single space, followed by the label when there is one.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vyskocilm/tally/internal/model"
)

// Writer renders rows for one run. Not safe for concurrent use, rows are
// expected to be written in input order by a single goroutine.
type Writer struct {
	w       io.Writer
	sel     model.Selection
	printer *message.Printer // non-nil renders grouped digits
}

func New(w io.Writer, sel model.Selection, human bool) *Writer {
	ret := &Writer{w: w, sel: sel}
	if human {
		ret.printer = message.NewPrinter(language.English)
	}
	return ret
}

// Row writes one result line. When chars is false the character column is
// left out even if selected, which is how a binary fallback suppresses the
// scalar count for that one input.
func (w *Writer) Row(counts model.Counts, label string, chars bool) error {
	var line []byte
	if w.sel.Lines {
		line = w.appendCount(line, counts.Lines)
	}
	if w.sel.Words {
		line = w.appendCount(line, counts.Words)
	}
	if w.sel.Chars && chars {
		line = w.appendCount(line, counts.Chars)
	}
	if w.sel.Bytes {
		line = w.appendCount(line, counts.Bytes)
	}
	if label != "" {
		line = append(line, ' ')
		line = append(line, label...)
	}
	line = append(line, '\n')
	_, err := w.w.Write(line)
	return err
}

// Total writes the aggregate row labeled "total". The caller decides whether
// a total makes sense, which is only when more than one input was counted.
func (w *Writer) Total(counts model.Counts) error {
	return w.Row(counts, "total", true)
}

func (w *Writer) appendCount(line []byte, n int64) []byte {
	if w.printer != nil {
		return append(line, w.printer.Sprintf(" %d", n)...)
	}
	return fmt.Appendf(line, " %d", n)
}
