package report_test

import (
	"bytes"
	"testing"

	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/report"

	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	t.Parallel()
	counts := model.Counts{Lines: 2, Words: 3, Chars: 6, Bytes: 6}
	type given struct {
		sel   model.Selection
		human bool
		label string
		chars bool
	}
	tests := []struct {
		scenario string
		given    given
		then     string
	}{
		{
			scenario: "default selection",
			given:    given{sel: model.DefaultSelection(), label: "a.txt", chars: true},
			then:     " 2 3 6 a.txt\n",
		},
		{
			scenario: "all counters",
			given: given{
				sel:   model.Selection{Lines: true, Words: true, Chars: true, Bytes: true},
				label: "a.txt",
				chars: true,
			},
			then: " 2 3 6 6 a.txt\n",
		},
		{
			scenario: "chars suppressed for binary fallback",
			given: given{
				sel:   model.Selection{Lines: true, Chars: true, Bytes: true},
				label: "blob.bin",
				chars: false,
			},
			then: " 2 6 blob.bin\n",
		},
		{
			scenario: "stdin has no label",
			given:    given{sel: model.Selection{Words: true}, label: "", chars: true},
			then:     " 3\n",
		},
		{
			scenario: "single counter",
			given:    given{sel: model.Selection{Bytes: true}, label: "a.txt", chars: true},
			then:     " 6 a.txt\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			w := report.New(&buf, tt.given.sel, tt.given.human)
			require.NoError(t, w.Row(counts, tt.given.label, tt.given.chars))
			require.Equal(t, tt.then, buf.String())
		})
	}
}

func TestRowHuman(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := report.New(&buf, model.Selection{Words: true, Bytes: true}, true)
	counts := model.Counts{Words: 1234567, Bytes: 89}
	require.NoError(t, w.Row(counts, "big.txt", true))
	require.Equal(t, " 1,234,567 89 big.txt\n", buf.String())
}

func TestTotal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := report.New(&buf, model.DefaultSelection(), false)
	require.NoError(t, w.Total(model.Counts{Lines: 5, Words: 9, Chars: 47, Bytes: 47}))
	require.Equal(t, " 5 9 47 total\n", buf.String())
}
