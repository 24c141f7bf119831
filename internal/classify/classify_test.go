package classify_test

import (
	"testing"

	"github.com/vyskocilm/tally/internal/classify"
	"github.com/vyskocilm/tally/internal/model"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		scenario string
		given    []byte
		then     model.Kind
	}{
		{
			scenario: "plain ascii",
			given:    []byte("hello world\n"),
			then:     model.Text,
		},
		{
			scenario: "empty buffer is text",
			given:    []byte{},
			then:     model.Text,
		},
		{
			scenario: "multibyte utf8",
			given:    []byte("žluťoučký kůň"),
			then:     model.Text,
		},
		{
			scenario: "lone continuation byte",
			given:    []byte{0xFF},
			then:     model.Binary,
		},
		{
			scenario: "truncated multibyte sequence",
			given:    []byte{'o', 'k', 0xC5},
			then:     model.Binary,
		},
		{
			scenario: "overlong encoding",
			given:    []byte{0xC0, 0x80},
			then:     model.Binary,
		},
		{
			scenario: "surrogate half",
			given:    []byte{0xED, 0xA0, 0x80},
			then:     model.Binary,
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			in := classify.Bytes(tt.given)
			require.Equal(t, tt.then, in.Kind())
			require.Equal(t, len(tt.given), in.Len())
		})
	}
}

func TestBytesKeepsContent(t *testing.T) {
	t.Parallel()

	text := classify.Bytes([]byte("sample"))
	require.Equal(t, "sample", text.Text())

	raw := []byte{0x00, 0xFF, 0x10}
	binary := classify.Bytes(raw)
	require.Equal(t, raw, binary.Data())
}
