package main

import (
	"testing"

	"github.com/vyskocilm/tally/internal/model"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestRegisterCountFlags(t *testing.T) {
	t.Parallel()
	type then struct {
		sel   model.Selection
		human bool
		files []string
		err   string
	}
	tests := []struct {
		scenario string
		given    []string
		then     then
	}{
		{
			scenario: "combined short flags",
			given:    []string{"-lwc", "a.txt"},
			then: then{
				sel:   model.Selection{Lines: true, Words: true, Bytes: true},
				files: []string{"a.txt"},
			},
		},
		{
			scenario: "separate flags equal the combined form",
			given:    []string{"-l", "-w", "-c", "a.txt"},
			then: then{
				sel:   model.Selection{Lines: true, Words: true, Bytes: true},
				files: []string{"a.txt"},
			},
		},
		{
			scenario: "chars and human",
			given:    []string{"-m", "-H", "a.txt", "b.txt"},
			then: then{
				sel:   model.Selection{Chars: true},
				human: true,
				files: []string{"a.txt", "b.txt"},
			},
		},
		{
			scenario: "unknown shorthand letter is a hard error",
			given:    []string{"-x", "a.txt"},
			then:     then{err: "unknown shorthand flag"},
		},
		{
			scenario: "unknown letter inside a combined flag is a hard error",
			given:    []string{"-lxw", "a.txt"},
			then:     then{err: "unknown shorthand flag"},
		},
		{
			scenario: "first positional stops flag parsing",
			given:    []string{"a.txt", "-l", "--words"},
			then: then{
				files: []string{"a.txt", "-l", "--words"},
			},
		},
		{
			scenario: "flag-like name after the first path stays a file name",
			given:    []string{"-w", "a.txt", "-looks-like-a-flag"},
			then: then{
				sel:   model.Selection{Words: true},
				files: []string{"a.txt", "-looks-like-a-flag"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			var sel model.Selection
			var human bool
			flags := pflag.NewFlagSet("tally", pflag.ContinueOnError)
			registerCountFlags(flags, &sel, &human)

			err := flags.Parse(tt.given)
			if tt.then.err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.then.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.then.sel, sel)
			require.Equal(t, tt.then.human, human)
			require.Equal(t, tt.then.files, flags.Args())
		})
	}
}
