package stats_test

import (
	"maps"
	"testing"

	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/stats"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := stats.New(t.Name())
	require.NotNil(t, s)
}

func TestIncInputs(t *testing.T) {
	s := stats.New(t.Name())

	for range 10 {
		s.IncInputs()
	}

	collected := maps.Collect(s.Stats())
	require.Equal(t, "10", collected[t.Name()+model.StatsInputsTotal])
}

func TestIncErrInputs(t *testing.T) {
	s := stats.New(t.Name())

	s.IncErrInputs()
	s.IncErrInputs()
	s.IncErrInputs()

	collected := maps.Collect(s.Stats())
	require.Equal(t, "3", collected[t.Name()+model.StatsErrInputs])
}

func TestIncBinaryInputs(t *testing.T) {
	s := stats.New(t.Name())

	s.IncBinaryInputs()
	s.IncBinaryInputs()

	collected := maps.Collect(s.Stats())
	require.Equal(t, "2", collected[t.Name()+model.StatsBinaryInputs])
}

func TestStatsOrder(t *testing.T) {
	s := stats.New(t.Name())

	var keys []string
	for key := range s.Stats() {
		keys = append(keys, key)
	}
	require.Equal(t, []string{
		t.Name() + model.StatsBinaryInputs,
		t.Name() + model.StatsErrInputs,
		t.Name() + model.StatsInputsTotal,
	}, keys)
}
