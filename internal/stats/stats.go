// Package stats publishes expvar-backed counters for a single run.
package stats

import (
	"expvar"
	"iter"
	"maps"
	"slices"
)

// Stats holds expvar-backed counters for the counting run and publishes them
// under a common key prefix. All counters live in an expvar.Map and are safe
// for concurrent updates. When the standard expvar HTTP handler is
// registered, these values are available at /debug/vars.
//
// - <prefix>/inputs/total — count of all inputs (files plus stdin)
// - <prefix>/inputs/error — inputs whose bytes could not be obtained
// - <prefix>/inputs/binary — inputs that fell back to byte-unit counting
type Stats struct {
	prefix string
	inputs *expvar.Map
}

// New publishes a new set of metrics. Registering the same metrics twice
// causes panic, so for tests, the prefix should be unique.
func New(prefix string) *Stats {
	inputs := new(expvar.Map).Init()

	inputs.Add("total", 0)
	inputs.Add("error", 0)
	inputs.Add("binary", 0)

	root := expvar.NewMap(prefix)
	root.Set("inputs", inputs)

	return &Stats{
		prefix: prefix,
		inputs: inputs,
	}
}

func (s *Stats) IncInputs() {
	s.inputs.Add("total", 1)
}
func (s *Stats) IncErrInputs() {
	s.inputs.Add("error", 1)
}
func (s *Stats) IncBinaryInputs() {
	s.inputs.Add("binary", 1)
}

// Stats returns a name, value iterator across registered metrics. This uses
// expvar.Do under the hood, so is safe to be called concurrently. Stats are
// returned in an alphabetic order.
func (s Stats) Stats() iter.Seq2[string, string] {
	stats := make(map[string]string, 3)
	s.inputs.Do(func(kv expvar.KeyValue) {
		stats["/inputs/"+kv.Key] = kv.Value.String()
	})

	keys := slices.Sorted(maps.Keys(stats))
	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if !yield(s.prefix+key, stats[key]) {
				return
			}
		}
	}
}
