// Package assert compares JSON documents in tests.
package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails t when the documents differ after decoding, so key order and
// whitespace do not matter.
func JSONEqual(t testing.TB, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(jsonValue(t, expected), jsonValue(t, actual)); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

// JSONSubset fails t when a key of expected is missing in actual or holds a different
// value. Objects are compared recursively, arrays element by element.
func JSONSubset(t testing.TB, expected, actual string) {
	t.Helper()
	want, got := jsonValue(t, expected), jsonValue(t, actual)
	if diff := cmp.Diff(want, prune(want, got)); diff != "" {
		t.Errorf("json subset mismatch (-want +got):\n%s", diff)
	}
}

func prune(want, got any) any {
	if w, ok := want.([]any); ok {
		g, ok := got.([]any)
		if !ok || len(g) != len(w) {
			return got
		}
		out := make([]any, len(g))
		for i := range g {
			out[i] = prune(w[i], g[i])
		}
		return out
	}
	w, ok := want.(map[string]any)
	if !ok {
		return got
	}
	g, ok := got.(map[string]any)
	if !ok {
		return got
	}
	out := make(map[string]any, len(w))
	for key, value := range w {
		if v, ok := g[key]; ok {
			out[key] = prune(value, v)
		}
	}
	return out
}

func jsonValue(t testing.TB, input string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, input)
	}
	return v
}
