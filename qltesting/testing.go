// Package qltesting provides helpers for testing constructed query trees
// against their expected canonical JSON rendering.
package qltesting

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/nsf/jsondiff"

	"github.com/graph-gophers/relayql-go/errors"
)

// Test is a construction test case to be used with RunTest(s).
type Test struct {
	// Name is the subtest name. Tests without a name run under their index.
	Name string

	// Actual is the value under test, usually a constructed node. Cases that
	// expect construction itself to fail set Build instead.
	Actual interface{}

	// Build constructs the value under test. It runs inside a panic guard so
	// cases can expect invariant violations.
	Build func() interface{}

	// ExpectedJSON is the canonical JSON rendering of the value, as produced
	// by Encode.
	ExpectedJSON string

	// ExpectedInvariant is the exact message of the invariant violation the
	// construction must panic with. When set, ExpectedJSON is ignored.
	ExpectedInvariant string

	// ScrubHashes replaces fragment hashes with "<hash>" before comparing.
	// Client fragment hashes differ per construction, so expectations cannot
	// pin them.
	ScrubHashes bool
}

// RunTests runs the given construction test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		name := test.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		test := test
		t.Run(name, func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single construction test case.
func RunTest(t *testing.T, test *Test) {
	t.Helper()

	actual := test.Actual
	var invariant *errors.InvariantError
	if test.Build != nil {
		actual, invariant = buildGuarded(test.Build)
	}

	if test.ExpectedInvariant != "" {
		if invariant == nil {
			t.Fatalf("expected invariant violation %q, construction succeeded", test.ExpectedInvariant)
		}
		if got := invariant.Error(); got != test.ExpectedInvariant {
			t.Fatalf("got invariant violation %q, want %q", got, test.ExpectedInvariant)
		}
		return
	}
	if invariant != nil {
		t.Fatalf("unexpected invariant violation: %s", invariant)
	}

	e := encoder{scrubHashes: test.ScrubHashes}
	data, err := json.Marshal(e.value(actual))
	if err != nil {
		t.Fatalf("encoding node tree: %s", err)
	}

	opts := jsondiff.Options{
		Added:   jsondiff.Tag{Begin: "+++", End: "+++"},
		Removed: jsondiff.Tag{Begin: "---", End: "---"},
		Changed: jsondiff.Tag{Begin: "|||", End: "|||"},
		Indent:  "    ",
	}
	diff, output := jsondiff.Compare([]byte(test.ExpectedJSON), data, &opts)
	if diff != jsondiff.FullMatch {
		t.Log("Did not get expected result:\n", output)
		t.Log("Got:", string(data))
		t.Fail()
	}
}

// buildGuarded runs f, converting an invariant violation panic into a value.
// Other panic values propagate.
func buildGuarded(f func() interface{}) (v interface{}, invariant *errors.InvariantError) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := errors.AsInvariant(r)
			if !ok {
				panic(r)
			}
			invariant = err
		}
	}()
	return f(), nil
}
