// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{PomNotFoundId, PomParseErrorId, ParentWriteFailedId} {
		if Get(id) == nil {
			t.Errorf("Get(%d) = nil, want catalog entry", id)
		}
	}
}

func TestGetUnknownIssue(t *testing.T) {
	t.Parallel()

	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestValuesSortedAndComplete(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() returned %d entries, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not sorted at index %d", i)
		}
	}
}

func TestRenderUsesInjectedRenderer(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return "rendered:" + in, nil
	}

	out, err := Get(PomNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("stylePath = %q, want dark", gotStyle)
	}
	if out == "" {
		t.Error("Render() returned empty output")
	}
}
