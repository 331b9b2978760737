package wordmorph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testDict = []string{
	"cat", "cot", "cog", "dog", "zzz",
	"stone", "store", "shore",
	"hi",
}

// testMaxPerms allows one change per step for lengths 3 and 5.
var testMaxPerms = []int{0, 0, 0, 1, 0, 1}

func TestBuild(t *testing.T) {
	m, err := Build(testDict, testMaxPerms)
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}

	if diff := cmp.Diff([]int{3, 5}, m.Lengths()); diff != "" {
		t.Errorf("Lengths(): mismatch (-want +got):\n%s", diff)
	}
	if got := m.graphs[3].Order(); got != 5 {
		t.Errorf("graph for length 3: want 5 vertices, got %d", got)
	}
	if got := m.graphs[5].Order(); got != 3 {
		t.Errorf("graph for length 5: want 3 vertices, got %d", got)
	}

	// "hi" has length 2, for which no query sets a bound.
	if m.graphs[2] != nil {
		t.Errorf("graph for length 2: want none, got %d vertices", m.graphs[2].Order())
	}
}

func TestMorpher_Solve(t *testing.T) {
	m, err := Build(testDict, testMaxPerms)
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}

	testCases := []struct {
		desc     string
		from, to string
		want     Result
	}{
		{
			desc: "chain of single changes",
			from: "cat",
			to:   "dog",
			want: Result{
				From: "cat",
				To:   "dog",
				Cost: 3,
				Path: []string{"cat", "cot", "cog", "dog"},
			},
		},
		{
			desc: "single step",
			from: "stone",
			to:   "store",
			want: Result{
				From: "stone",
				To:   "store",
				Cost: 1,
				Path: []string{"stone", "store"},
			},
		},
		{
			desc: "same word",
			from: "cog",
			to:   "cog",
			want: Result{
				From: "cog",
				To:   "cog",
				Cost: 0,
				Path: []string{"cog"},
			},
		},
		{
			desc: "unreachable word",
			from: "cat",
			to:   "zzz",
			want: Result{From: "cat", To: "zzz"},
		},
		{
			desc: "word not in dictionary",
			from: "cat",
			to:   "car",
			want: Result{From: "cat", To: "car"},
		},
		{
			desc: "different lengths",
			from: "cat",
			to:   "stone",
			want: Result{From: "cat", To: "stone"},
		},
		{
			desc: "length without a graph",
			from: "hi",
			to:   "ho",
			want: Result{From: "hi", To: "ho"},
		},
		{
			desc: "length beyond any query",
			from: "stones",
			to:   "stoner",
			want: Result{From: "stones", To: "stoner"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, gotErr := m.Solve(tc.from, tc.to)

			if gotErr != nil {
				t.Fatalf("Solve(): want no error, got %s", gotErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Solve(): mismatch (-want +got):\n%s", diff)
			}
			if wantNoPath := tc.want.Path == nil; got.NoPath() != wantNoPath {
				t.Errorf("NoPath(): want %t, got %t", wantNoPath, got.NoPath())
			}
		})
	}
}

func TestMorpher_Solve_repeatedQueries(t *testing.T) {
	m, err := Build(testDict, testMaxPerms)
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}

	first, err := m.Solve("cat", "dog")
	if err != nil {
		t.Fatalf("Solve(): want no error, got %s", err)
	}
	second, err := m.Solve("cat", "dog")
	if err != nil {
		t.Fatalf("Solve(): want no error, got %s", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Solve(): mismatch (-first +second):\n%s", diff)
	}
}

func TestMorpher_Solve_widerStep(t *testing.T) {
	// With two changes allowed per step, jumping from "cat" to "cog"
	// directly costs 2² = 4, while going through "cot" costs 1 + 1. The
	// squared weights must favor the two small steps.
	m, err := Build([]string{"cat", "cot", "cog"}, []int{0, 0, 0, 2})
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}

	got, err := m.Solve("cat", "cog")
	if err != nil {
		t.Fatalf("Solve(): want no error, got %s", err)
	}

	want := Result{
		From: "cat",
		To:   "cog",
		Cost: 2,
		Path: []string{"cat", "cot", "cog"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Solve(): mismatch (-want +got):\n%s", diff)
	}
}
