package pipeline

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func isBar(s string) bool { return s == "|" }

func TestSplit_Table(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		include bool
		want    [][]string
	}{
		{"drops separator", []string{"a", "b", "|", "c", "d"}, false, [][]string{{"a", "b"}, {"c", "d"}}},
		{"consecutive separators", []string{"a", "|", "|", "b"}, false, [][]string{{"a"}, {"b"}}},
		{"leading and trailing", []string{"|", "a", "|"}, false, [][]string{{"a"}}},
		{"only separators", []string{"|", "|"}, false, nil},
		{"includes separator", []string{"a", "|", "b"}, true, [][]string{{"a", "|"}, {"b"}}},
		{"included separator alone", []string{"a", "|", "|"}, true, [][]string{{"a", "|"}, {"|"}}},
		{"no separator", []string{"a", "b"}, false, [][]string{{"a", "b"}}},
		{"empty", []string{}, false, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(t, Split(FromSlice(tc.in), isBar, tc.include))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplit_PullsOnlyThroughSeparator(t *testing.T) {
	src := newCounting("a", "|", "b", "c")
	iter := Split(From[string](src), isBar, false).Iter(context.Background())
	defer iter.Close()
	run, ok, err := iter.Next(context.Background())
	if err != nil || !ok {
		t.Fatalf("got (%v, %v, %v)", run, ok, err)
	}
	if src.pulls != 2 {
		t.Errorf("expected 2 pulls for the first run, got %d", src.pulls)
	}
}

func TestSplitBy_Ascending(t *testing.T) {
	// Start a new run whenever the value drops.
	in := []int{1, 2, 3, 2, 5, 1}
	got := collect(t, SplitBy(FromSlice(in), func(cur, prev, _ int) bool { return cur < prev }))
	want := [][]int{{1, 2, 3}, {2, 5}, {1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitBy_IndexArgument(t *testing.T) {
	var indices []int
	in := []string{"a", "b", "c", "d"}
	got := collect(t, SplitBy(FromSlice(in), func(_, _ string, i int) bool {
		indices = append(indices, i)
		return i%2 == 0
	}))
	if diff := cmp.Diff([]int{1, 2, 3}, indices); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"a", "b"}, {"c", "d"}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitBy_SingleElement(t *testing.T) {
	got := collect(t, SplitBy(FromSlice([]int{7}), func(_, _, _ int) bool { return true }))
	if diff := cmp.Diff([][]int{{7}}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitBy_EmptyIsInvalidOperation(t *testing.T) {
	p := SplitBy(FromSlice([]int{}), func(_, _, _ int) bool { return false })
	_, err := Collect(context.Background(), p)
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidOperation) {
		t.Errorf("expected INVALID_OPERATION, got %v", err)
	}
}

func TestSplitBy_OnInfinite(t *testing.T) {
	decades := SplitBy(naturals(), func(cur, _, _ int) bool { return cur%10 == 0 })
	got := collect(t, must(Take(decades, 2)))
	if len(got) != 2 || len(got[0]) != 10 || got[1][0] != 10 {
		t.Errorf("unexpected runs %v", got)
	}
}
