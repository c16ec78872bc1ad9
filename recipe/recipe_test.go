package recipe

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	seqerrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pipeline"
)

func run(t *testing.T, r Recipe, in ...int64) []int64 {
	t.Helper()
	stage, err := Compile(r, logger.Nop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	p, err := stage(pipeline.FromSlice(in))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	got, err := pipeline.Collect(context.Background(), p)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return got
}

func TestCompile_SingleOps(t *testing.T) {
	in := []int64{5, 1, 4, 1, 3}
	tests := []struct {
		name string
		step Step
		want []int64
	}{
		{"exclude", Step{Op: "exclude", Start: 1, Count: 2}, []int64{5, 1, 3}},
		{"move", Step{Op: "move", From: 0, Count: 2, To: 3}, []int64{4, 1, 3, 5, 1}},
		{"pad", Step{Op: "pad", Count: 2, Value: -1}, []int64{5, 1, 4, 1, 3, -1, -1}},
		{"pad appends past input length", Step{Op: "pad", Count: 7, Value: -1}, []int64{5, 1, 4, 1, 3, -1, -1, -1, -1, -1, -1, -1}},
		{"distinct", Step{Op: "distinct"}, []int64{5, 1, 4, 3}},
		{"without_equal", Step{Op: "without_equal", Value: 1}, []int64{5, 4, 3}},
		{"between", Step{Op: "between", Value: 2, Max: 4}, []int64{4, 3}},
		{"take", Step{Op: "take", Count: 2}, []int64{5, 1}},
		{"batch_sum", Step{Op: "batch_sum", Size: 2}, []int64{6, 5, 3}},
		{"window_sum", Step{Op: "window_sum", Size: 3}, []int64{10, 6, 8}},
		{"rank", Step{Op: "rank", Count: 3}, []int64{1, 1, 3}},
		{"rank descending", Step{Op: "rank", Count: 2, Descending: true}, []int64{5, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, Recipe{Steps: []Step{tc.step}}, in...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_Chain(t *testing.T) {
	r := Recipe{Name: "chain", Steps: []Step{
		{Op: "distinct"},
		{Op: "window_sum", Size: 2},
		{Op: "rank", Count: 2, Descending: true},
	}}
	got := run(t, r, 1, 2, 2, 3, 4)
	// distinct: 1 2 3 4 -> window sums: 3 5 7 -> top two: 7 5
	if diff := cmp.Diff([]int64{7, 5}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_EmptyRecipeIsIdentity(t *testing.T) {
	got := run(t, Recipe{}, 3, 1, 2)
	if diff := cmp.Diff([]int64{3, 1, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_SampleWithSeedIsReproducible(t *testing.T) {
	r := Recipe{Steps: []Step{{Op: "sample", Count: 3, Seed: 42}}}
	in := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := run(t, r, in...)
	b := run(t, r, in...)
	if len(a) != 3 {
		t.Fatalf("expected 3 samples, got %v", a)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different samples (-first +second):\n%s", diff)
	}
}

func TestCompile_StructValidation(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		field string
	}{
		{"missing op", Step{}, "steps[0].op"},
		{"unknown op", Step{Op: "shuffle"}, "steps[0].op"},
		{"negative count", Step{Op: "take", Count: -1}, "steps[0].count"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(Recipe{Steps: []Step{tc.step}}, nil)
			if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
			}
			appErr, _ := seqerrors.AsAppError(err)
			if appErr.Details["param"] != tc.field {
				t.Errorf("param = %v, want %s", appErr.Details["param"], tc.field)
			}
		})
	}
}

func TestCompile_ArgumentErrorsCarryStep(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		step  int
	}{
		{"zero batch size", []Step{{Op: "distinct"}, {Op: "batch_sum"}}, 1},
		{"zero window size", []Step{{Op: "window_sum"}}, 0},
		{"inverted between", []Step{{Op: "take", Count: 1}, {Op: "distinct"}, {Op: "between", Value: 9, Max: 1}}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(Recipe{Steps: tc.steps}, logger.Nop())
			if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
			}
			appErr, _ := seqerrors.AsAppError(err)
			if appErr.Details["step"] != tc.step {
				t.Errorf("step = %v, want %d", appErr.Details["step"], tc.step)
			}
			if appErr.Details[logger.FieldOperation] != tc.steps[tc.step].Op {
				t.Errorf("operation = %v", appErr.Details[logger.FieldOperation])
			}
		})
	}
}

func TestCompile_StageIsReusable(t *testing.T) {
	stage, err := Compile(Recipe{Steps: []Step{{Op: "take", Count: 1}}}, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range [][]int64{{1, 2}, {9}} {
		p, err := stage(pipeline.FromSlice(in))
		if err != nil {
			t.Fatal(err)
		}
		got, _ := pipeline.Collect(context.Background(), p)
		if diff := cmp.Diff(in[:1], got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}
