package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestParseInt64s(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int64
	}{
		{"separate args", []string{"1", "2", "3"}, []int64{1, 2, 3}},
		{"comma list", []string{"1,2", "3"}, []int64{1, 2, 3}},
		{"blanks and spaces", []string{"1, 2,,3", " "}, []int64{1, 2, 3}},
		{"negative", []string{"-4,5"}, []int64{-4, 5}},
		{"none", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInt64s(tc.args)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInt64s_Invalid(t *testing.T) {
	_, err := ParseInt64s([]string{"1,2", "x"})
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	appErr, _ := seqerrors.AsAppError(err)
	if appErr.Details["value"] != "x" || appErr.Details["position"] != 2 {
		t.Errorf("unexpected details %v", appErr.Details)
	}
}

func TestFormatInt64s(t *testing.T) {
	if got := FormatInt64s([]int64{3, -1, 0}); got != "3,-1,0" {
		t.Errorf("got %q", got)
	}
	if got := FormatInt64s(nil); got != "" {
		t.Errorf("got %q for empty input", got)
	}
}
