package util

import (
	"testing"

	"github.com/google/uuid"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestParseRunID(t *testing.T) {
	valid := "550e8400-e29b-41d4-a716-446655440000"
	id, err := ParseRunID("  " + valid + " ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != valid {
		t.Errorf("expected %s, got %s", valid, id)
	}
}

func TestParseRunID_BlankGenerates(t *testing.T) {
	a, err := ParseRunID("")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := ParseRunID("   ")
	if a == uuid.Nil || a == b {
		t.Errorf("expected two fresh ids, got %s and %s", a, b)
	}
}

func TestParseRunID_Invalid(t *testing.T) {
	_, err := ParseRunID("not-a-uuid")
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}
