package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/seqkit/errors"
)

func TestValidatorNonNegative(t *testing.T) {
	v := New()
	v.NonNegative("count", 0)
	if v.HasErrors() {
		t.Error("expected no errors for zero")
	}

	v2 := New()
	v2.NonNegative("count", -1)
	if !v2.HasErrors() {
		t.Error("expected error for negative count")
	}
}

func TestValidatorPositive(t *testing.T) {
	v := New()
	v.Positive("size", 1)
	if v.HasErrors() {
		t.Error("expected no errors for 1")
	}

	v2 := New()
	v2.Positive("size", 0)
	if !v2.HasErrors() {
		t.Error("expected error for zero size")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("producers", 4, 1, 4)
	if v.HasErrors() {
		t.Error("expected no errors for value at upper bound")
	}

	v2 := New()
	v2.Range("producers", 5, 1, 4)
	if !v2.HasErrors() {
		t.Error("expected error for value above range")
	}
	if !strings.Contains(v2.Errors()[0].Message, "between 1 and 4") {
		t.Errorf("unexpected message %q", v2.Errors()[0].Message)
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New()
	v.Min("a", 5, 5).Max("b", 5, 5)
	if v.HasErrors() {
		t.Error("expected bounds to be inclusive")
	}

	v2 := New()
	v2.Min("a", 4, 5).Max("b", 6, 5)
	if len(v2.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(v2.Errors()))
	}
}

func TestValidatorNotNil(t *testing.T) {
	v := New()
	v.NotNil("key", true)
	if !v.HasErrors() {
		t.Error("expected error for nil callback")
	}
	if v.Errors()[0].Message != "is required" {
		t.Errorf("unexpected message %q", v.Errors()[0].Message)
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "x", "never")
	if v.HasErrors() {
		t.Error("expected no errors when condition holds")
	}

	v2 := New()
	v2.Custom(false, "x", "custom error")
	if v2.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	if appErr := New().NonNegative("count", 3).Validate(); appErr != nil {
		t.Error("expected nil for valid input")
	}

	appErr := New().NonNegative("startIndex", -1).NonNegative("count", -2).Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "startIndex") || !strings.Contains(appErr.Message, "count") {
		t.Errorf("expected both params in message, got %q", appErr.Message)
	}
	if _, ok := appErr.Details["param"]; ok {
		t.Error("expected no single param detail with two failures")
	}
}

func TestValidatorErr_NilInterface(t *testing.T) {
	if err := New().Positive("size", 2).Err(); err != nil {
		t.Errorf("expected untyped nil, got %v", err)
	}
	err := New().Positive("size", 0).Err()
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.NonNegative("a", 1).Positive("b", 1).Min("c", 25, 18)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestNonNegativeFunc(t *testing.T) {
	if err := NonNegative("index", 0); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := NonNegative("index", -1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestStructValidateValid(t *testing.T) {
	type Step struct {
		Op    string `mapstructure:"op" validate:"required,oneof=pad take"`
		Count int    `mapstructure:"count" validate:"gte=0"`
	}

	if err := Validate(Step{Op: "pad", Count: 2}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	type Step struct {
		Op    string `mapstructure:"op" validate:"required,oneof=pad take"`
		Count int    `mapstructure:"count" validate:"gte=0"`
	}

	err := Validate(Step{Op: "explode", Count: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "op") || !strings.Contains(errStr, "count") {
		t.Errorf("expected error to mention op and count, got %q", errStr)
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestStructValidateDive(t *testing.T) {
	type Step struct {
		Size int `mapstructure:"size" validate:"gt=0"`
	}
	type Recipe struct {
		Steps []Step `mapstructure:"steps" validate:"dive"`
	}

	err := Validate(Recipe{Steps: []Step{{Size: 1}, {Size: 0}}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "steps[1].size") {
		t.Errorf("expected nested field path, got %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("StartIndex"); got != "start_index" {
		t.Errorf("got %q, want start_index", got)
	}
}
