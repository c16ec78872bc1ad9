package logger

import (
	"time"

	"github.com/kbukum/seqkit/errors"
)

// Standard field keys.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldPipeline  = "pipeline"
	FieldStep      = "step"
	FieldOperation = "operation"
	FieldElements  = "elements"
	FieldCode      = "code"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. Non-string keys
// and a trailing odd value are ignored.
//
//	log.Info("compiled", logger.Fields("steps", 3, "run_id", id))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed operation. AppErrors also
// contribute their code and details.
func ErrorFields(op string, err error) map[string]any {
	fields := map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
	if appErr, ok := errors.AsAppError(err); ok {
		for k, v := range appErr.Fields() {
			fields[k] = v
		}
	}
	return fields
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
