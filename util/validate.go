package util

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
)

// ParseRunID returns the UUID in value, or a new random one when value is
// blank. Run ids tag every log line and span of one command invocation.
func ParseRunID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, errors.InvalidArgument("run_id", "invalid UUID format").WithCause(err)
	}
	return id, nil
}
