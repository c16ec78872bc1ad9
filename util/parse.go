package util

import (
	"strconv"
	"strings"

	"github.com/kbukum/seqkit/errors"
)

// ParseInt64s parses command-line values into integers. Each argument may
// hold several comma-separated numbers; blank entries are skipped, so
// "1,2" "3" and "1, 2,,3" both give [1 2 3].
func ParseInt64s(args []string) ([]int64, error) {
	var out []int64
	for _, arg := range args {
		for field := range strings.SplitSeq(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.InvalidArgument("values", "not an integer").
					WithDetail("value", field).
					WithDetail("position", len(out)).
					WithCause(err)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// FormatInt64s renders values as a single comma-separated line.
func FormatInt64s(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
