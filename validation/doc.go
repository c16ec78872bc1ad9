// Package validation provides argument validation for seqkit combinators and
// struct tag validation for recipe configuration.
//
// Combinators validate their scalar parameters eagerly, at the call that
// receives them, and report every violated parameter at once:
//
//	if err := validation.New().
//	    NonNegative("startIndex", start).
//	    NonNegative("count", count).
//	    Err(); err != nil {
//	    return nil, err
//	}
//
// Struct tag validation (using the validator library) is used for values
// decoded from configuration:
//
//	type Step struct {
//	    Op    string `validate:"required,oneof=exclude move"`
//	    Count int    `validate:"gte=0"`
//	}
//	err := validation.Validate(step)
//
// Both forms return an *errors.AppError with code INVALID_ARGUMENT.
package validation
