// Package errors provides the structured error type returned by seqkit
// combinators and terminals.
//
// Every failure carries a machine-readable ErrorCode so callers can branch on
// the condition without string matching:
//
//   - INVALID_ARGUMENT: a negative index or count, or a non-positive size.
//   - INVALID_OPERATION: the operation needs at least one element and got none.
//   - NOT_FOUND: a strict key lookup matched nothing.
//   - ARITHMETIC_EDGE_CASE: a numeric aggregate cannot be computed for the input.
//
// Argument errors are returned by the call that receives the bad argument,
// before any element is pulled. Errors discovered while pulling surface from
// Next or from the terminal that drives the pull.
package errors
